package views

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jacksoncartel/legends-backend/internal/models"
)

// Пороги индикатора ёмкости локального хранилища (МБ). Превышение
// порога даёт только предупреждение на дисплее, запись не блокируется.
const (
	StorageSoftLimitMB     = 5.0
	StorageWarnThresholdMB = 4.0
)

// FilterLeads возвращает подпоследовательность лидов, у которых имя
// или handle содержит query (без учёта регистра) и статус совпадает с
// statusFilter (значение «all» пропускает любой статус). Чистая
// функция, порядок входной коллекции сохраняется.
func FilterLeads(leads []models.Lead, query, statusFilter string) []models.Lead {
	q := strings.ToLower(query)
	out := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		matchesSearch := strings.Contains(strings.ToLower(lead.FullName), q) ||
			strings.Contains(strings.ToLower(lead.Handle), q)
		matchesFilter := statusFilter == models.LeadFilterAll || lead.Status == statusFilter
		if matchesSearch && matchesFilter {
			out = append(out, lead)
		}
	}
	return out
}

// EstimateStorageUsage сериализует обе коллекции в канонический
// структурный вид и возвращает занятый объём в мегабайтах строкой с
// двумя знаками после запятой.
func EstimateStorageUsage(items []models.PortfolioItem, leads []models.Lead) string {
	if items == nil {
		items = []models.PortfolioItem{}
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	rawItems, _ := json.Marshal(items)
	rawLeads, _ := json.Marshal(leads)

	usage := float64(len(rawItems)+len(rawLeads)) / (1024 * 1024)
	return strconv.FormatFloat(usage, 'f', 2, 64)
}

// NearingCapacity сообщает, пересёк ли индикатор порог предупреждения.
func NearingCapacity(usage string) bool {
	v, err := strconv.ParseFloat(usage, 64)
	return err == nil && v > StorageWarnThresholdMB
}
