package models

// PortfolioStatus константы статусов активов портфолио
const (
	PortfolioStatusActive = "active"
	PortfolioStatusDraft  = "draft"
)

// MediaType производный тип медиа, пересчитывается при каждом сохранении
const (
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
)

// LeadStatus константы статусов лидов
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusPartnered = "partnered"
	LeadStatusArchived  = "archived"
)

// LeadFilterAll специальное значение фильтра, пропускающее любой статус
const LeadFilterAll = "all"

// LeadGoal константы целей сотрудничества с формы захвата
const (
	LeadGoalContent      = "Content"
	LeadGoalLeads        = "Leads"
	LeadGoalOmnipresence = "Omnipresence"
)

// ValidPortfolioStatuses список валидных статусов активов
var ValidPortfolioStatuses = map[string]struct{}{
	PortfolioStatusActive: {},
	PortfolioStatusDraft:  {},
}

// ValidLeadStatuses список валидных статусов лидов
var ValidLeadStatuses = map[string]struct{}{
	LeadStatusNew:       {},
	LeadStatusContacted: {},
	LeadStatusPartnered: {},
	LeadStatusArchived:  {},
}

// MediaTypeFor возвращает производный тип медиа по флагу isVideo.
func MediaTypeFor(isVideo bool) string {
	if isVideo {
		return MediaTypeVideo
	}
	return MediaTypeImage
}
