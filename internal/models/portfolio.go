package models

// PortfolioItem описывает медиа-актив портфолио.
// Коллекция целиком сериализуется в локальное KV-хранилище,
// поэтому json-теги совпадают с историческим форматом данных.
type PortfolioItem struct {
	ID       int64  `json:"id"`
	SeedKey  string `json:"seedKey,omitempty"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	IsVideo  bool   `json:"isVideo"`
	VideoURL string `json:"videoUrl"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
}
