package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jacksoncartel/legends-backend/internal/models"
)

// Поддерживаемые платформы расшаривания
const (
	PlatformX        = "x"
	PlatformLinkedIn = "linkedin"
	PlatformWhatsApp = "whatsapp"
)

// AssetLink возвращает публичную ссылку на ассет портфолио.
func AssetLink(origin string, assetID int64) string {
	return fmt.Sprintf("%s/?asset=%d", strings.TrimRight(origin, "/"), assetID)
}

// SocialLinks возвращает intent-ссылки расшаривания ассета для
// поддерживаемых платформ.
func SocialLinks(origin string, item models.PortfolioItem) map[string]string {
	shareURL := url.QueryEscape(AssetLink(origin, item.ID))
	text := url.QueryEscape(fmt.Sprintf("Check out this elite production by JacksonCartel: %s", item.Title))

	return map[string]string{
		PlatformX:        fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s", text, shareURL),
		PlatformLinkedIn: fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", shareURL),
		PlatformWhatsApp: fmt.Sprintf("https://wa.me/?text=%s%%20%s", text, shareURL),
	}
}
