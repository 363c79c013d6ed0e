package video

import (
	"fmt"
	"net/url"
	"regexp"
)

// Паттерны провайдеров. YouTube проверяется строго раньше Vimeo;
// ссылка, не подошедшая ни под один паттерн, возвращается без изменений.
var (
	// watch-ссылки с параметром v, youtu.be, embed, shorts и подпути каналов.
	youtubePattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	// канонические ссылки, player, каналы, группы, альбомы и on-demand.
	vimeoPattern = regexp.MustCompile(`(?i)(?:vimeo\.com/(?:channels/[\w-]+/|groups/[\w-]+/videos/|album/\d+/video/|ondemand/\w+/)?|player\.vimeo\.com/video/)(\d+)`)
)

// ResolveEmbed преобразует произвольную ссылку на видео в ссылку,
// пригодную для воспроизведения во встроенном плеере. Ссылки
// неизвестных провайдеров (или уже готовые embed-ссылки) проходят
// насквозь: резолвер деградирует мягко и никогда не возвращает ошибку.
func ResolveEmbed(sourceURL, origin string) string {
	if sourceURL == "" {
		return ""
	}

	if m := youtubePattern.FindStringSubmatch(sourceURL); len(m) == 2 {
		return fmt.Sprintf(
			"https://www.youtube.com/embed/%s?autoplay=1&modestbranding=1&rel=0&showinfo=0&mute=0&enablejsapi=1&origin=%s",
			m[1], url.QueryEscape(origin),
		)
	}

	if m := vimeoPattern.FindStringSubmatch(sourceURL); len(m) == 2 {
		return fmt.Sprintf(
			"https://player.vimeo.com/video/%s?autoplay=1&badge=0&autopause=0&player_id=0&app_id=58479",
			m[1],
		)
	}

	return sourceURL
}
