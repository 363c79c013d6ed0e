package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testOrigin = "https://jacksoncartel.com"

func TestResolveEmbed_YouTubeWatch(t *testing.T) {
	embed := ResolveEmbed("https://www.youtube.com/watch?v=dQw4w9WgXcQ", testOrigin)

	assert.Contains(t, embed, "https://www.youtube.com/embed/dQw4w9WgXcQ")
	assert.Contains(t, embed, "autoplay=1")
	assert.Contains(t, embed, "enablejsapi=1")
}

func TestResolveEmbed_YouTubeShortLink(t *testing.T) {
	embed := ResolveEmbed("https://youtu.be/dQw4w9WgXcQ", testOrigin)

	assert.Contains(t, embed, "https://www.youtube.com/embed/dQw4w9WgXcQ")
}

func TestResolveEmbed_YouTubeShorts(t *testing.T) {
	embed := ResolveEmbed("https://www.youtube.com/shorts/dQw4w9WgXcQ", testOrigin)

	assert.Contains(t, embed, "https://www.youtube.com/embed/dQw4w9WgXcQ")
}

func TestResolveEmbed_YouTubeEmbedLink(t *testing.T) {
	embed := ResolveEmbed("https://www.youtube.com/embed/dQw4w9WgXcQ", testOrigin)

	assert.Contains(t, embed, "https://www.youtube.com/embed/dQw4w9WgXcQ")
}

func TestResolveEmbed_Vimeo(t *testing.T) {
	embed := ResolveEmbed("https://vimeo.com/148750015", testOrigin)

	assert.Contains(t, embed, "https://player.vimeo.com/video/148750015")
	assert.Contains(t, embed, "app_id=58479")
}

func TestResolveEmbed_VimeoPlayerLink(t *testing.T) {
	embed := ResolveEmbed("https://player.vimeo.com/video/148750015", testOrigin)

	assert.Contains(t, embed, "https://player.vimeo.com/video/148750015")
}

func TestResolveEmbed_VimeoChannel(t *testing.T) {
	embed := ResolveEmbed("https://vimeo.com/channels/staffpicks/148750015", testOrigin)

	assert.Contains(t, embed, "https://player.vimeo.com/video/148750015")
}

func TestResolveEmbed_UnknownProviderPassesThrough(t *testing.T) {
	source := "https://example.com/video.mp4"

	assert.Equal(t, source, ResolveEmbed(source, testOrigin))
}

func TestResolveEmbed_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ResolveEmbed("", testOrigin))
}

func TestResolveEmbed_OriginEscaped(t *testing.T) {
	embed := ResolveEmbed("https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://jacksoncartel.com")

	assert.Contains(t, embed, "origin=https%3A%2F%2Fjacksoncartel.com")
}
