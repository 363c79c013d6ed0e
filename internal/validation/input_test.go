package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacksoncartel/legends-backend/internal/models"
)

func TestValidatePortfolioInput_Valid(t *testing.T) {
	err := ValidatePortfolioInput("Estate Core Narrative", "https://example.com/asset.jpg", false, "")

	assert.NoError(t, err)
}

func TestValidatePortfolioInput_MissingTitle(t *testing.T) {
	err := ValidatePortfolioInput("   ", "https://example.com/asset.jpg", false, "")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
}

func TestValidatePortfolioInput_MissingThumbnail(t *testing.T) {
	err := ValidatePortfolioInput("Estate Core Narrative", "", false, "")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "url", vErr.Field)
}

func TestValidatePortfolioInput_VideoWithoutSource(t *testing.T) {
	err := ValidatePortfolioInput("Estate Core Narrative", "https://example.com/asset.jpg", true, "  ")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "videoUrl", vErr.Field)
}

func TestValidatePortfolioInput_VideoWithSource(t *testing.T) {
	err := ValidatePortfolioInput("Estate Core Narrative", "https://example.com/asset.jpg", true, "https://vimeo.com/148750015")

	assert.NoError(t, err)
}

func TestValidateLeadInput_Valid(t *testing.T) {
	assert.NoError(t, ValidateLeadInput("Shaun Michael", "@shaunmichael"))
}

func TestValidateLeadInput_NameTooShort(t *testing.T) {
	err := ValidateLeadInput("Sh", "@shaunmichael")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fullName", vErr.Field)
}

func TestValidateLeadInput_HandleTooShort(t *testing.T) {
	err := ValidateLeadInput("Shaun Michael", "@s")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "handle", vErr.Field)
}

func TestValidateLeadStatus(t *testing.T) {
	assert.NoError(t, ValidateLeadStatus(models.LeadStatusContacted))
	assert.Error(t, ValidateLeadStatus("escalated"))
}

func TestValidatePortfolioStatus(t *testing.T) {
	assert.NoError(t, ValidatePortfolioStatus(models.PortfolioStatusDraft))
	assert.Error(t, ValidatePortfolioStatus("hidden"))
}
