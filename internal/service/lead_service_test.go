package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksoncartel/legends-backend/internal/audit"
	"github.com/jacksoncartel/legends-backend/internal/models"
	"github.com/jacksoncartel/legends-backend/internal/repository"
	"github.com/jacksoncartel/legends-backend/internal/validation"
)

func newLeadFixture() (*LeadService, *fakeStorage, *audit.Log) {
	store := newFakeStorage()
	trail := audit.NewLog()
	svc := NewLeadService(repository.NewLeadRepository(store), trail)
	return svc, store, trail
}

func TestLeadService_Load_EmptyStorage(t *testing.T) {
	svc, _, trail := newLeadFixture()

	leads, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, leads)
	assert.Equal(t, "Intelligence database synchronized", trail.Entries()[0].Action)
}

func TestLeadService_Load_BackfillsStatusAndID(t *testing.T) {
	svc, store, _ := newLeadFixture()
	ctx := context.Background()
	// Запись старого формата: ни статуса, ни идентификатора.
	legacy := `[{"fullName":"Ava Sterling","handle":"@avasterling","goal":"Content","date":"2025-11-02T10:00:00Z"}]`
	require.NoError(t, store.Set(ctx, "legends_leads", legacy))

	leads, err := svc.Load(ctx)

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, models.LeadStatusNew, leads[0].Status)
	assert.NotEqual(t, uuid.Nil, leads[0].ID)
	// Дата при ре-гидратации не меняется.
	assert.Equal(t, "2025-11-02T10:00:00Z", leads[0].Date)

	// Дозаполнение сразу персистится.
	raw, found, _ := store.Get(ctx, "legends_leads")
	require.True(t, found)
	assert.Contains(t, raw, `"status":"new"`)
}

func TestLeadService_Load_MalformedDataResetsCollection(t *testing.T) {
	svc, store, _ := newLeadFixture()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "legends_leads", "[broken"))

	leads, err := svc.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestLeadService_Append_PrependsAndStamps(t *testing.T) {
	svc, _, trail := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	frozen := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	first, err := svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling", Goal: "Leads"})
	require.NoError(t, err)
	second, err := svc.Append(ctx, LeadInput{FullName: "Marcus Vale", Handle: "@marcusvale"})
	require.NoError(t, err)

	leads := svc.Leads()
	require.Len(t, leads, 2)
	// Свежие лиды в начале коллекции.
	assert.Equal(t, second.ID, leads[0].ID)
	assert.Equal(t, first.ID, leads[1].ID)

	assert.Equal(t, frozen.Format(time.RFC3339), first.Date)
	assert.Equal(t, models.LeadStatusNew, first.Status)
	// Пустая цель подменяется целью по умолчанию.
	assert.Equal(t, models.LeadGoalContent, second.Goal)

	assert.Equal(t, "New inbound lead: Marcus Vale", trail.Entries()[0].Action)
}

func TestLeadService_Append_InvalidInputNoMutation(t *testing.T) {
	svc, _, _ := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	_, err = svc.Append(ctx, LeadInput{FullName: "Av", Handle: "@avasterling"})

	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, svc.Leads())
}

func TestLeadService_SetStatus_ByID(t *testing.T) {
	svc, _, trail := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	lead, err := svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, lead.ID, models.LeadStatusPartnered))

	leads := svc.Leads()
	assert.Equal(t, models.LeadStatusPartnered, leads[0].Status)
	assert.Equal(t, lead.Date, leads[0].Date)
	assert.Equal(t, "Lead status updated: Ava Sterling -> partnered", trail.Entries()[0].Action)
}

func TestLeadService_SetStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)
	lead, err := svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling"})
	require.NoError(t, err)

	err = svc.SetStatus(ctx, lead.ID, "escalated")

	var vErr *validation.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLeadService_SetStatus_NotFound(t *testing.T) {
	svc, _, _ := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	err = svc.SetStatus(ctx, uuid.New(), models.LeadStatusContacted)

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestLeadService_Remove_DeletesExactlyOne(t *testing.T) {
	svc, _, trail := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	kept, err := svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling"})
	require.NoError(t, err)
	doomed, err := svc.Append(ctx, LeadInput{FullName: "Marcus Vale", Handle: "@marcusvale"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, doomed.ID))

	leads := svc.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, kept.FullName, leads[0].FullName)
	for _, lead := range leads {
		assert.NotEqual(t, "Marcus Vale", lead.FullName)
	}

	entries := trail.Entries()
	assert.Equal(t, "Lead purged from registry: Marcus Vale", entries[0].Action)
	assert.Equal(t, audit.SeverityCritical, entries[0].Severity)
}

func TestLeadService_Remove_NotFoundKeepsCollection(t *testing.T) {
	svc, _, _ := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)
	_, err = svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling"})
	require.NoError(t, err)

	err = svc.Remove(ctx, uuid.New())

	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Len(t, svc.Leads(), 1)
}

func TestLeadService_NewCount(t *testing.T) {
	svc, _, _ := newLeadFixture()
	ctx := context.Background()
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	first, err := svc.Append(ctx, LeadInput{FullName: "Ava Sterling", Handle: "@avasterling"})
	require.NoError(t, err)
	_, err = svc.Append(ctx, LeadInput{FullName: "Marcus Vale", Handle: "@marcusvale"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, first.ID, models.LeadStatusArchived))

	assert.Equal(t, 1, svc.NewCount())
}
