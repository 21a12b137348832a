// internal/services/session_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipscout/equipscout-backend/internal/config"
	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
)

func newTestSessionService() *SessionService {
	return NewSessionService(config.RefineConfig{SessionTTL: 60})
}

func sessionProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Brand: "Rational", Model: "iCombi Pro", Price: 15200.5, Currency: "USD"},
		{ID: "p2", Brand: "Hobart", Model: "AM16", Price: 8999.99, Currency: "USD"},
	}
}

func TestSessionStartAndGet(t *testing.T) {
	service := newTestSessionService()

	id, controller := service.Start(sessionProducts(), nil)
	require.NotEmpty(t, id)
	require.NotNil(t, controller)
	assert.Len(t, controller.Products(), 2)

	got, ok := service.Get(id)
	require.True(t, ok)
	assert.Same(t, controller, got)
}

func TestSessionGetUnknownID(t *testing.T) {
	service := newTestSessionService()

	_, ok := service.Get("nope")
	assert.False(t, ok)
}

func TestSessionReplaceSupersedesWholesale(t *testing.T) {
	service := newTestSessionService()

	id, controller := service.Start(sessionProducts(), nil)
	keyword := "combi"
	controller.UpdateFilters(refine.FilterUpdate{Keyword: &keyword})

	replacement := []models.Product{
		{ID: "p9", Brand: "Electrolux", Model: "SkyLine", Price: 12000, Currency: "USD"},
	}
	newID, replaced := service.Replace(id, replacement, nil)

	assert.Equal(t, id, newID)
	assert.Same(t, controller, replaced)
	assert.Len(t, replaced.Products(), 1)
	// Replacing the result set resets refinement state.
	assert.Empty(t, replaced.Filters().Keyword)
}

func TestSessionReplaceUnknownIDStartsFresh(t *testing.T) {
	service := newTestSessionService()

	id, controller := service.Replace("stale-session-id", sessionProducts(), nil)
	require.NotNil(t, controller)
	assert.NotEqual(t, "stale-session-id", id)
	assert.Len(t, controller.Products(), 2)
}
