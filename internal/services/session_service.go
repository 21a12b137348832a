// internal/services/session_service.go
package services

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/equipscout/equipscout-backend/internal/config"
	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
)

// SessionService keeps one refinement controller per browsing session in
// an in-memory TTL cache. Sessions are ephemeral by design: only favorites
// and saved searches outlive them.
type SessionService struct {
	sessions  *gocache.Cache
	discovery *refine.Discovery
	ttl       time.Duration
}

func NewSessionService(cfg config.RefineConfig) *SessionService {
	ttl := time.Duration(cfg.SessionTTL) * time.Minute
	return &SessionService{
		sessions:  gocache.New(ttl, 2*ttl),
		discovery: refine.NewDiscovery(cfg.SpecKeys),
		ttl:       ttl,
	}
}

// Start creates a fresh session around a result set and returns its id.
func (s *SessionService) Start(products []models.Product, citations []models.Citation) (string, *refine.Controller) {
	controller := refine.NewController(s.discovery)
	controller.SetProducts(products, citations)

	id := uuid.NewString()
	s.sessions.Set(id, controller, s.ttl)
	return id, controller
}

// Replace supersedes the result set of an existing session wholesale. A
// stale or unknown id falls back to starting a new session.
func (s *SessionService) Replace(id string, products []models.Product, citations []models.Citation) (string, *refine.Controller) {
	controller, ok := s.Get(id)
	if !ok {
		return s.Start(products, citations)
	}
	controller.SetProducts(products, citations)
	return id, controller
}

// Get returns the controller for id and slides its expiry.
func (s *SessionService) Get(id string) (*refine.Controller, bool) {
	value, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	controller, ok := value.(*refine.Controller)
	if !ok {
		return nil, false
	}
	s.sessions.Set(id, controller, s.ttl)
	return controller, true
}
