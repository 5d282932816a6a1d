// Package store keeps deal state in memory. A plain keyed container:
// key uniqueness is the only invariant, durability is out of scope.
package store

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
)

// DealStore is an in-memory store of deals keyed by deal ID
type DealStore struct {
	deals *gocache.Cache
}

// NewDealStore creates an empty deal store
func NewDealStore() *DealStore {
	return &DealStore{
		deals: gocache.New(gocache.NoExpiration, 0),
	}
}

// NewDealID mints a unique deal identifier
func NewDealID() string {
	return "deal_" + uuid.NewString()
}

// Upsert stores the deal, minting an ID and creation time when absent,
// and returns the stored record.
func (s *DealStore) Upsert(deal model.DealState) model.DealState {
	if deal.DealID == "" {
		deal.DealID = NewDealID()
	}
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = time.Now().UTC()
	}
	s.deals.Set(deal.DealID, deal, gocache.NoExpiration)
	return deal
}

// Get returns the deal for the given ID, if present
func (s *DealStore) Get(dealID string) (model.DealState, bool) {
	v, found := s.deals.Get(dealID)
	if !found {
		return model.DealState{}, false
	}
	return v.(model.DealState), true
}

// Touch records when the deal's signals were last evaluated and advances
// its stage.
func (s *DealStore) Touch(dealID string, stage model.DealStage) (model.DealState, bool) {
	deal, found := s.Get(dealID)
	if !found {
		return model.DealState{}, false
	}
	now := time.Now().UTC()
	deal.LastCheckedAt = &now
	deal.Stage = stage
	s.deals.Set(deal.DealID, deal, gocache.NoExpiration)
	return deal, true
}
