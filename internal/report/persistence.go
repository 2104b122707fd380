package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hyeonwoos/marketlens/internal/model"
	"github.com/hyeonwoos/marketlens/internal/store"
)

// StorePersistence saves reports into the keyword-keyed record store
type StorePersistence struct {
	store store.Store
	ttl   time.Duration
}

// NewStorePersistence wraps a store as the assembler's persistence capability
func NewStorePersistence(s store.Store, ttl time.Duration) *StorePersistence {
	return &StorePersistence{store: s, ttl: ttl}
}

// SaveReport serializes the report and stores it under the keyword's key
func (p *StorePersistence) SaveReport(keyword string, rpt *model.OpportunityReport) error {
	data, err := json.Marshal(rpt)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return p.store.Set(store.Key(keyword), data, p.ttl)
}

// LoadReport retrieves a previously saved report by keyword
func (p *StorePersistence) LoadReport(keyword string) (*model.OpportunityReport, bool) {
	data, found := p.store.Get(store.Key(keyword))
	if !found {
		return nil, false
	}

	var rpt model.OpportunityReport
	if err := json.Unmarshal(data, &rpt); err != nil {
		return nil, false
	}
	return &rpt, true
}
