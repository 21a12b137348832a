// internal/models/saved_search.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

// SavedSearch is a named snapshot of the search form, immutable once
// created. Countries get their own column so saved searches can be listed
// per region without unpacking the snapshot.
type SavedSearch struct {
	BaseModel
	Name      string         `json:"name" gorm:"size:255;not null"`
	Query     QuerySnapshot  `json:"query" gorm:"type:jsonb"`
	Countries pq.StringArray `json:"countries" gorm:"type:text[]"`
}

// QuerySnapshot stores the SearchQuery as a jsonb blob. A corrupted column
// scans to the zero query rather than failing the whole list load.
type QuerySnapshot SearchQuery

func (q QuerySnapshot) Value() (driver.Value, error) {
	return json.Marshal(SearchQuery(q))
}

func (q *QuerySnapshot) Scan(value interface{}) error {
	if value == nil {
		*q = QuerySnapshot{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		*q = QuerySnapshot{}
		return nil
	}

	var query SearchQuery
	if err := json.Unmarshal(bytes, &query); err != nil {
		*q = QuerySnapshot{}
		return nil
	}

	*q = QuerySnapshot(query)
	return nil
}

// SearchLog records one executed provider search for usage history.
type SearchLog struct {
	BaseModel
	Keyword     string         `json:"keyword" gorm:"size:255"`
	Category    string         `json:"category" gorm:"size:100"`
	Countries   pq.StringArray `json:"countries" gorm:"type:text[]"`
	ResultCount int            `json:"result_count" gorm:"default:0"`
	DurationMs  int64          `json:"duration_ms" gorm:"default:0"`
}
