// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// SpecMap holds the free-form attribute sheet of a product. Keys vary per
// product and are never guaranteed present; values arrive from the search
// provider as arbitrary JSON and are stringified on decode.
type SpecMap map[string]string

// Get returns the value for key, or "" when the key is absent.
func (m SpecMap) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// Has reports whether key is present with a non-empty value.
func (m SpecMap) Has(key string) bool {
	return m.Get(key) != ""
}

// Keys returns the attribute names in sorted order. Map iteration order
// would otherwise leak nondeterminism into derived state.
func (m SpecMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalJSON tolerates non-string values and non-object payloads.
// Anything that is not a JSON object decodes to an empty map.
func (m *SpecMap) UnmarshalJSON(data []byte) error {
	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = SpecMap{}
		return nil
	}

	out := make(SpecMap, len(raw))
	for key, value := range raw {
		out[key] = stringifySpecValue(value)
	}
	*m = out
	return nil
}

func stringifySpecValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// Value implements driver.Valuer for the jsonb column.
func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]string(m))
}

// Scan implements sql.Scanner. A corrupted column scans to an empty map.
func (m *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		*m = SpecMap{}
		return nil
	}

	return m.UnmarshalJSON(bytes)
}

// Enums
type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionUsed        Condition = "Used"
	ConditionRefurbished Condition = "Refurbished"
)

type SortKey string

const (
	SortPriceLowToHigh SortKey = "priceLow"
	SortPriceHighToLow SortKey = "priceHigh"
	SortBrandAlpha     SortKey = "brand"
)

// ValidSortKey reports whether k is one of the supported sort strategies.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortPriceLowToHigh, SortPriceHighToLow, SortBrandAlpha:
		return true
	}
	return false
}
