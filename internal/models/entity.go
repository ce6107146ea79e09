package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

func init() {
	// backend speaks plain JSON numbers for amounts, fees and commissions
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is an item of a store collection, identified by Key
type Entity interface {
	Key() string
}

// Record is an entity that can be re-keyed, used to build create and update payloads
type Record[T any] interface {
	Entity
	WithKey(key string) T
}

// FlexID is an identifier the backend may send either as a JSON string or as a JSON integer.
// It is normalized to its string form.
type FlexID string

// UnmarshalJSON accepts "7", 7 and null
func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

// MarshalJSON writes integer-looking ids as numbers and everything else as strings
func (id FlexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id FlexID) String() string {
	return string(id)
}
