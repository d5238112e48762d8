package models

import (
	"encoding/json"
	"time"
)

// Document is one record of the hierarchical document store.
type Document struct {
	Path      string         `json:"path"`
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Decode converts the document body into v through its JSON form.
func (d *Document) Decode(v any) error {
	raw, err := json.Marshal(d.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// ToFields flattens a struct into document fields through its JSON form.
func ToFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
