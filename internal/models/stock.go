package models

import "time"

// StockMovement is a stored stock in/out record.
type StockMovement struct {
	ID        string
	Payload   map[string]any
	Direction string
	CreatedAt time.Time
}

// Fields returns the document body of the movement.
func (m *StockMovement) Fields() map[string]any {
	fields := make(map[string]any, len(m.Payload)+2)
	for k, v := range m.Payload {
		fields[k] = v
	}
	if m.Direction != "" {
		fields["direction"] = m.Direction
	}
	fields["createdAt"] = m.CreatedAt
	return fields
}

// StockMaster is the remaining quantity of an item at a branch.
type StockMaster struct {
	Tin       string    `json:"tin"`
	BhfID     string    `json:"bhfId"`
	ItemCd    string    `json:"itemCd"`
	RsdQty    *float64  `json:"rsdQty"`
	RegrNm    string    `json:"regrNm,omitempty"`
	RegrID    string    `json:"regrId,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
