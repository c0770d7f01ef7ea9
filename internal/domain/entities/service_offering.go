package entities

import "time"

// ServiceOffering is a catalog entry a requester can select.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Flags:
//   - Priced: fixed-price offering; selecting it excludes everything else.
//   - Selectable: bundleable with other selectable offerings only.
//   - Neither flag: plain offering; bundleable with other plain ones.
//
// The workflow engine treats offerings as read-only input; catalog
// maintenance happens elsewhere.
type ServiceOffering struct {
	ID         string    `json:"id"`
	TitleAr    string    `json:"title_ar"`
	TitleEn    string    `json:"title_en"`
	Price      *float64  `json:"price,omitempty"`
	Priced     bool      `json:"priced"`
	Selectable bool      `json:"selectable"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// PriceValue returns the fixed price or 0 when unpriced.
func (s ServiceOffering) PriceValue() float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}
