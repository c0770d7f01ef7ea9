package response

import (
	"khadamat_hub/internal/domain/entities"
)

type ServiceOfferingResponse struct {
	ID         string   `json:"id"`
	TitleAr    string   `json:"title_ar"`
	TitleEn    string   `json:"title_en"`
	Price      *float64 `json:"price,omitempty"`
	Priced     bool     `json:"priced"`
	Selectable bool     `json:"selectable"`
}

func FromOffering(o entities.ServiceOffering) ServiceOfferingResponse {
	return ServiceOfferingResponse{
		ID:         o.ID,
		TitleAr:    o.TitleAr,
		TitleEn:    o.TitleEn,
		Price:      o.Price,
		Priced:     o.Priced,
		Selectable: o.Selectable,
	}
}

func FromOfferings(offerings []entities.ServiceOffering) []ServiceOfferingResponse {
	out := make([]ServiceOfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, FromOffering(o))
	}
	return out
}

type SelectionPreviewResponse struct {
	Selection []string                  `json:"selection"`
	Kind      string                    `json:"kind"`
	Amount    float64                   `json:"amount"`
	Offerings []ServiceOfferingResponse `json:"offerings"`
}
