package response

import (
	"turipack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	BasePrice   int64     `json:"base_price"`
	Currency    string    `json:"currency"`
	MinPersons  int       `json:"min_persons"`
	MaxPersons  int       `json:"max_persons"`
	HighSeason  *float64  `json:"high_season_factor,omitempty"`
	LowSeason   *float64  `json:"low_season_factor,omitempty"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, view := range views {
		result[i] = FromServiceView(view)
	}
	return result
}
