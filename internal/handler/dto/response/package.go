package response

import (
	"time"

	"turipack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PackageResponse struct {
	ID           *uuid.UUID       `json:"id,omitempty"`
	Status       string           `json:"status"`
	Modules      []ModuleResponse `json:"modules"`
	ItemCount    int              `json:"item_count"`
	TotalPersons int              `json:"total_persons"`
	DateRange    *DateRange       `json:"date_range,omitempty"`
	Subtotal     int64            `json:"subtotal"`
	Taxes        int64            `json:"taxes"`
	Total        int64            `json:"total"`
	Currency     string           `json:"currency"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
}

type ModuleResponse struct {
	Category string         `json:"category"`
	Items    []ItemResponse `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

type ItemResponse struct {
	ServiceID   uuid.UUID  `json:"service_id"`
	ServiceName string     `json:"service_name"`
	Subcategory string     `json:"subcategory,omitempty"`
	Persons     int        `json:"persons"`
	Date        *time.Time `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Subtotal    int64      `json:"subtotal"`
}

type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Nights   int       `json:"nights"`
}

func FromPackageView(view *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, view)
	if resp.Modules == nil {
		resp.Modules = []ModuleResponse{}
	}
	return &resp
}
