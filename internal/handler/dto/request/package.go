package request

import (
	"time"

	"turipack/internal/pkg/patch"

	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar dates; times of day travel as
// "HH:MM" strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type AddItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Persons   int       `json:"persons" binding:"required,min=1"`
	Date      *string   `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time      *string   `json:"time,omitempty" binding:"omitempty,datetime=15:04"`
	Notes     string    `json:"notes,omitempty" binding:"max=500"`
}

// ParseDate returns the requested calendar date, nil when absent.
func (r *AddItemRequest) ParseDate() (*time.Time, error) {
	return parseDatePtr(r.Date)
}

func (r *AddItemRequest) GetTime() string {
	return patch.Coalesce(r.Time, "")
}

// UpdateItemRequest is a partial update; absent fields are left alone.
type UpdateItemRequest struct {
	Persons *int    `json:"persons,omitempty" binding:"omitempty,min=1"`
	Date    *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time    *string `json:"time,omitempty" binding:"omitempty,datetime=15:04"`
	Notes   *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r *UpdateItemRequest) ParseDate() (*time.Time, error) {
	return parseDatePtr(r.Date)
}

func (r *UpdateItemRequest) IsEmpty() bool {
	return r.Persons == nil && r.Date == nil && r.Time == nil && r.Notes == nil
}

type SetTravelersRequest struct {
	TotalPersons int `json:"total_persons" binding:"required,min=1"`
}

type SetDateRangeRequest struct {
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

func (r *SetDateRangeRequest) ParseRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return
	}
	checkOut, err = time.Parse(DateLayout, r.CheckOut)
	return
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
