// Package motorcycle holds the listing model shared by the API client,
// the listing fetcher and the detail editor.
package motorcycle

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// upstream sends and expects prices as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusDraft     Status = "draft"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusAvailable, StatusReserved, StatusSold, StatusDraft}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusDraft:
		return true
	}
	return false
}

// ParseStatus validates a user supplied status.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", v)
	}
	return s, nil
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Label is the human readable status shown on the detail page.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "В продаже"
	case StatusReserved:
		return "Забронирован"
	case StatusSold:
		return "Продан"
	case StatusDraft:
		return "Черновик"
	default:
		return "Неизвестно"
	}
}

type Motorcycle struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	// Price is a decimal to avoid rounding errors; zero means "not set".
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Status    Status          `json:"status"`
	SourceURL string          `json:"sourceUrl"`
	Photos    []Photo         `json:"photos,omitempty"`
	Data      *Data           `json:"data,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UnmarshalJSON rejects listings without a status.
func (m *Motorcycle) UnmarshalJSON(b []byte) error {
	type plain Motorcycle
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if !v.Status.Valid() {
		return fmt.Errorf("listing %q has no status", v.ID)
	}
	*m = Motorcycle(v)
	return nil
}

type Photo struct {
	ID           string    `json:"id"`
	MotorcycleID string    `json:"motorcycleId"`
	S3URL        string    `json:"s3Url"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Data is the free-form specification bag edited on the detail page.
type Data struct {
	Mileage     *int   `json:"mileage,omitempty"`
	MileageUnit string `json:"mileage_unit,omitempty"`
	Volume      *int   `json:"volume,omitempty"`
	VolumeUnit  string `json:"volume_unit,omitempty"`
	FrameNumber string `json:"frame_number,omitempty"`
	ArrivalDate string `json:"arrival_date,omitempty"`
}

// HasPrice reports whether the price should be displayed.
func (m *Motorcycle) HasPrice() bool { return m.Price.IsPositive() }

// SortedPhotos returns the photos in display order. Equal orders keep the
// order in which the server returned them.
func (m *Motorcycle) SortedPhotos() []Photo {
	out := append([]Photo(nil), m.Photos...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Clone returns a deep copy, so drafts never alias the server copy.
func (m *Motorcycle) Clone() *Motorcycle {
	if m == nil {
		return nil
	}
	cp := *m
	if m.Description != nil {
		d := *m.Description
		cp.Description = &d
	}
	cp.Photos = append([]Photo(nil), m.Photos...)
	if m.Data != nil {
		d := m.Data.clone()
		cp.Data = &d
	}
	return &cp
}

func (d Data) clone() Data {
	cp := d
	if d.Mileage != nil {
		v := *d.Mileage
		cp.Mileage = &v
	}
	if d.Volume != nil {
		v := *d.Volume
		cp.Volume = &v
	}
	return cp
}

// Patch is a partial update. Nil fields are not sent.
// swagger:model PatchMotorcycle
type Patch struct {
	Title       *string          `json:"title,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *Status          `json:"status,omitempty"`
	Data        *Data            `json:"data,omitempty"`
}

func (p *Patch) Empty() bool {
	return p.Title == nil && p.Price == nil && p.Currency == nil &&
		p.Description == nil && p.Status == nil && p.Data == nil
}

// StatusUpdate is the body of the status endpoint.
// swagger:model StatusUpdate
type StatusUpdate struct {
	Status Status `json:"status" example:"reserved"`
}
