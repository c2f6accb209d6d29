package models

import (
	"slices"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status in the order the dashboard shows them.
var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// ParseStatus maps the backend's free-text payment status onto the closed
// Status set. Anything unrecognized is pending.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusCompleted:
		return StatusCompleted
	case StatusProcessing:
		return StatusProcessing
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryEmail    DeliveryMethod = "email"
	DeliveryWhatsApp DeliveryMethod = "whatsapp"
	DeliveryDownload DeliveryMethod = "download"
	DeliveryPhysical DeliveryMethod = "physical"
)

// CustomerRow is one row of the customers table as PostgREST returns it.
type CustomerRow struct {
	ID             string   `json:"id"`
	CreatedAt      string   `json:"created_at"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          *string  `json:"phone"`
	ImageURL       []string `json:"image_url"`
	PaymentStatus  *string  `json:"payment_status"`
	PlanID         *string  `json:"plan_id"`
	PlanName       *string  `json:"plan_name"`
	PlanPrice      *float64 `json:"plan_price"`
	PlanImages     *int     `json:"plan_images"`
	DeliveryMethod []string `json:"delivery_method"`
	OrderNumber    string   `json:"order_number"`
}

// RestorationRequest is the normalized order the dashboard works with.
type RestorationRequest struct {
	ID               string           `json:"id"`
	CustomerName     string           `json:"customer_name"`
	CustomerEmail    string           `json:"customer_email"`
	CustomerPhone    *string          `json:"customer_phone,omitempty"`
	OriginalImageURL string           `json:"original_image_url"`
	RestoredImageURL *string          `json:"restored_image_url,omitempty"`
	ImageURLs        []string         `json:"image_url"`
	Status           Status           `json:"status"`
	PaymentStatus    string           `json:"payment_status"`
	Notes            *string          `json:"notes,omitempty"`
	OrderNumber      string           `json:"order_number"`
	DeliveryMethod   []DeliveryMethod `json:"delivery_method"`
	PlanID           *string          `json:"plan_id,omitempty"`
	PlanName         *string          `json:"plan_name,omitempty"`
	PlanPrice        *float64         `json:"plan_price,omitempty"`
	PlanImages       *int             `json:"plan_images,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with r.
func (r RestorationRequest) Clone() RestorationRequest {
	out := r
	out.CustomerPhone = clonePtr(r.CustomerPhone)
	out.RestoredImageURL = clonePtr(r.RestoredImageURL)
	out.Notes = clonePtr(r.Notes)
	out.PlanID = clonePtr(r.PlanID)
	out.PlanName = clonePtr(r.PlanName)
	out.PlanPrice = clonePtr(r.PlanPrice)
	out.PlanImages = clonePtr(r.PlanImages)
	out.ImageURLs = slices.Clone(r.ImageURLs)
	out.DeliveryMethod = slices.Clone(r.DeliveryMethod)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
