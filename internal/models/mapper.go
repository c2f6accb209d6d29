package models

import (
	"time"
)

// Layouts the customers table has been seen to emit for created_at.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// NormalizeCustomer converts a raw customers row into a RestorationRequest.
// The customers schema has no notes or updated_at column: notes start empty
// and updated_at starts as created_at.
func NormalizeCustomer(row CustomerRow) RestorationRequest {
	createdAt := parseTimestamp(row.CreatedAt)

	req := RestorationRequest{
		ID:             row.ID,
		CustomerName:   row.Name,
		CustomerEmail:  row.Email,
		CustomerPhone:  row.Phone,
		ImageURLs:      row.ImageURL,
		OrderNumber:    row.OrderNumber,
		DeliveryMethod: make([]DeliveryMethod, 0, len(row.DeliveryMethod)),
		PlanID:         row.PlanID,
		PlanName:       row.PlanName,
		PlanPrice:      row.PlanPrice,
		PlanImages:     row.PlanImages,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	if len(row.ImageURL) > 0 {
		req.OriginalImageURL = row.ImageURL[0]
	}
	if len(row.ImageURL) > 1 {
		restored := row.ImageURL[1]
		req.RestoredImageURL = &restored
	}

	if row.PaymentStatus != nil {
		req.PaymentStatus = *row.PaymentStatus
	}
	req.Status = ParseStatus(req.PaymentStatus)

	for _, m := range row.DeliveryMethod {
		req.DeliveryMethod = append(req.DeliveryMethod, DeliveryMethod(m))
	}

	return req.Clone()
}

func NormalizeCustomers(rows []CustomerRow) []RestorationRequest {
	out := make([]RestorationRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, NormalizeCustomer(row))
	}
	return out
}

// WithRestoredImage returns the image sequence to write back when attaching a
// restored image: the original stays at index 0 and the restored URL goes to
// index 1. Without a prior sequence the result holds only the new URL.
func WithRestoredImage(current []string, restoredURL string) []string {
	if len(current) == 0 {
		return []string{restoredURL}
	}
	return []string{current[0], restoredURL}
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
