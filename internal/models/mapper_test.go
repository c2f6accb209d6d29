package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"restoration-admin-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want models.Status
	}{
		{"completed", models.StatusCompleted},
		{"processing", models.StatusProcessing},
		{"cancelled", models.StatusCancelled},
		{"pending", models.StatusPending},
		{"paid", models.StatusPending},
		{"COMPLETED", models.StatusPending},
		{"", models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := models.ParseStatus(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestNormalizeCustomer_FromJSON(t *testing.T) {
	raw := `{
		"id": "8f0c6a4e-1b7d-4c5e-9a51-3f1f6c0c2d11",
		"created_at": "2025-03-02T14:05:09.123456+00:00",
		"name": "Ana Souza",
		"email": "ana@example.com",
		"phone": "(11) 98765-4321",
		"image_url": ["https://cdn.example.com/orig.jpg", "https://cdn.example.com/restored.jpg"],
		"payment_status": "processing",
		"plan_id": "premium",
		"plan_name": "Premium",
		"plan_price": 49.9,
		"plan_images": 3,
		"delivery_method": ["email", "whatsapp"],
		"order_number": "RP-1042"
	}`

	var row models.CustomerRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	req := models.NormalizeCustomer(row)

	assert.Equal(t, "8f0c6a4e-1b7d-4c5e-9a51-3f1f6c0c2d11", req.ID)
	assert.Equal(t, "Ana Souza", req.CustomerName)
	assert.Equal(t, "ana@example.com", req.CustomerEmail)
	require.NotNil(t, req.CustomerPhone)
	assert.Equal(t, "(11) 98765-4321", *req.CustomerPhone)
	assert.Equal(t, "https://cdn.example.com/orig.jpg", req.OriginalImageURL)
	require.NotNil(t, req.RestoredImageURL)
	assert.Equal(t, "https://cdn.example.com/restored.jpg", *req.RestoredImageURL)
	assert.Equal(t, models.StatusProcessing, req.Status)
	assert.Nil(t, req.Notes)
	assert.Equal(t, []models.DeliveryMethod{models.DeliveryEmail, models.DeliveryWhatsApp}, req.DeliveryMethod)
	assert.Equal(t, "RP-1042", req.OrderNumber)
	assert.Equal(t, 49.9, *req.PlanPrice)
	assert.Equal(t, 3, *req.PlanImages)

	wantCreated := time.Date(2025, 3, 2, 14, 5, 9, 123456000, time.UTC)
	assert.True(t, req.CreatedAt.Equal(wantCreated))
	assert.True(t, req.UpdatedAt.Equal(req.CreatedAt))
}

func TestNormalizeCustomer_UnknownPaymentStatusIsPending(t *testing.T) {
	for _, ps := range []*string{nil, strPtr(""), strPtr("paid"), strPtr("refunded")} {
		req := models.NormalizeCustomer(models.CustomerRow{ID: "1", PaymentStatus: ps})
		assert.Equal(t, models.StatusPending, req.Status)
	}
}

func TestNormalizeCustomer_Images(t *testing.T) {
	empty := models.NormalizeCustomer(models.CustomerRow{ID: "1"})
	assert.Equal(t, "", empty.OriginalImageURL)
	assert.Nil(t, empty.RestoredImageURL)

	single := models.NormalizeCustomer(models.CustomerRow{ID: "2", ImageURL: []string{"http://x/orig.jpg"}})
	assert.Equal(t, "http://x/orig.jpg", single.OriginalImageURL)
	assert.Nil(t, single.RestoredImageURL)
}

func TestNormalizeCustomer_TimestampWithoutZone(t *testing.T) {
	req := models.NormalizeCustomer(models.CustomerRow{ID: "1", CreatedAt: "2025-01-10T08:00:00"})
	assert.True(t, req.CreatedAt.Equal(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)))

	bad := models.NormalizeCustomer(models.CustomerRow{ID: "2", CreatedAt: "yesterday"})
	assert.True(t, bad.CreatedAt.IsZero())
}

func TestNormalizeCustomers_PreservesOrder(t *testing.T) {
	rows := []models.CustomerRow{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	out := models.NormalizeCustomers(rows)

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
}

func TestWithRestoredImage(t *testing.T) {
	assert.Equal(t,
		[]string{"http://x/orig.jpg", "http://x/new.jpg"},
		models.WithRestoredImage([]string{"http://x/orig.jpg"}, "http://x/new.jpg"))

	assert.Equal(t,
		[]string{"http://x/new.jpg"},
		models.WithRestoredImage(nil, "http://x/new.jpg"))

	assert.Equal(t,
		[]string{"http://x/orig.jpg", "http://x/new.jpg"},
		models.WithRestoredImage([]string{"http://x/orig.jpg", "http://x/old.jpg", "http://x/extra.jpg"}, "http://x/new.jpg"))
}

func TestClone_IsIndependent(t *testing.T) {
	orig := models.NormalizeCustomer(models.CustomerRow{
		ID:             "1",
		Phone:          strPtr("123"),
		ImageURL:       []string{"a", "b"},
		DeliveryMethod: []string{"email"},
	})

	cp := orig.Clone()
	cp.ImageURLs[0] = "changed"
	*cp.CustomerPhone = "999"
	cp.DeliveryMethod[0] = models.DeliveryPhysical

	assert.Equal(t, "a", orig.ImageURLs[0])
	assert.Equal(t, "123", *orig.CustomerPhone)
	assert.Equal(t, models.DeliveryEmail, orig.DeliveryMethod[0])
}
