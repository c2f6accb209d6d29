package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

func listFixture() []models.RestorationRequest {
	return []models.RestorationRequest{
		{ID: "1", CustomerName: "Ana Souza", CustomerEmail: "ana@example.com", CustomerPhone: strPtr("11 98765-4321"), Status: models.StatusPending},
		{ID: "2", CustomerName: "Bruno Lima", CustomerEmail: "BRUNO@Example.com", Status: models.StatusProcessing},
		{ID: "3", CustomerName: "Carla Dias", CustomerEmail: "carla@example.com", Status: models.StatusCompleted},
		{ID: "4", CustomerName: "Diego Alves", CustomerEmail: "diego@example.com", CustomerPhone: strPtr("21 91234-5678"), Status: models.StatusPending},
		{ID: "5", CustomerName: "Eva Ramos", CustomerEmail: "eva@example.com", Status: models.StatusCancelled},
	}
}

func ids(requests []models.RestorationRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	requests := listFixture()

	tests := []struct {
		name  string
		query services.Query
		want  []string
	}{
		{"all", services.Query{Status: "all"}, []string{"1", "2", "3", "4", "5"}},
		{"empty query", services.Query{}, []string{"1", "2", "3", "4", "5"}},
		{"pending", services.Query{Status: "pending"}, []string{"1", "4"}},
		{"cancelled", services.Query{Status: "cancelled"}, []string{"5"}},
		{"search name case-insensitive", services.Query{Search: "bruno"}, []string{"2"}},
		{"search email", services.Query{Search: "example.COM"}, []string{"1", "2", "3", "4", "5"}},
		{"search phone", services.Query{Search: "91234"}, []string{"4"}},
		{"status and search", services.Query{Status: "pending", Search: "ana"}, []string{"1"}},
		{"no match", services.Query{Status: "completed", Search: "ana"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(services.Filter(requests, tt.query)))
		})
	}
}

func TestValidStatusFilter(t *testing.T) {
	assert.True(t, services.ValidStatusFilter(""))
	assert.True(t, services.ValidStatusFilter("all"))
	assert.True(t, services.ValidStatusFilter("processing"))
	assert.False(t, services.ValidStatusFilter("archived"))
}

func TestCountByStatus(t *testing.T) {
	counts := services.CountByStatus(listFixture())
	assert.Equal(t, map[models.Status]int{
		models.StatusPending:    2,
		models.StatusProcessing: 1,
		models.StatusCompleted:  1,
		models.StatusCancelled:  1,
	}, counts)

	empty := services.CountByStatus(nil)
	assert.Len(t, empty, 4)
	assert.Equal(t, 0, empty[models.StatusCompleted])
}

func TestPriorityAndRecent(t *testing.T) {
	var many []models.RestorationRequest
	for i := 0; i < 12; i++ {
		many = append(many, models.RestorationRequest{ID: fmt.Sprint(i), Status: models.StatusPending})
	}

	assert.Equal(t, []string{"0", "1", "2"}, ids(services.Priority(many)))
	assert.Len(t, services.Recent(many), 10)
	assert.Equal(t, "0", services.Recent(many)[0].ID)

	assert.Equal(t, []string{"1", "4"}, ids(services.Priority(listFixture())))
	assert.Len(t, services.Recent(listFixture()), 5)
}
