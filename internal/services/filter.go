package services

import (
	"strings"

	"restoration-admin-backend/internal/models"
)

const (
	StatusFilterAll = "all"

	priorityLimit = 3
	recentLimit   = 10
)

// Query is the list view's filter: a status (or "all") and free-text search.
type Query struct {
	Status string
	Search string
}

// ValidStatusFilter reports whether s is "all", empty or a known status.
func ValidStatusFilter(s string) bool {
	return s == "" || s == StatusFilterAll || models.Status(s).Valid()
}

// Filter keeps the requests matching q, in their original order. Search is a
// case-insensitive substring match on name, email and phone.
func Filter(requests []models.RestorationRequest, q Query) []models.RestorationRequest {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.RestorationRequest, 0, len(requests))
	for _, r := range requests {
		if q.Status != "" && q.Status != StatusFilterAll && string(r.Status) != q.Status {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r models.RestorationRequest, search string) bool {
	if strings.Contains(strings.ToLower(r.CustomerName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.CustomerEmail), search) {
		return true
	}
	return r.CustomerPhone != nil && strings.Contains(strings.ToLower(*r.CustomerPhone), search)
}

// CountByStatus always contains all four statuses.
func CountByStatus(requests []models.RestorationRequest) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, s := range models.Statuses {
		counts[s] = 0
	}
	for _, r := range requests {
		counts[r.Status]++
	}
	return counts
}

// Priority returns the first pending requests.
func Priority(requests []models.RestorationRequest) []models.RestorationRequest {
	out := make([]models.RestorationRequest, 0, priorityLimit)
	for _, r := range requests {
		if len(out) == priorityLimit {
			break
		}
		if r.Status == models.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// Recent returns the newest requests; the collection is already sorted.
func Recent(requests []models.RestorationRequest) []models.RestorationRequest {
	if len(requests) <= recentLimit {
		return append([]models.RestorationRequest{}, requests...)
	}
	return append([]models.RestorationRequest{}, requests[:recentLimit]...)
}
