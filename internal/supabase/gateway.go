package supabase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"restoration-admin-backend/internal/config"
	"restoration-admin-backend/internal/models"
)

const customersTable = "customers"

// TableQuerier is satisfied by *supabase.Client and *postgrest.Client.
type TableQuerier interface {
	From(table string) *postgrest.QueryBuilder
}

// Gateway translates order operations into PostgREST calls against the
// customers table. It never retries.
type Gateway struct {
	querier TableQuerier
	missing []string
}

// NewGateway builds the production gateway. Missing credentials do not fail
// construction; every operation on the returned gateway reports them instead.
func NewGateway(cfg *config.Config) (*Gateway, error) {
	client, err := NewClient(cfg)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			return &Gateway{missing: cfgErr.Missing}, nil
		}
		return nil, fmt.Errorf("failed to initialize supabase client: %w", err)
	}
	return NewGatewayWithQuerier(client.Supabase), nil
}

func NewGatewayWithQuerier(q TableQuerier) *Gateway {
	return &Gateway{querier: q}
}

func (g *Gateway) ready() error {
	if len(g.missing) > 0 {
		return &ConfigurationError{Missing: g.missing}
	}
	if g.querier == nil {
		return &ConfigurationError{Missing: []string{"SUPABASE_URL", "SUPABASE_ANON_KEY"}}
	}
	return nil
}

// ListAll returns every customers row, newest first.
func (g *Gateway) ListAll() ([]models.CustomerRow, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	body, _, err := g.querier.From(customersTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, &RemoteError{Op: "list customers", Err: err}
	}

	var rows []models.CustomerRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RemoteError{Op: "list customers", Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return rows, nil
}

// UpdateStatus writes payment_status for the row matching id.
func (g *Gateway) UpdateStatus(id, paymentStatus string) error {
	if err := g.ready(); err != nil {
		return err
	}

	return g.patch("update status", id, map[string]interface{}{
		"payment_status": paymentStatus,
	})
}

// FetchImages reads the ordered image_url sequence of one row.
func (g *Gateway) FetchImages(id string) ([]string, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	body, _, err := g.querier.From(customersTable).
		Select("image_url", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, &RemoteError{Op: "fetch images", Err: err}
	}

	var rows []struct {
		ImageURL []string `json:"image_url"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RemoteError{Op: "fetch images", Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &RemoteError{Op: "fetch images", Err: ErrNotFound}
	}
	return rows[0].ImageURL, nil
}

// UpdateImages replaces the image_url sequence of one row.
func (g *Gateway) UpdateImages(id string, images []string) error {
	if err := g.ready(); err != nil {
		return err
	}

	return g.patch("update images", id, map[string]interface{}{
		"image_url": images,
	})
}

func (g *Gateway) patch(op, id string, values map[string]interface{}) error {
	body, _, err := g.querier.From(customersTable).
		Update(values, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(rows) == 0 {
		return &RemoteError{Op: op, Err: ErrNotFound}
	}
	return nil
}
