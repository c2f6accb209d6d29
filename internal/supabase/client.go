package supabase

import (
	"github.com/supabase-community/supabase-go"
	"restoration-admin-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	if missing := cfg.MissingSupabaseCredentials(); len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
