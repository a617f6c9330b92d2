package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/promptpack/go-prompts/pkg/prompt"
)

// DefaultTable is the remote table templates are read from.
const DefaultTable = "prompts"

// Supabase reads templates from a PostgREST-exposed table with columns
// name, content, description, and author.
type Supabase struct {
	client *postgrest.Client
	table  string
	logger *slog.Logger
}

var _ prompt.Store = (*Supabase)(nil)

// NewSupabaseClient builds a PostgREST client for a Supabase project from
// its endpoint URL and access key.
func NewSupabaseClient(rawURL, key string) *postgrest.Client {
	base := strings.TrimRight(rawURL, "/")
	if !strings.HasSuffix(base, "/rest/v1") {
		base += "/rest/v1"
	}
	headers := map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	}
	return postgrest.NewClient(base, "", headers)
}

// NewSupabase returns a Supabase store querying DefaultTable through client.
func NewSupabase(client *postgrest.Client, logger *slog.Logger) *Supabase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Supabase{client: client, table: DefaultTable, logger: logger}
}

type promptRow struct {
	Name        string `json:"name"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// Load fetches the row whose name column equals name. Zero rows yield
// prompt.ErrNotFound, more than one prompt.ErrAmbiguous; query failures
// surface from the client.
func (s *Supabase) Load(ctx context.Context, name string) (prompt.Raw, error) {
	if name == "" {
		return prompt.Raw{}, fmt.Errorf("store: template name is required")
	}
	select {
	case <-ctx.Done():
		return prompt.Raw{}, ctx.Err()
	default:
	}

	data, _, err := s.client.
		From(s.table).
		Select("name,content,description,author", "", false).
		Eq("name", name).
		Execute()
	if err != nil {
		return prompt.Raw{}, fmt.Errorf("store: query template %q: %w", name, err)
	}

	var rows []promptRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return prompt.Raw{}, fmt.Errorf("store: decode template %q: %w", name, err)
	}

	switch len(rows) {
	case 0:
		return prompt.Raw{}, fmt.Errorf("store: template %q: %w", name, prompt.ErrNotFound)
	case 1:
	default:
		return prompt.Raw{}, fmt.Errorf("store: template %q matched %d rows: %w", name, len(rows), prompt.ErrAmbiguous)
	}

	row := rows[0]
	meta := prompt.Metadata{}
	if row.Description != "" {
		meta["description"] = row.Description
	}
	if row.Author != "" {
		meta["author"] = row.Author
	}
	s.logger.Debug("loaded remote template", "name", name, "table", s.table)

	return prompt.Raw{
		Name:   name,
		Source: row.Content,
		Body:   row.Content,
		Meta:   meta,
	}, nil
}
