package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"blogfront/app/models"
)

// postDocument is the wire shape of the data source document.
type postDocument struct {
	Posts []*models.Post `json:"posts"`
}

// DataSource fetches the post document from its fixed URL.
type DataSource struct {
	url    string
	client *http.Client
}

// NewDataSource creates a new DataSource for the configured document URL.
func NewDataSource(cfg Config) *DataSource {
	return &DataSource{
		url:    cfg.DataSourceURL,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Fetch retrieves and decodes the post document. A non-2xx response or
// a malformed body is an error; the caller decides how to degrade.
func (ds *DataSource) Fetch(ctx context.Context) ([]*models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ds.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}

	resp, err := ds.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("data source returned status %d", resp.StatusCode)
	}

	var doc postDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode post document: %v", err)
	}

	return doc.Posts, nil
}
