package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// HTTPAdapter performs typed GET requests against external JSON APIs
type HTTPAdapter interface {
	Get(ctx context.Context, url string, out any) error
}

// StatusError is returned when the remote API answers with a non 2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch data from %s: %s", e.URL, e.Status)
}

// FetchAdapter is the HTTPAdapter backed by net/http
type FetchAdapter struct {
	client *http.Client
}

// NewFetchAdapter uses http.DefaultClient when client is nil
func NewFetchAdapter(client *http.Client) *FetchAdapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &FetchAdapter{client: client}
}

// Get decodes the JSON body of url into out
func (a *FetchAdapter) Get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode JSON response: %v", err)
	}
	return nil
}
