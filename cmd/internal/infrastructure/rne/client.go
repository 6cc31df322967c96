package rne

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"comparution/cmd/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://registre-national-entreprises.inpi.fr/api/companies/",
		token:      os.Getenv("RNE_API_TOKEN"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// GetBySIREN fetches the registry record for the given SIREN.
// A 404 maps to ErrNotFound; any other failure is returned as-is so the
// caller can tell "does not exist" from "could not reach the registry".
func (c *Client) GetBySIREN(ctx context.Context, siren string) (*entity.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+siren, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rne failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var company companyResponse
	err = json.Unmarshal(body, &company)
	if err != nil {
		return nil, err
	}
	return company.ToDomain(), nil
}
