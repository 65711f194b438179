package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ykarpenko/sessionkeeper/internal/client/models"
	"github.com/ykarpenko/sessionkeeper/internal/common"
)

// RESTStore talks to a json-server-style REST profile store.
type RESTStore struct {
	baseURL string
	client  *http.Client
}

// NewRESTStore constructs a store client for the given base URL (no trailing
// slash). Timeout bounds each request; zero means no limit.
func NewRESTStore(baseURL string, timeout time.Duration) *RESTStore {
	return &RESTStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *RESTStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile store: unexpected status %d", resp.StatusCode)
	}

	stored := &models.User{}
	if err := json.NewDecoder(resp.Body).Decode(stored); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return stored, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, common.ErrorNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile store: unexpected status %d", resp.StatusCode)
	}

	user := &models.User{}
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return user, nil
}

func (s *RESTStore) FindByEmail(ctx context.Context, email string) ([]*models.User, error) {
	u := s.baseURL + "/users?email=" + url.QueryEscape(email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile store: unexpected status %d", resp.StatusCode)
	}

	var users []*models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return users, nil
}
