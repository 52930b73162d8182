// services/clash_service.go - Clash Royale API gateway
package services

import (
	"clanboard/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the official Clash Royale API root.
const DefaultBaseURL = "https://api.clashroyale.com/v1"

// APIError carries the upstream status plus the optional reason/message pair
// the API puts in non-2xx bodies.
type APIError struct {
	Status  int
	Reason  string
	Message string
}

func (e *APIError) Error() string {
	switch e.Status {
	case http.StatusForbidden:
		return "Access denied (403). Check that the API token is valid and that this IP is allowed for the key."
	case http.StatusNotFound:
		return "Clan not found (404). Does the clan tag exist?"
	default:
		return fmt.Sprintf("Clash Royale API error (%d): %s - %s", e.Status, e.Reason, e.Message)
	}
}

// ClashService wraps the two read-only calls the dashboard needs. It never
// retries; a failed call stays failed until the operator triggers a new one.
type ClashService struct {
	baseURL string
	client  *http.Client
}

// NewClashService builds a gateway against baseURL, falling back to the
// official API when baseURL is empty.
func NewClashService(baseURL string) *ClashService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ClashService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// get performs one authorized call and decodes the 2xx body into out.
// A missing token is a precondition failure; no request goes out.
func (s *ClashService) get(path, apiToken string, out interface{}) error {
	if apiToken == "" {
		return errors.New("API token is required")
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach the Clash Royale API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Reason  string `json:"reason"`
			Message string `json:"message"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&detail); decErr == nil {
			apiErr.Reason = detail.Reason
			apiErr.Message = detail.Message
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// GetClanMembers returns the clan's current roster. The two outcomes are
// distinct on purpose: a nil slice with a non-nil error means the call
// failed, an empty slice with a nil error means the clan really has zero
// members. Callers must branch on the error, never on slice nilness.
func (s *ClashService) GetClanMembers(clanTag, apiToken string) ([]models.Member, error) {
	var payload struct {
		Items []models.Member `json:"items"`
	}
	path := "/clans/" + url.PathEscape(clanTag) + "/members"
	if err := s.get(path, apiToken, &payload); err != nil {
		return nil, err
	}
	if payload.Items == nil {
		return []models.Member{}, nil
	}
	return payload.Items, nil
}

// GetCurrentRiverRace returns the clan's current river race snapshot. On
// failure the zero-value snapshot comes back alongside the error, so callers
// always hold a well-formed value whose State they can inspect.
func (s *ClashService) GetCurrentRiverRace(clanTag, apiToken string) (models.RiverRace, error) {
	var race models.RiverRace
	path := "/clans/" + url.PathEscape(clanTag) + "/currentriverrace"
	if err := s.get(path, apiToken, &race); err != nil {
		return models.RiverRace{}, err
	}
	return race, nil
}
