package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the Juice Tycoon API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("JUICETYCOON_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// CheckHealth checks if the API is up and running
func (c *ApiClient) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("API health check failed with status code: %d", resp.StatusCode)
	}

	return true, nil
}

// Snapshot mirrors the server's session snapshot
type Snapshot struct {
	Active               bool       `json:"active"`
	Difficulty           string     `json:"difficulty"`
	Score                int        `json:"score"`
	Streak               int        `json:"streak"`
	ComboCount           int        `json:"combo_count"`
	SessionTimeRemaining int        `json:"session_time_remaining"`
	OrderTimeRemaining   int        `json:"order_time_remaining"`
	Order                *Order     `json:"order"`
	Vessels              [][]string `json:"vessels"`
	UnlockedAchievements []string   `json:"unlocked_achievements"`
}

// Order mirrors the server's active order
type Order struct {
	ID       uint64 `json:"id"`
	Recipe   Recipe `json:"recipe"`
	Customer struct {
		Name  string `json:"name"`
		Glyph string `json:"glyph"`
	} `json:"customer"`
	TimeLimitSeconds int `json:"time_limit_seconds"`
	PenaltyPoints    int `json:"penalty_points"`
}

// Recipe mirrors a catalog recipe
type Recipe struct {
	Name     string   `json:"name"`
	FruitIDs []string `json:"fruit_ids"`
}

// GetState fetches the current session snapshot
func (c *ApiClient) GetState() (*Snapshot, error) {
	return c.getSnapshot(c.BaseURL + "/api/v1/state")
}

// SubmitFruit pours a fruit into a vessel
func (c *ApiClient) SubmitFruit(vessel int, fruitID string) (*Snapshot, error) {
	body, _ := json.Marshal(map[string]string{"fruit_id": fruitID})
	url := fmt.Sprintf("%s/api/v1/vessels/%d/fruits", c.BaseURL, vessel)
	return c.postSnapshot(url, body)
}

// ServeVessel serves a vessel against the active order
func (c *ApiClient) ServeVessel(vessel int) (*Snapshot, error) {
	url := fmt.Sprintf("%s/api/v1/vessels/%d/serve", c.BaseURL, vessel)
	return c.postSnapshot(url, nil)
}

// ResetSession restarts the session
func (c *ApiClient) ResetSession() (*Snapshot, error) {
	return c.postSnapshot(c.BaseURL+"/api/v1/session/reset", nil)
}

// SetDifficulty restarts the session under a new difficulty
func (c *ApiClient) SetDifficulty(level string) (*Snapshot, error) {
	body, _ := json.Marshal(map[string]string{"difficulty": level})
	return c.postSnapshot(c.BaseURL+"/api/v1/session/difficulty", body)
}

func (c *ApiClient) getSnapshot(url string) (*Snapshot, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(resp)
}

func (c *ApiClient) postSnapshot(url string, body []byte) (*Snapshot, error) {
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(resp)
}

func decodeSnapshot(resp *http.Response) (*Snapshot, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("API request failed with status code: %d", resp.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
