package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"plansync/internal/taskindex"
)

// Client is the HTTP wrapper for a task index service.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new task index HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Ping checks GET /health.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call task index health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("task index health status %d", resp.StatusCode)
	}
	return nil
}

// GetTasks fetches the tasks of one note via GET /api/v1/tasks?path=….
func (c *Client) GetTasks(ctx context.Context, path string) ([]taskindex.RawTask, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tasks?path=%s", c.baseURL, url.QueryEscape(path))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get tasks request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task index API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("task index API error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Tasks []taskDTO `json:"tasks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode task index response: %w", err)
	}

	tasks := make([]taskindex.RawTask, 0, len(listResp.Tasks))
	for _, dto := range listResp.Tasks {
		tasks = append(tasks, dto.toRawTask())
	}
	return tasks, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
}

// ---- Request/Response types scoped to this package ----

type taskDTO struct {
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	OriginalMarkdown string   `json:"originalMarkdown"`
	LineNumber       int      `json:"lineNumber"`
	BlockLink        string   `json:"blockLink"`
	Tags             []string `json:"tags"`
	Happens          string   `json:"happens"`
	HappensHasTime   bool     `json:"happensHasTime"`
	Scheduled        string   `json:"scheduled"`
	Start            string   `json:"start"`
	Due              string   `json:"due"`
	Done             string   `json:"done"`
}

func (d taskDTO) toRawTask() taskindex.RawTask {
	return taskindex.RawTask{
		Description:      d.Description,
		StatusIndicator:  d.Status,
		OriginalMarkdown: d.OriginalMarkdown,
		LineNumber:       d.LineNumber,
		BlockLink:        d.BlockLink,
		Tags:             d.Tags,
		Happens:          parseInstant(d.Happens),
		HappensHasTime:   d.HappensHasTime,
		Scheduled:        parseInstant(d.Scheduled),
		Start:            parseInstant(d.Start),
		Due:              parseInstant(d.Due),
		Done:             parseInstant(d.Done),
	}
}

var instantLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", time.DateOnly}

// parseInstant returns nil for empty or unparseable values. Values without an
// offset are read in local time.
func parseInstant(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
