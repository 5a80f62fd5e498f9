// Package jira pushes a version's priority matrix to Jira as issues.
// The integration is optional: without credentials the client reports
// itself unconfigured and the endpoint degrades to a stub response.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config carries the Jira connection settings.
type Config struct {
	BaseURL    string
	Username   string
	APIToken   string
	ProjectKey string
}

// Client talks to the Jira REST v2 API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a Jira client; it is usable even when unconfigured.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether all connection settings are present.
func (c *Client) Configured() bool {
	return c.cfg.BaseURL != "" && c.cfg.Username != "" && c.cfg.APIToken != "" && c.cfg.ProjectKey != ""
}

type issue struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     issueProject `json:"project"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	IssueType   issueType    `json:"issuetype"`
}

type issueProject struct {
	Key string `json:"key"`
}

type issueType struct {
	Name string `json:"name"`
}

type issueCreated struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// Requirement is one row of a version's priority matrix.
type Requirement struct {
	Summary  string
	Priority string
}

// PushRequirements creates one Task per requirement and returns the
// created issue keys. It stops at the first failure.
func (c *Client) PushRequirements(ctx context.Context, projectName string, requirements []Requirement) ([]string, error) {
	keys := make([]string, 0, len(requirements))
	for _, req := range requirements {
		summary := req.Summary
		if len(summary) > 250 {
			summary = summary[:250]
		}
		created, err := c.createIssue(ctx, issue{
			Fields: issueFields{
				Project:     issueProject{Key: c.cfg.ProjectKey},
				Summary:     summary,
				Description: fmt.Sprintf("Generated from the %s BRD.\n\nMoSCoW priority: %s", projectName, req.Priority),
				IssueType:   issueType{Name: "Task"},
			},
		})
		if err != nil {
			return keys, err
		}
		keys = append(keys, created.Key)
	}
	return keys, nil
}

func (c *Client) createIssue(ctx context.Context, payload issue) (*issueCreated, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/rest/api/2/issue", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("jira returned status %d: %s", resp.StatusCode, string(raw))
	}

	var created issueCreated
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &created, nil
}
