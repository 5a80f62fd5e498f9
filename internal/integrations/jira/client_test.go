package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient(Config{}).Configured())
	assert.False(t, NewClient(Config{BaseURL: "https://x", Username: "u", APIToken: "t"}).Configured())
	assert.True(t, NewClient(Config{BaseURL: "https://x", Username: "u", APIToken: "t", ProjectKey: "PROJ"}).Configured())
}

func TestPushRequirementsCreatesIssues(t *testing.T) {
	var received []issue
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/api/2/issue", r.URL.Path)
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "analyst@example.com", user)

		var payload issue
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received = append(received, payload)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":"1000%d","key":"PROJ-%d"}`, len(received), len(received))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:    srv.URL,
		Username:   "analyst@example.com",
		APIToken:   "token",
		ProjectKey: "PROJ",
	})

	keys, err := client.PushRequirements(context.Background(), "Policy Portal", []Requirement{
		{Summary: "System must support ingestion", Priority: "Must"},
		{Summary: "Reporting could arrive later", Priority: "Could"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"PROJ-1", "PROJ-2"}, keys)

	require.Len(t, received, 2)
	assert.Equal(t, "PROJ", received[0].Fields.Project.Key)
	assert.Equal(t, "Task", received[0].Fields.IssueType.Name)
	assert.Contains(t, received[0].Fields.Description, "MoSCoW priority: Must")
}

func TestPushRequirementsStopsOnFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			http.Error(w, `{"errorMessages":["boom"]}`, http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"1","key":"PROJ-1"}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Username: "u", APIToken: "t", ProjectKey: "PROJ"})

	keys, err := client.PushRequirements(context.Background(), "P", []Requirement{
		{Summary: "a", Priority: "Must"},
		{Summary: "b", Priority: "Should"},
		{Summary: "c", Priority: "Could"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, []string{"PROJ-1"}, keys)
	assert.Equal(t, 2, calls)
}
