package boardclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/pkg/boardclient"
)

func TestListTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Ship report","priority":"high","status":"todo","tags":[]}]`))
	}))
	defer server.Close()

	client := boardclient.New(server.URL)
	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, uint64(1), tasks[0].ID)
	require.Equal(t, boardclient.StatusTodo, tasks[0].Status)
}

func TestMoveTask_SendsPatchWithBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/tasks/7", r.URL.Path)
		require.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		var payload struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "in-progress", payload.Status)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"title":"Ship report","priority":"high","status":"in-progress","tags":[]}`))
	}))
	defer server.Close()

	client := boardclient.New(server.URL, boardclient.WithToken("secret-token"))
	task, err := client.MoveTask(context.Background(), 7, boardclient.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, boardclient.StatusInProgress, task.Status)
}

func TestErrorEnvelopeMessageSurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"you can only move tasks assigned to you"}}`))
	}))
	defer server.Close()

	client := boardclient.New(server.URL, boardclient.WithToken("secret-token"))
	_, err := client.MoveTask(context.Background(), 7, boardclient.StatusDone)

	var apiErr *boardclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, "you can only move tasks assigned to you", apiErr.Message)
}

func TestErrorWithoutEnvelopeFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream died"))
	}))
	defer server.Close()

	client := boardclient.New(server.URL)
	_, err := client.ListTasks(context.Background())

	var apiErr *boardclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestDeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/tasks/3", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := boardclient.New(server.URL, boardclient.WithToken("secret-token"))
	require.NoError(t, client.DeleteTask(context.Background(), 3))
}

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Ship report", payload["title"])
		require.NotContains(t, payload, "status")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":12,"title":"Ship report","priority":"medium","status":"todo","tags":[]}`))
	}))
	defer server.Close()

	client := boardclient.New(server.URL, boardclient.WithToken("secret-token"))
	task, err := client.CreateTask(context.Background(), boardclient.CreateTaskRequest{Title: "Ship report"})
	require.NoError(t, err)
	require.Equal(t, uint64(12), task.ID)
}
