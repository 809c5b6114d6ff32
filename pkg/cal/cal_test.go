package cal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oppmote/oppmote-backend/pkg/cal"
)

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		token        string
		status       int
		body         string
		expectOK     bool
		closedServer bool
		expectErr    bool
	}{
		{
			name:     "should return current user",
			token:    "tok-123",
			status:   http.StatusOK,
			body:     `{"resource":{"name":"Kari Nordmann"}}`,
			expectOK: true,
		},
		{
			name:     "should relay upstream rejection",
			token:    "tok-expired",
			status:   http.StatusUnauthorized,
			body:     `{"title":"Unauthenticated"}`,
			expectOK: false,
		},
		{
			name:         "should return error on transport failure",
			token:        "tok-123",
			closedServer: true,
			expectErr:    true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/me", r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "Bearer "+tc.token, r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer testServer.Close()

			if tc.closedServer {
				testServer.Close()
			}

			client := cal.New(testServer.URL, http.DefaultClient)
			got, err := client.CurrentUser(context.Background(), tc.token)
			if tc.expectErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.status, got.StatusCode)
			assert.Equal(t, tc.body, string(got.Body))
			assert.Equal(t, tc.expectOK, got.OK())
		})
	}
}

func TestClient_Locations(t *testing.T) {
	t.Parallel()

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "https://api.example.com/users/abc", r.URL.Query().Get("user"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collection":[]}`))
	}))
	defer testServer.Close()

	client := cal.New(testServer.URL, http.DefaultClient)
	got, err := client.Locations(context.Background(), "tok-123", "https://api.example.com/users/abc")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, `{"collection":[]}`, string(got.Body))
}

func TestClient_CreateEventType(t *testing.T) {
	t.Parallel()

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event_types", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Intro call", body["name"])
		assert.Equal(t, true, body["active"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"uri":"https://api.example.com/event_types/et-1"}`))
	}))
	defer testServer.Close()

	client := cal.New(testServer.URL, http.DefaultClient)
	got, err := client.CreateEventType(context.Background(), "tok-123", map[string]any{
		"name":   "Intro call",
		"active": true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, got.StatusCode)
	assert.True(t, got.OK())
}

func TestClient_ListEventTypes(t *testing.T) {
	t.Parallel()

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event_types", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		assert.Equal(t, "abc", r.URL.Query().Get("page_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collection":[],"pagination":{}}`))
	}))
	defer testServer.Close()

	query := url.Values{}
	query.Set("count", "5")
	query.Set("page_token", "abc")

	client := cal.New(testServer.URL, http.DefaultClient)
	got, err := client.ListEventTypes(context.Background(), "tok-123", query)

	require.NoError(t, err)
	assert.Equal(t, `{"collection":[],"pagination":{}}`, string(got.Body))
}

func TestClient_UpdateEventType(t *testing.T) {
	t.Parallel()

	eventTypeID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000").String()

	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "should relay success",
			status: http.StatusOK,
			body:   `{"resource":{"slug":"intro-call"}}`,
		},
		{
			name:   "should relay unprocessable entity verbatim",
			status: http.StatusUnprocessableEntity,
			body:   `{"title":"Invalid Argument","details":[{"parameter":"duration"}]}`,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/event_types/"+eventTypeID, r.URL.Path)
				assert.Equal(t, http.MethodPatch, r.Method)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer testServer.Close()

			client := cal.New(testServer.URL, http.DefaultClient)
			got, err := client.UpdateEventType(context.Background(), "tok-123", eventTypeID, map[string]any{"duration": 45})

			require.NoError(t, err)
			assert.Equal(t, tc.status, got.StatusCode)
			assert.Equal(t, tc.body, string(got.Body))
		})
	}
}

func TestClient_UpdateAvailabilitySchedule(t *testing.T) {
	t.Parallel()

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event_type_availability_schedules", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "rules")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resource":{}}`))
	}))
	defer testServer.Close()

	client := cal.New(testServer.URL, http.DefaultClient)
	got, err := client.UpdateAvailabilitySchedule(context.Background(), "tok-123", map[string]any{
		"rules": []any{map[string]any{"wday": "monday"}},
	})

	require.NoError(t, err)
	assert.True(t, got.OK())
}
