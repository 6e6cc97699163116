package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobia-app/cobia-api/internal/domain"
	"github.com/cobia-app/cobia-api/internal/query"
	"github.com/cobia-app/cobia-api/internal/store"
)

// MockEventStore is a mock implementation of store.EventStore for testing
type MockEventStore struct {
	InsertFn func(ctx context.Context, event domain.Event) (*store.InsertResult, error)
	FindFn   func(ctx context.Context, spec query.Spec) ([]map[string]any, error)
}

// Insert implements store.EventStore
func (m *MockEventStore) Insert(ctx context.Context, event domain.Event) (*store.InsertResult, error) {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, event)
	}
	return &store.InsertResult{Created: true, InsertedCount: 1, ID: "abc123"}, nil
}

// Find implements store.EventStore
func (m *MockEventStore) Find(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, spec)
	}
	return nil, nil
}

func TestEventHandler_ListEvents(t *testing.T) {
	storedEvents := []map[string]any{
		{"captureType": "monitor", "url": "https://a.example"},
		{"captureType": "monitor", "url": "https://b.example"},
	}

	tests := []struct {
		name            string
		target          string
		setupMock       func(*MockEventStore)
		expectedStatus  int
		expectedCount   int
		expectEmptyBody bool
	}{
		{
			name:   "returns_matching_events",
			target: "/api/events/?captureType=monitor",
			setupMock: func(m *MockEventStore) {
				m.FindFn = func(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
					return storedEvents, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "no_matches_gives_bare_404",
			target: "/api/events/?captureType=unknown",
			setupMock: func(m *MockEventStore) {
				m.FindFn = func(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
					return nil, nil
				}
			},
			expectedStatus:  http.StatusNotFound,
			expectEmptyBody: true,
		},
		{
			name:   "unsafe_query_fails_before_the_store_is_reached",
			target: "/api/events/?captureType=%24where",
			setupMock: func(m *MockEventStore) {
				m.FindFn = func(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
					t.Fatal("store must not be called for unsafe queries")
					return nil, nil
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "store_failure_gives_500",
			target: "/api/events/",
			setupMock: func(m *MockEventStore) {
				m.FindFn = func(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
					return nil, store.ErrEventFind
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &MockEventStore{}
			tc.setupMock(mockStore)
			handler := NewEventHandler(mockStore, nil)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			handler.ListEvents(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectEmptyBody {
				assert.Empty(t, rec.Body.String())
				return
			}

			if tc.expectedStatus == http.StatusOK {
				var resp struct {
					Ack   bool             `json:"ack"`
					Type  string           `json:"type"`
					Count int              `json:"count"`
					Data  []map[string]any `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Ack)
				assert.Equal(t, "events", resp.Type)
				assert.Equal(t, tc.expectedCount, resp.Count)
				assert.Len(t, resp.Data, tc.expectedCount)
			}
		})
	}
}

func TestEventHandler_ListEventsPassesFixedCriteriaToStore(t *testing.T) {
	var captured query.Spec
	mockStore := &MockEventStore{
		FindFn: func(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
			captured = spec
			return []map[string]any{{"captureType": "monitor"}}, nil
		},
	}
	handler := NewEventHandler(mockStore, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events/?captureType=monitor&bogus=x", nil)
	rec := httptest.NewRecorder()

	handler.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []query.Clause{{Field: "captureType", Value: "monitor"}}, captured.Filter.And)
	assert.Equal(t, int64(query.DefaultFetchSize), captured.Limit)
	assert.Equal(t, query.EventSort(), captured.Sort)
	assert.Equal(t, query.EventProjection(), captured.Exclude)
}

func TestEventHandler_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		origin         string
		setupMock      func(*MockEventStore)
		expectedStatus int
	}{
		{
			name:           "valid_event_is_created",
			body:           `{"dateTime": "2024-01-01T00:00:00Z", "captureType": "monitor"}`,
			origin:         "https://example.com",
			setupMock:      func(m *MockEventStore) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_dateTime_fails_validation",
			body:           `{"captureType": "monitor"}`,
			setupMock:      func(m *MockEventStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unparseable_dateTime_fails_validation",
			body:           `{"dateTime": "not-a-date"}`,
			setupMock:      func(m *MockEventStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty_object_body_fails_validation",
			body:           `{}`,
			setupMock:      func(m *MockEventStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_json_fails_validation",
			body:           `not json`,
			setupMock:      func(m *MockEventStore) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store_failure_gives_500",
			body: `{"dateTime": "2024-01-01T00:00:00Z"}`,
			setupMock: func(m *MockEventStore) {
				m.InsertFn = func(ctx context.Context, event domain.Event) (*store.InsertResult, error) {
					return nil, store.ErrEventCreate
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "acknowledged_but_nothing_inserted_gives_bare_500",
			body: `{"dateTime": "2024-01-01T00:00:00Z"}`,
			setupMock: func(m *MockEventStore) {
				m.InsertFn = func(ctx context.Context, event domain.Event) (*store.InsertResult, error) {
					return &store.InsertResult{Created: false, InsertedCount: 0}, nil
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := &MockEventStore{}
			tc.setupMock(mockStore)
			handler := NewEventHandler(mockStore, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/events/", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			handler.CreateEvent(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp struct {
					Ack   bool   `json:"ack"`
					Count int    `json:"count"`
					URI   string `json:"uri"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Ack)
				assert.Equal(t, 1, resp.Count)
				assert.Regexp(t, `^/events/.+$`, resp.URI)
			}
		})
	}
}

func TestEventHandler_CreateEventStoresParsedDateTimeAndOrigin(t *testing.T) {
	var inserted domain.Event
	mockStore := &MockEventStore{
		InsertFn: func(ctx context.Context, event domain.Event) (*store.InsertResult, error) {
			inserted = event
			return &store.InsertResult{Created: true, InsertedCount: 1, ID: "65f000000000000000000001"}, nil
		},
	}
	handler := NewEventHandler(mockStore, nil)

	body := `{"dateTime": "2024-01-01T00:00:00Z", "captureType": "monitor", "custom": "x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/", bytes.NewBufferString(body))
	req.Header.Set("Origin", "https://origin.example")
	rec := httptest.NewRecorder()

	handler.CreateEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, inserted)

	ts, ok := inserted["dateTime"].(time.Time)
	require.True(t, ok, "dateTime must be stored as a timestamp, not a string")
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), ts.UTC())
	assert.Equal(t, "https://origin.example", inserted["origin"])
	assert.Equal(t, "monitor", inserted["captureType"])
	assert.Equal(t, "x", inserted["custom"])

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/events/65f000000000000000000001", resp["uri"])
}
