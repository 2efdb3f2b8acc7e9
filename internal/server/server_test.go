package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	mock_server "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/server/mocks"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage, *mock_server.MockUserRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := mock_server.NewMockStorage(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	return New(mockStorage, mockUserRepo, zap.NewNop()), mockStorage, mockUserRepo
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestHandleCreateSeason(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	valid := map[string]interface{}{
		"short_name":               "spring-25",
		"start_date":               "2025-03-01T00:00:00Z",
		"end_date":                 "2025-05-31T00:00:00Z",
		"cooking_days":             map[string]bool{"monday": true, "thursday": true},
		"consecutive_cooking_days": 1,
		"prices": []map[string]interface{}{
			{"ticket_type": "ADULT", "price": 4500},
			{"ticket_type": "CHILD", "price": 2200, "maximum_age_limit": 12},
		},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "created",
			requestBody: valid,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateSeason(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, draft storage.SeasonDraft) (*storage.SeasonResult, error) {
						assert.Equal(t, "spring-25", draft.ShortName)
						assert.True(t, draft.CookingDays.Get(time.Monday))
						assert.True(t, draft.CookingDays.Get(time.Thursday))
						assert.False(t, draft.CookingDays.Get(time.Friday))
						require.Len(t, draft.Prices, 2)
						require.NotNil(t, draft.Prices[1].MaximumAgeLimit)
						assert.Equal(t, 12, *draft.Prices[1].MaximumAgeLimit)
						return &storage.SeasonResult{SeasonID: 7, CreatedEvents: 26}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			requestBody:    "not an object",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "unknown ticket type",
			requestBody: map[string]interface{}{
				"short_name":               "spring-25",
				"start_date":               "2025-03-01T00:00:00Z",
				"end_date":                 "2025-05-31T00:00:00Z",
				"consecutive_cooking_days": 1,
				"prices":                   []map[string]interface{}{{"ticket_type": "SENIOR", "price": 10}},
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "rejected by storage",
			requestBody: valid,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateSeason(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: end date before start date", storage.ErrInvalidSeason))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Error: invalid season: end date before start date",
		},
		{
			name:        "database failure is hidden",
			requestBody: valid,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateSeason(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error: internal error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/seasons", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handleCreateSeason(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, errorBody(t, rr))
			}
		})
	}
}

func TestHandleBook(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:        "new ticket",
			requestBody: map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "TAKEAWAY"},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req storage.BookingRequest) (*storage.ReconcileResult, error) {
						assert.Equal(t, int64(42), req.ActorID)
						assert.Equal(t, int64(3), req.InhabitantID)
						assert.Equal(t, int64(2), req.DinnerEventID)
						assert.Equal(t, scaffold.Takeaway, req.DinnerMode)
						return &storage.ReconcileResult{HouseholdID: 1, Counts: scaffold.Result{Created: 1}}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "mode change",
			requestBody: map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "DINEIN"},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(&storage.ReconcileResult{HouseholdID: 1, Counts: scaffold.Result{ModeUpdated: 1}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid dinner mode",
			requestBody:    map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "BRUNCH"},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "concurrent modification",
			requestBody: map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "DINEIN"},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrConcurrentModification)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "unknown inhabitant",
			requestBody: map[string]interface{}{"inhabitant_id": 99, "dinner_event_id": 2, "dinner_mode": "DINEIN"},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("inhabitant 99: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "order id of another inhabitant",
			requestBody: map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "NONE", "order_id": 51, "cancel": true},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req storage.BookingRequest) (*storage.ReconcileResult, error) {
						require.NotNil(t, req.OrderID)
						assert.Equal(t, int64(51), *req.OrderID)
						return nil, fmt.Errorf("plan household 1: %w: order 51", scaffold.ErrOrderKeyMismatch)
					})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "no active season",
			requestBody: map[string]interface{}{"inhabitant_id": 3, "dinner_event_id": 2, "dinner_mode": "DINEIN"},
			setupMocks: func() {
				mockStorage.EXPECT().
					Book(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrNoActiveSeason)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
			req = req.WithContext(context.WithValue(req.Context(), userIDKey, int64(42)))
			rr := httptest.NewRecorder()

			server.handleBook(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleHeal(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		query          string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:  "dry run by default",
			query: "",
			setupMocks: func() {
				mockStorage.EXPECT().Heal(gomock.Any(), int64(5), true).
					Return(&storage.HealReport{SeasonID: 5, DryRun: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "write run",
			query: "?dry_run=false",
			setupMocks: func() {
				mockStorage.EXPECT().Heal(gomock.Any(), int64(5), false).
					Return(&storage.HealReport{SeasonID: 5, Candidates: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid flag",
			query:          "?dry_run=maybe",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "unknown season",
			query: "?dry_run=true",
			setupMocks: func() {
				mockStorage.EXPECT().Heal(gomock.Any(), int64(5), true).
					Return(nil, fmt.Errorf("season 5: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/seasons/5/heal"+tc.query, nil)
			req = mux.SetURLVars(req, map[string]string{"id": "5"})
			rr := httptest.NewRecorder()

			server.handleHeal(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleUpdatePreferences(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	t.Run("weekly preferences", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdatePreferences(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, prefs *weekday.Map[scaffold.DinnerMode]) (*storage.ReconcileResult, error) {
				require.NotNil(t, prefs)
				assert.Equal(t, scaffold.DineIn, prefs.Get(time.Monday))
				assert.Equal(t, scaffold.None, prefs.Get(time.Thursday))
				return &storage.ReconcileResult{HouseholdID: 1}, nil
			})

		body := `{"preferences":{"monday":"DINEIN","thursday":"NONE"}}`
		req := httptest.NewRequest(http.MethodPut, "/inhabitants/3/preferences", bytes.NewBufferString(body))
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		server.handleUpdatePreferences(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cleared preferences", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdatePreferences(gomock.Any(), int64(3), gomock.Nil()).
			Return(&storage.ReconcileResult{HouseholdID: 1}, nil)

		req := httptest.NewRequest(http.MethodPut, "/inhabitants/3/preferences", bytes.NewBufferString(`{"preferences":null}`))
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		server.handleUpdatePreferences(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid mode", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdatePreferences(gomock.Any(), int64(3), gomock.Any()).
			Return(nil, fmt.Errorf("%w: monday: BRUNCH", storage.ErrInvalidPreferences))

		req := httptest.NewRequest(http.MethodPut, "/inhabitants/3/preferences", bytes.NewBufferString(`{"preferences":{"monday":"BRUNCH"}}`))
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		server.handleUpdatePreferences(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Error: invalid dinner preferences: monday: BRUNCH", errorBody(t, rr))
	})

	t.Run("bad path id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/inhabitants/x/preferences", bytes.NewBufferString(`{}`))
		req = mux.SetURLVars(req, map[string]string{"id": "0"})
		rr := httptest.NewRecorder()

		server.handleUpdatePreferences(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleOrderHistory(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	orderID := int64(11)
	mockStorage.EXPECT().
		OrderHistory(gomock.Any(), int64(3), int64(2)).
		Return([]storage.HistoryView{
			{ID: 1, OrderID: &orderID, Action: scaffold.SystemCreated, CreatedAt: created},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/inhabitants/3/events/2/history", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "3", "eventID": "2"})
	rr := httptest.NewRecorder()

	server.handleOrderHistory(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"order_id":11,"action":"SYSTEM_CREATED","created_at":"2025-03-01T09:00:00Z"}]`, rr.Body.String())
}

func TestHandleScaffoldAll(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	mockStorage.EXPECT().ScaffoldAll(gomock.Any()).
		Return(&storage.ScaffoldSummary{Households: 2, Counts: scaffold.Result{Created: 4}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/maintenance/scaffold", nil)
	rr := httptest.NewRecorder()

	server.handleScaffoldAll(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"households":2,"counts":{"created":4,"mode_updated":0,"released":0,"claimed":0,"deleted":0,"unchanged":0,"skipped":0}}`,
		rr.Body.String())
}

func TestBasicAuthMiddleware(t *testing.T) {
	server, _, mockUserRepo := newTestServer(t)

	var seen int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = userFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := server.basicAuthMiddleware(next)

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		setupMocks     func()
		expectedStatus int
		expectedUser   int64
	}{
		{
			name:           "missing credentials",
			setupRequest:   func(r *http.Request) {},
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "wrong password",
			setupRequest: func(r *http.Request) { r.SetBasicAuth("admin", "nope") },
			setupMocks: func() {
				mockUserRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "nope").Return(int64(0), false, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "repository failure",
			setupRequest: func(r *http.Request) { r.SetBasicAuth("admin", "secret") },
			setupMocks: func() {
				mockUserRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(int64(0), false, errors.New("db down"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid",
			setupRequest: func(r *http.Request) { r.SetBasicAuth("admin", "secret") },
			setupMocks: func() {
				mockUserRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(int64(42), true, nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedUser:   42,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = 0
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodGet, "/households/1/orders", nil)
			tc.setupRequest(req)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedUser, seen)
		})
	}
}

func TestRoutes(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	router := server.setupRoutes()

	mockUserRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(int64(1), true, nil)
	mockStorage.EXPECT().Headcount(gomock.Any(), int64(4)).
		Return(weekday.Map[scaffold.Headcount]{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/households/4/headcount", nil)
	req.SetBasicAuth("admin", "secret")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// path ids are constrained to digits by the router
	req = httptest.NewRequest(http.MethodGet, "/households/abc/headcount", nil)
	req.SetBasicAuth("admin", "secret")
	rr = httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAuditManager(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	manager := NewAuditManager(zap.New(core), 1, 2, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	for i := 0; i < 3; i++ {
		manager.LogEntry(ctx, AuditLogEntry{Handler: "book", Method: http.MethodPost, StatusCode: http.StatusCreated})
	}

	assert.Eventually(t, func() bool { return manager.Pending() == 0 }, time.Second, 10*time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)

	written := 0
	for _, entry := range logs.FilterMessage("audit batch").All() {
		written += int(entry.ContextMap()["size"].(int64))
	}
	assert.Equal(t, 3, written)
}

func TestRouteTarget(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/inhabitants/3/events/2/history", nil)
	req = mux.SetURLVars(req, map[string]string{"eventID": "2", "id": "3"})

	assert.Equal(t, "id=3,eventID=2", routeTarget(req))
	assert.Equal(t, "unknown", routeName(req))
}

func TestResponseWriterWrapper(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriterWrapper(rr)

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(bytes.Repeat([]byte("a"), maxAuditBody+10))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, w.GetStatusCode())
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, maxAuditBody+10, rr.Body.Len())
	assert.Len(t, w.GetBody(), maxAuditBody+len("...(truncated)"))
}
