package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitcoach/internal/api"
	"fitcoach/internal/auth"
	"fitcoach/internal/availability"
	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
	"fitcoach/internal/config"
	"fitcoach/internal/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Port: "0", JWTSecret: testSecret}
	cfg.RateLimit.RPS = 100
	cfg.RateLimit.Burst = 100

	store := memstore.New()
	cache, err := availability.NewCache(8)
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC) }

	srv := New(cfg, Deps{
		Bookings:     booking.NewService(store.Bookings(), time.UTC, booking.WithInvalidator(cache), booking.WithClock(now)),
		Blackouts:    blackout.NewService(store.Blackouts(), nil, cache),
		Availability: availability.NewResolver(store.Bookings(), store.Blackouts(), cache),
		Catalog:      catalog.NewService(catalog.NewMemoryRepository()),
	})
	return srv.Handler()
}

func token(t *testing.T, principal, role string) string {
	t.Helper()
	tok, err := auth.GenerateAccessToken(principal, principal+"@example.com", role, testSecret)
	require.NoError(t, err)
	return tok
}

func call(h http.Handler, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func slotFor(t *testing.T, h http.Handler, date, label string) availability.TimeSlot {
	t.Helper()
	w := call(h, http.MethodGet, "/slots?date="+date, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots []availability.TimeSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 14)
	for _, s := range slots {
		if s.Time == label {
			return s
		}
	}
	t.Fatalf("slot %s missing", label)
	return availability.TimeSlot{}
}

func TestHealth(t *testing.T) {
	w := call(newTestServer(t), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusOK, call(h, http.MethodGet, "/health", "", nil).Code)

	w := call(h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fitcoach_http_requests_total")

	w = call(h, http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/admin/availability/{date}/{time}")
}

func TestBookingFlow(t *testing.T) {
	h := newTestServer(t)
	user := token(t, "u-1", auth.RoleUser)
	admin := token(t, "coach", auth.RoleAdmin)

	body := map[string]interface{}{
		"id":                       "booking-1",
		"programId":                "p-1",
		"gymId":                    "g-1",
		"date":                     "2025-06-01",
		"time":                     "10:00",
		"healthDisclosureAccepted": true,
	}

	w := call(h, http.MethodPost, "/bookings", user, body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, slotFor(t, h, "2025-06-01", "10:00").IsBooked)

	body["id"] = "booking-2"
	w = call(h, http.MethodPost, "/bookings", token(t, "u-2", auth.RoleUser), body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, api.CodeSlotAlreadyBooked, errorCode(t, w))

	w = call(h, http.MethodPost, "/admin/bookings/booking-1/paid", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(h, http.MethodGet, "/bookings", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []booking.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.True(t, mine[0].IsPaid)
	assert.Equal(t, "u-1", mine[0].User)

	w = call(h, http.MethodDelete, "/admin/bookings/booking-1", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, slotFor(t, h, "2025-06-01", "10:00").IsBooked)
}

func TestBlackoutRoutes(t *testing.T) {
	h := newTestServer(t)
	admin := token(t, "coach", auth.RoleAdmin)

	w := call(h, http.MethodPut, "/admin/availability/2025-06-02/09:00", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, slotFor(t, h, "2025-06-02", "09:00").IsUnavailable)

	w = call(h, http.MethodPost, "/bookings", token(t, "u-1", auth.RoleUser), map[string]interface{}{
		"id": "booking-1", "programId": "p", "gymId": "g",
		"date": "2025-06-02", "time": "09:00", "healthDisclosureAccepted": true,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, api.CodeSlotUnavailable, errorCode(t, w))

	w = call(h, http.MethodGet, "/admin/blackouts?date=2025-06-02", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []blackout.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	w = call(h, http.MethodDelete, "/admin/availability/2025-06-02/09:00", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, slotFor(t, h, "2025-06-02", "09:00").IsUnavailable)

	w = call(h, http.MethodPut, "/admin/availability/2025-06-02/07:00", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.CodeInvalidTime, errorCode(t, w))
}

func TestRouteProtection(t *testing.T) {
	h := newTestServer(t)
	user := token(t, "u-1", auth.RoleUser)

	tests := []struct {
		method string
		path   string
		tok    string
		status int
		code   string
	}{
		{http.MethodPost, "/bookings", "", http.StatusUnauthorized, api.CodeUnauthenticated},
		{http.MethodGet, "/bookings", "", http.StatusUnauthorized, api.CodeUnauthenticated},
		{http.MethodDelete, "/admin/bookings/x", user, http.StatusForbidden, api.CodeUnauthorized},
		{http.MethodPost, "/admin/bookings/x/paid", user, http.StatusForbidden, api.CodeUnauthorized},
		{http.MethodPut, "/admin/availability/2025-06-02/09:00", user, http.StatusForbidden, api.CodeUnauthorized},
		{http.MethodPost, "/admin/gyms", user, http.StatusForbidden, api.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := call(h, tt.method, tt.path, tt.tok, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestPublicCatalogAndSlots(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/gyms", "/programs", "/donation-options"} {
		w := call(h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := call(h, http.MethodGet, "/slots?date=2025-13-01", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.CodeInvalidDate, errorCode(t, w))
}
