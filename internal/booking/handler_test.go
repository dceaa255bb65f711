package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcoach/internal/api"
	"fitcoach/internal/auth"
	"fitcoach/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockService struct{ mock.Mock }

func (m *MockService) CreateBooking(ctx context.Context, b Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) GetBooking(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) DeleteBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) MarkPaid(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) MarkUnpaid(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) ListBookings(ctx context.Context, filter ListFilter) ([]Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()

	h := NewHandler(svc)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware(testSecret))
	protected.POST("/bookings", h.CreateBooking)
	protected.GET("/bookings", h.ListBookings)
	protected.GET("/bookings/:bookingID", h.GetBooking)

	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(testSecret), auth.RequireRole(auth.RoleAdmin))
	admin.DELETE("/bookings/:bookingID", h.DeleteBooking)
	admin.POST("/bookings/:bookingID/paid", h.MarkPaid)
	admin.DELETE("/bookings/:bookingID/paid", h.MarkUnpaid)
	return r
}

func bearer(t *testing.T, principal, role string) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(principal, principal+"@example.com", role, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(r *gin.Engine, method, path, authz string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBooking_Handler(t *testing.T) {
	body := map[string]interface{}{
		"id":                       "booking-1",
		"user":                     "someone-else",
		"programId":                "p-1",
		"gymId":                    "g-1",
		"date":                     "2025-06-01",
		"time":                     "10:00",
		"healthDisclosureAccepted": true,
	}

	t.Run("created with principal from token", func(t *testing.T) {
		svc := new(MockService)
		svc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b Booking) bool {
			return b.User == "u-1" && b.UserEmail == "u-1@example.com" && b.Date == "2025-06-01"
		})).Return(&Booking{ID: "booking-1", User: "u-1", Date: "2025-06-01", Time: "10:00"}, nil)

		w := do(setupRouter(svc), http.MethodPost, "/bookings", bearer(t, "u-1", auth.RoleUser), body)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got Booking
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "u-1", got.User)
		svc.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := do(setupRouter(new(MockService)), http.MethodPost, "/bookings", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, api.CodeUnauthenticated, decodeError(t, w).Code)
	})

	t.Run("missing id", func(t *testing.T) {
		w := do(setupRouter(new(MockService)), http.MethodPost, "/bookings", bearer(t, "u-1", auth.RoleUser),
			map[string]interface{}{"programId": "p", "gymId": "g"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.CodeValidationFailed, decodeError(t, w).Code)
	})

	errCases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrSlotAlreadyBooked, http.StatusConflict, api.CodeSlotAlreadyBooked},
		{ErrSlotUnavailable, http.StatusConflict, api.CodeSlotUnavailable},
		{ErrBookingExists, http.StatusConflict, api.CodeBookingExists},
		{ErrDisclosureRequired, http.StatusBadRequest, api.CodeDisclosureRequired},
		{ErrSlotInPast, http.StatusBadRequest, api.CodeSlotInPast},
		{schedule.ErrInvalidDate, http.StatusBadRequest, api.CodeInvalidDate},
		{schedule.ErrInvalidTime, http.StatusBadRequest, api.CodeInvalidTime},
		{errors.New("db down"), http.StatusInternalServerError, api.CodeInternal},
	}
	for _, tc := range errCases {
		t.Run(tc.code, func(t *testing.T) {
			svc := new(MockService)
			svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tc.err)

			w := do(setupRouter(svc), http.MethodPost, "/bookings", bearer(t, "u-1", auth.RoleUser), body)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}
}

func TestListBookings_Handler(t *testing.T) {
	t.Run("user sees own bookings", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBookings", mock.Anything, ListFilter{User: "u-1", Scope: ScopeUpcoming}).
			Return([]Booking{{ID: "b-1", User: "u-1"}}, nil)

		w := do(setupRouter(svc), http.MethodGet, "/bookings?scope=upcoming", bearer(t, "u-1", auth.RoleUser), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBookings", mock.Anything, ListFilter{}).Return([]Booking{}, nil)

		w := do(setupRouter(svc), http.MethodGet, "/bookings", bearer(t, "boss", auth.RoleAdmin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("bad scope", func(t *testing.T) {
		w := do(setupRouter(new(MockService)), http.MethodGet, "/bookings?scope=soon", bearer(t, "u-1", auth.RoleUser), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.CodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestGetBooking_Handler(t *testing.T) {
	owned := &Booking{ID: "booking-1", User: "u-1", Date: "2025-06-01", Time: "10:00"}

	t.Run("owner", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetBooking", mock.Anything, "booking-1").Return(owned, nil)

		w := do(setupRouter(svc), http.MethodGet, "/bookings/booking-1", bearer(t, "u-1", auth.RoleUser), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var got Booking
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "booking-1", got.ID)
	})

	t.Run("admin", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetBooking", mock.Anything, "booking-1").Return(owned, nil)

		w := do(setupRouter(svc), http.MethodGet, "/bookings/booking-1", bearer(t, "boss", auth.RoleAdmin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetBooking", mock.Anything, "booking-1").Return(owned, nil)

		w := do(setupRouter(svc), http.MethodGet, "/bookings/booking-1", bearer(t, "u-2", auth.RoleUser), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, api.CodeNotFound, decodeError(t, w).Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetBooking", mock.Anything, "nope").Return(nil, ErrBookingNotFound)

		w := do(setupRouter(svc), http.MethodGet, "/bookings/nope", bearer(t, "u-1", auth.RoleUser), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := do(setupRouter(new(MockService)), http.MethodGet, "/bookings/booking-1", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminBookingRoutes(t *testing.T) {
	admin := bearer(t, "boss", auth.RoleAdmin)

	t.Run("delete", func(t *testing.T) {
		svc := new(MockService)
		svc.On("DeleteBooking", mock.Anything, "booking-1").Return(nil)
		w := do(setupRouter(svc), http.MethodDelete, "/admin/bookings/booking-1", admin, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc := new(MockService)
		svc.On("DeleteBooking", mock.Anything, "nope").Return(ErrBookingNotFound)
		w := do(setupRouter(svc), http.MethodDelete, "/admin/bookings/nope", admin, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, api.CodeNotFound, decodeError(t, w).Code)
	})

	t.Run("mark paid and unpaid", func(t *testing.T) {
		svc := new(MockService)
		svc.On("MarkPaid", mock.Anything, "booking-1").Return(nil)
		svc.On("MarkUnpaid", mock.Anything, "booking-1").Return(nil)
		r := setupRouter(svc)

		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/admin/bookings/booking-1/paid", admin, nil).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/admin/bookings/booking-1/paid", admin, nil).Code)
		svc.AssertExpectations(t)
	})

	t.Run("mark paid missing", func(t *testing.T) {
		svc := new(MockService)
		svc.On("MarkPaid", mock.Anything, "nope").Return(ErrBookingNotFound)
		w := do(setupRouter(svc), http.MethodPost, "/admin/bookings/nope/paid", admin, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		svc := new(MockService)
		w := do(setupRouter(svc), http.MethodDelete, "/admin/bookings/booking-1", bearer(t, "u-1", auth.RoleUser), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, api.CodeUnauthorized, decodeError(t, w).Code)
		svc.AssertNotCalled(t, "DeleteBooking", mock.Anything, mock.Anything)
	})
}
