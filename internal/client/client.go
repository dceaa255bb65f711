// Package client is a typed HTTP client for the booking service. Wire error
// codes are mapped back to the sentinel errors of the server packages so
// callers can use errors.Is across the network boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitcoach/internal/api"
	"fitcoach/internal/availability"
	"fitcoach/internal/blackout"
	"fitcoach/internal/booking"
	"fitcoach/internal/catalog"
	"fitcoach/internal/logger"
	"fitcoach/internal/schedule"
)

var (
	ErrUnauthenticated = api.ErrUnauthenticated
	ErrUnauthorized    = api.ErrUnauthorized
	ErrRateLimited     = errors.New("rate limited")
	ErrValidation      = errors.New("request validation failed")
	ErrServer          = errors.New("server error")
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string

	sentinel error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

func (e *APIError) Unwrap() error { return e.sentinel }

type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option { return func(cl *Client) { cl.http = c } }

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option { return func(cl *Client) { cl.token = token } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetAvailableTimeSlots(ctx context.Context, date string) ([]availability.TimeSlot, error) {
	var slots []availability.TimeSlot
	err := c.do(ctx, http.MethodGet, "/slots?date="+url.QueryEscape(date), nil, &slots, nil)
	return slots, err
}

func (c *Client) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.Booking, error) {
	var created booking.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetBookings returns every booking for an admin token and the caller's own
// otherwise. An empty scope means all.
func (c *Client) GetBookings(ctx context.Context, scope booking.Scope) ([]booking.Booking, error) {
	path := "/bookings"
	if scope != "" {
		path += "?scope=" + url.QueryEscape(string(scope))
	}
	var bookings []booking.Booking
	err := c.do(ctx, http.MethodGet, path, nil, &bookings, nil)
	return bookings, err
}

func (c *Client) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	var b booking.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, &b, booking.ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/bookings/"+url.PathEscape(id), nil, nil, booking.ErrBookingNotFound)
}

func (c *Client) MarkBookingAsPaid(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/bookings/"+url.PathEscape(id)+"/paid", nil, nil, booking.ErrBookingNotFound)
}

func (c *Client) MarkBookingAsUnpaid(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/bookings/"+url.PathEscape(id)+"/paid", nil, nil, booking.ErrBookingNotFound)
}

func (c *Client) MarkTimeSlotUnavailable(ctx context.Context, date, slotTime string) error {
	return c.do(ctx, http.MethodPut, availabilityPath(date, slotTime), nil, nil, nil)
}

func (c *Client) UnmarkTimeSlotUnavailable(ctx context.Context, date, slotTime string) error {
	return c.do(ctx, http.MethodDelete, availabilityPath(date, slotTime), nil, nil, nil)
}

func (c *Client) ListBlackouts(ctx context.Context, date string) ([]blackout.Entry, error) {
	var entries []blackout.Entry
	err := c.do(ctx, http.MethodGet, "/admin/blackouts?date="+url.QueryEscape(date), nil, &entries, nil)
	return entries, err
}

func (c *Client) ListPrograms(ctx context.Context) ([]catalog.Program, error) {
	var programs []catalog.Program
	err := c.do(ctx, http.MethodGet, "/programs", nil, &programs, catalog.ErrNotFound)
	return programs, err
}

func (c *Client) ListGyms(ctx context.Context) ([]catalog.Gym, error) {
	var gyms []catalog.Gym
	err := c.do(ctx, http.MethodGet, "/gyms", nil, &gyms, catalog.ErrNotFound)
	return gyms, err
}

func (c *Client) ListDonationOptions(ctx context.Context) ([]catalog.DonationOption, error) {
	var options []catalog.DonationOption
	err := c.do(ctx, http.MethodGet, "/donation-options", nil, &options, catalog.ErrNotFound)
	return options, err
}

func availabilityPath(date, slotTime string) string {
	return "/admin/availability/" + url.PathEscape(date) + "/" + url.PathEscape(slotTime)
}

// do sends one request. notFound is the sentinel a not_found code maps to.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, notFound error) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("api request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, notFound)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response, notFound error) error {
	var body api.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	apiErr := &APIError{Status: resp.StatusCode, Code: body.Code, Message: body.Error}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	apiErr.sentinel = sentinelFor(body.Code, resp.StatusCode, notFound)
	return apiErr
}

func sentinelFor(code string, status int, notFound error) error {
	switch code {
	case api.CodeSlotAlreadyBooked:
		return booking.ErrSlotAlreadyBooked
	case api.CodeSlotUnavailable:
		return booking.ErrSlotUnavailable
	case api.CodeDisclosureRequired:
		return booking.ErrDisclosureRequired
	case api.CodeBookingExists:
		return booking.ErrBookingExists
	case api.CodeSlotInPast:
		return booking.ErrSlotInPast
	case api.CodeInvalidDate:
		return schedule.ErrInvalidDate
	case api.CodeInvalidTime:
		return schedule.ErrInvalidTime
	case api.CodeNotFound:
		if notFound != nil {
			return notFound
		}
		return booking.ErrBookingNotFound
	case api.CodeAlreadyExists:
		return catalog.ErrAlreadyExists
	case api.CodeUnauthenticated:
		return ErrUnauthenticated
	case api.CodeUnauthorized:
		return ErrUnauthorized
	case api.CodeRateLimited:
		return ErrRateLimited
	case api.CodeValidationFailed:
		return ErrValidation
	}

	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrServer
	}
}
