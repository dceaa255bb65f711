// Package schedule defines the daily slot grid shared by every booking and
// availability view, plus parsing of the date and time labels that key it.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	OpenHour  = 8
	CloseHour = 21

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("date must be a calendar day in yyyy-MM-dd format")
	ErrInvalidTime = errors.New("time must be an hourly slot between 08:00 and 21:00")
)

// SlotsPerDay is the size of the grid returned by Labels.
const SlotsPerDay = CloseHour - OpenHour + 1

var labels = buildLabels()

func buildLabels() []string {
	out := make([]string, 0, SlotsPerDay)
	for h := OpenHour; h <= CloseHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
	}
	return out
}

// Labels returns the ordered hourly labels "08:00".."21:00". The grid does not
// depend on the day. Callers get their own copy.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func IsLabel(t string) bool {
	_, err := ParseTime(t)
	return err == nil
}

// ParseDate accepts only zero-padded real calendar days.
func ParseDate(date string) (time.Time, error) {
	if len(date) != len(DateLayout) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseTime returns the hour of a grid label.
func ParseTime(label string) (int, error) {
	if len(label) != len(TimeLayout) {
		return 0, ErrInvalidTime
	}
	t, err := time.Parse(TimeLayout, label)
	if err != nil || t.Minute() != 0 {
		return 0, ErrInvalidTime
	}
	if t.Hour() < OpenHour || t.Hour() > CloseHour {
		return 0, ErrInvalidTime
	}
	return t.Hour(), nil
}

func Validate(date, label string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	if _, err := ParseTime(label); err != nil {
		return err
	}
	return nil
}

// StartOf returns the instant the slot begins in loc.
func StartOf(date, label string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	hour, err := ParseTime(label)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc), nil
}

// Key identifies one slot.
type Key struct {
	Date string
	Time string
}

func (k Key) String() string {
	return k.Date + " " + k.Time
}
