package blackout

import "time"

// Entry marks one slot as administratively unavailable. It is independent of
// any booking for the same slot.
type Entry struct {
	Date      string    `db:"slot_date" json:"date" example:"2025-06-02"`
	Time      string    `db:"slot_time" json:"time" example:"09:00"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type SlotParams struct {
	Date string `uri:"date" binding:"required,isodate"`
	Time string `uri:"time" binding:"required,slottime"`
}

type DateQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}
