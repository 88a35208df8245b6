package order

import (
	"context"
	"fmt"
	"time"
)

// CreatedAtLayout is the timestamp format stored in created_at.
const CreatedAtLayout = "2006-01-02 15:04:05"

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// ParseMealType maps a route segment onto a known meal category.
// The category is never taken from the form body.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case Breakfast, Lunch, Dinner:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// Order is one guest's meal submission. Rows are append-only: the
// store assigns ID on insert and nothing is ever updated or deleted.
type Order struct {
	ID            int64    `json:"id"`
	MealType      MealType `json:"meal_type"`
	RoomNumber    string   `json:"room_number"`
	GuestName     string   `json:"guest_name"`
	GuestsCount   int      `json:"guests_count"`
	ServiceDate   string   `json:"service_date"`   // YYYY-MM-DD
	PreferredTime string   `json:"preferred_time"` // HH:MM
	MainOption    string   `json:"main_option"`
	ExtraOption   string   `json:"extra_option"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
}

// StampCreatedAt records the insertion time in the stored format.
func (o *Order) StampCreatedAt(now time.Time) {
	o.CreatedAt = now.Format(CreatedAtLayout)
}

// Less defines the staff listing order: service_date, then
// preferred_time, then meal_type, then room_number, ascending,
// compared as plain text. The SQL listing query mirrors this exactly.
func Less(a, b Order) bool {
	if a.ServiceDate != b.ServiceDate {
		return a.ServiceDate < b.ServiceDate
	}
	if a.PreferredTime != b.PreferredTime {
		return a.PreferredTime < b.PreferredTime
	}
	if a.MealType != b.MealType {
		return a.MealType < b.MealType
	}
	return a.RoomNumber < b.RoomNumber
}

type Repository interface {
	Insert(ctx context.Context, o *Order) (int64, error)
	ListAll(ctx context.Context) ([]Order, error)
}
