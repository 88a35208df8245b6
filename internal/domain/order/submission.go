package order

import (
	"fmt"
	"strconv"
	"strings"
)

// Required-field groups named in validation messages.
const (
	FieldRoom   = "room"
	FieldGuests = "guests"
	FieldDate   = "date"
	FieldTime   = "time"
	FieldMain   = "main option"
)

// ValidationError reports which required-field groups were blank.
// It never indicates a malformed value: every field except the guest
// count is free text, and an unparseable guest count is defaulted,
// not rejected.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill required fields (%s)", strings.Join(e.Missing, ", "))
}

// DefaultGuestsCount is substituted when guests_count is present but
// not parseable as an integer.
const DefaultGuestsCount = 1

// ParseSubmission turns raw form fields into an Order for the given
// meal category. Missing keys count as empty strings and every value
// is trimmed before validation. Room number, guest count, service
// date, preferred time and main option must be non-blank; guest name,
// extra option and notes may be empty.
//
// The guest count is the one lenient field: a non-blank value that is
// not an integer becomes DefaultGuestsCount rather than an error.
// ID and CreatedAt are left unset; the writer fills them at persist
// time.
func ParseSubmission(meal MealType, fields map[string]string) (*Order, error) {
	get := func(key string) string {
		return strings.TrimSpace(fields[key])
	}

	roomNumber := get("room_number")
	guestName := get("guest_name")
	guestsRaw := get("guests_count")
	serviceDate := get("service_date")
	preferredTime := get("preferred_time")
	mainOption := get("main_option")
	extraOption := get("extra_option")
	notes := get("notes")

	var missing []string
	if roomNumber == "" {
		missing = append(missing, FieldRoom)
	}
	if guestsRaw == "" {
		missing = append(missing, FieldGuests)
	}
	if serviceDate == "" {
		missing = append(missing, FieldDate)
	}
	if preferredTime == "" {
		missing = append(missing, FieldTime)
	}
	if mainOption == "" {
		missing = append(missing, FieldMain)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	guestsCount, err := strconv.Atoi(guestsRaw)
	if err != nil {
		guestsCount = DefaultGuestsCount
	}

	return &Order{
		MealType:      meal,
		RoomNumber:    roomNumber,
		GuestName:     guestName,
		GuestsCount:   guestsCount,
		ServiceDate:   serviceDate,
		PreferredTime: preferredTime,
		MainOption:    mainOption,
		ExtraOption:   extraOption,
		Notes:         notes,
	}, nil
}
