package order

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]string {
	return map[string]string{
		"room_number":    "101",
		"guest_name":     "A. Petrović",
		"guests_count":   "2",
		"service_date":   "2024-06-01",
		"preferred_time": "08:00",
		"main_option":    "Sunny-side-up egg on rustic bread",
		"extra_option":   "",
		"notes":          "",
	}
}

func Test_ParseSubmission_Valid(t *testing.T) {
	o, err := ParseSubmission(Breakfast, validFields())
	require.NoError(t, err)

	assert.Equal(t, Breakfast, o.MealType)
	assert.Equal(t, "101", o.RoomNumber)
	assert.Equal(t, "A. Petrović", o.GuestName)
	assert.Equal(t, 2, o.GuestsCount)
	assert.Equal(t, "2024-06-01", o.ServiceDate)
	assert.Equal(t, "08:00", o.PreferredTime)
	assert.Equal(t, "Sunny-side-up egg on rustic bread", o.MainOption)
	assert.Empty(t, o.ExtraOption)
	assert.Empty(t, o.Notes)
	assert.Zero(t, o.ID)
	assert.Empty(t, o.CreatedAt)
}

func Test_ParseSubmission_TrimsWhitespace(t *testing.T) {
	fields := validFields()
	fields["room_number"] = "  101 "
	fields["notes"] = "\tno onions\n"

	o, err := ParseSubmission(Lunch, fields)
	require.NoError(t, err)

	assert.Equal(t, "101", o.RoomNumber)
	assert.Equal(t, "no onions", o.Notes)
}

func Test_ParseSubmission_MissingRequiredFields(t *testing.T) {
	required := []string{"room_number", "guests_count", "service_date", "preferred_time", "main_option"}

	for _, name := range required {
		for _, blank := range []string{"", "   ", "\t\n"} {
			fields := validFields()
			fields[name] = blank

			o, err := ParseSubmission(Dinner, fields)
			assert.Nil(t, o, "field %q = %q should reject", name, blank)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "field %q = %q", name, blank)
			assert.Len(t, vErr.Missing, 1)
		}
	}
}

func Test_ParseSubmission_MissingKeyTreatedAsEmpty(t *testing.T) {
	fields := validFields()
	delete(fields, "room_number")

	_, err := ParseSubmission(Breakfast, fields)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{FieldRoom}, vErr.Missing)
}

func Test_ParseSubmission_OptionalFieldsMayBeEmpty(t *testing.T) {
	fields := validFields()
	fields["guest_name"] = ""
	fields["extra_option"] = " "
	fields["notes"] = ""

	o, err := ParseSubmission(Breakfast, fields)
	require.NoError(t, err)
	assert.Empty(t, o.GuestName)
	assert.Empty(t, o.ExtraOption)
}

func Test_ParseSubmission_ValidationMessageNamesAllMissingGroups(t *testing.T) {
	_, err := ParseSubmission(Breakfast, map[string]string{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{FieldRoom, FieldGuests, FieldDate, FieldTime, FieldMain}, vErr.Missing)
	assert.Equal(t, "please fill required fields (room, guests, date, time, main option)", vErr.Error())
}

func Test_ParseSubmission_GuestsCountFallback(t *testing.T) {
	cases := map[string]int{
		"3":    3,
		" 4 ":  4,
		"abc":  DefaultGuestsCount,
		"2.5":  DefaultGuestsCount,
		"two":  DefaultGuestsCount,
		"-2":   -2,
		"0":    0,
		"10x":  DefaultGuestsCount,
		"1e2":  DefaultGuestsCount,
		"0007": 7,
	}

	for raw, want := range cases {
		fields := validFields()
		fields["guests_count"] = raw

		o, err := ParseSubmission(Lunch, fields)
		require.NoError(t, err, "guests_count %q must not be rejected", raw)
		assert.Equal(t, want, o.GuestsCount, "guests_count %q", raw)
	}
}

func Test_ParseMealType(t *testing.T) {
	for _, s := range []string{"breakfast", "lunch", "dinner"} {
		mt, err := ParseMealType(s)
		require.NoError(t, err)
		assert.Equal(t, MealType(s), mt)
	}

	for _, s := range []string{"", "brunch", "Breakfast", "BREAKFAST"} {
		_, err := ParseMealType(s)
		assert.Error(t, err, "meal type %q", s)
	}
}

func Test_StampCreatedAt_Format(t *testing.T) {
	o := &Order{}
	o.StampCreatedAt(time.Date(2024, 6, 1, 7, 45, 9, 0, time.Local))
	assert.Equal(t, "2024-06-01 07:45:09", o.CreatedAt)

	_, err := time.Parse(CreatedAtLayout, o.CreatedAt)
	assert.NoError(t, err)
}

func Test_Less_ListingOrder(t *testing.T) {
	orders := []Order{
		{ServiceDate: "2024-05-02", PreferredTime: "08:00", MealType: Breakfast, RoomNumber: "101"},
		{ServiceDate: "2024-05-01", PreferredTime: "09:00", MealType: Breakfast, RoomNumber: "101"},
		{ServiceDate: "2024-05-01", PreferredTime: "08:00", MealType: Lunch, RoomNumber: "101"},
		{ServiceDate: "2024-05-01", PreferredTime: "08:00", MealType: Breakfast, RoomNumber: "202"},
		{ServiceDate: "2024-05-01", PreferredTime: "08:00", MealType: Breakfast, RoomNumber: "101"},
	}

	sort.SliceStable(orders, func(i, j int) bool { return Less(orders[i], orders[j]) })

	assert.Equal(t, "101", orders[0].RoomNumber)
	assert.Equal(t, Breakfast, orders[0].MealType)
	assert.Equal(t, "202", orders[1].RoomNumber)
	assert.Equal(t, Lunch, orders[2].MealType)
	assert.Equal(t, "09:00", orders[3].PreferredTime)
	assert.Equal(t, "2024-05-02", orders[4].ServiceDate)
}

func Test_Less_LexicographicNotChronological(t *testing.T) {
	// The listing compares stored text as-is; callers supply sortable
	// date formats to get chronological order.
	a := Order{ServiceDate: "2024-10-02"}
	b := Order{ServiceDate: "2024-9-30"}
	assert.True(t, Less(a, b), `"1" sorts before "9" bytewise`)
}
