package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
)

func Test_ForMealType(t *testing.T) {
	for _, mt := range []order.MealType{order.Breakfast, order.Lunch, order.Dinner} {
		m, ok := ForMealType(mt)
		require.True(t, ok, "meal type %s", mt)
		assert.Equal(t, mt, m.MealType)
		assert.Len(t, m.MainOptions, 8)
		assert.NotEmpty(t, m.ExtraOptions)
		assert.Len(t, m.TimeSlots, 3)
	}

	_, ok := ForMealType(order.MealType("brunch"))
	assert.False(t, ok)
}

func Test_TimeSlotsPerMeal(t *testing.T) {
	b, _ := ForMealType(order.Breakfast)
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, b.TimeSlots)

	l, _ := ForMealType(order.Lunch)
	assert.Equal(t, []string{"12:00", "13:00", "14:00"}, l.TimeSlots)

	d, _ := ForMealType(order.Dinner)
	assert.Equal(t, []string{"19:00", "20:00", "21:00"}, d.TimeSlots)
	assert.Len(t, d.ExtraOptions, 4)
}
