// Package menu holds the static per-meal catalogs shown on the guest
// forms. The kitchen updates these seasonally by redeploy; nothing
// here is persisted or user-editable.
package menu

import "github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"

type Option struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}

type Menu struct {
	MealType     order.MealType `json:"meal_type"`
	MainOptions  []Option       `json:"main_options"`
	ExtraOptions []Option       `json:"extra_options"`
	TimeSlots    []string       `json:"time_slots"`
}

// ForMealType returns the catalog offered for a meal category.
func ForMealType(mt order.MealType) (Menu, bool) {
	switch mt {
	case order.Breakfast:
		return breakfast, true
	case order.Lunch:
		return lunch, true
	case order.Dinner:
		return dinner, true
	}
	return Menu{}, false
}

var breakfast = Menu{
	MealType: order.Breakfast,
	MainOptions: []Option{
		{1, "Sunny-side-up egg on rustic bread", "Perfectly cooked egg served over aromatic arugula and rustic homemade bread."},
		{2, "Croissant with beetroot cream & scrambled eggs", "Homemade black bread topped with whipped beetroot cream cheese, soft scrambled eggs, fresh arugula and onions."},
		{3, "Toast with smoked salmon & poached egg", "Smoked salmon, avocado cream and a poached egg on homemade toast."},
		{4, "Vegan avocado toast", "Sourdough toast with avocado cream, roasted tomatoes and fresh arugula."},
		{5, "House speciality", "Homemade pie (cheese or potatoes) or traditional priganice with accompaniments of your choice."},
		{6, "Breakfast with beef rump steak", "Lightly cured beef rump steak served with creamy kaymak, boiled eggs, sea salt and homemade bread."},
		{7, "Yogurt parfait", "Layers of fresh seasonal fruit, granola and chia seeds."},
		{8, "Cereal with nuts & fruit", "Cereal with almond milk, seasonal fruit, walnuts and coconut."},
	},
	ExtraOptions: []Option{
		{9, "Homemade waffles with fruit sauce", "Served with vanilla cream and wild berry coulis."},
		{10, "Crêpes with vanilla cream & forest fruit", "Delicate crêpes filled with vanilla pastry cream and topped with wild berry coulis."},
		{11, "No sweet option", "Select this if you prefer not to have waffles or crêpes."},
	},
	TimeSlots: []string{"08:00", "09:00", "10:00"},
}

var lunch = Menu{
	MealType: order.Lunch,
	MainOptions: []Option{
		{1, "Grilled chicken fillet", "Served with roasted vegetables, herb potatoes and light chicken jus."},
		{2, "Beef medallions", "Pan-seared beef medallions with mashed potatoes and peppercorn sauce."},
		{3, "Sea bass fillet", "Grilled sea bass with lemon butter, sautéed greens and rice pilaf."},
		{4, "Pasta primavera (vegetarian)", "Fresh pasta with seasonal vegetables, cherry tomatoes and parmesan."},
		{5, "Risotto with wild mushrooms", "Creamy arborio rice with wild mushrooms and truffle oil."},
		{6, "Montenegro burger", "Homemade beef burger, local cheese, fries and salad."},
		{7, "Caesar salad with chicken", "Romaine lettuce, grilled chicken, croutons and parmesan."},
		{8, "Grilled vegetable plate (vegan)", "Selection of seasonal grilled vegetables served with hummus."},
	},
	ExtraOptions: []Option{
		{9, "Soup of the day", "Freshly prepared soup according to the chef's choice."},
		{10, "Side salad", "Mixed greens with light vinaigrette."},
		{11, "No starter / side", "Select this if you do not wish to have soup or salad."},
	},
	TimeSlots: []string{"12:00", "13:00", "14:00"},
}

var dinner = Menu{
	MealType: order.Dinner,
	MainOptions: []Option{
		{1, "Slow-cooked beef cheeks", "Braised in red wine, served with creamy polenta and roasted root vegetables."},
		{2, "Herb-crusted lamb rack", "Served with potato gratin, grilled asparagus and rosemary jus."},
		{3, "Salmon fillet with lemon dill", "Pan-seared salmon with lemon dill sauce and seasonal vegetables."},
		{4, "Homemade gnocchi with pesto", "Potato gnocchi, basil pesto, cherry tomatoes and parmesan."},
		{5, "Chicken in forest mushroom sauce", "Grilled chicken breast topped with creamy forest mushroom sauce."},
		{6, "Grilled vegetables & halloumi", "Charcoal-grilled vegetables with halloumi cheese (vegetarian)."},
		{7, "Seafood pasta", "Tagliatelle pasta with mixed seafood in white wine sauce."},
		{8, "Vegan lentil stew", "Slow-cooked lentils with vegetables and spices."},
	},
	ExtraOptions: []Option{
		{9, "Chocolate lava cake", "Warm chocolate cake with liquid centre, served with vanilla ice cream."},
		{10, "Cheesecake with forest fruit", "Baked cheesecake topped with forest fruit coulis."},
		{11, "Seasonal fruit plate", "Selection of fresh seasonal fruits."},
		{12, "No dessert", "Select this if you prefer to skip dessert."},
	},
	TimeSlots: []string{"19:00", "20:00", "21:00"},
}
