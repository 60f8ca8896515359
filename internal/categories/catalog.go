// Package categories holds the static category catalog the client renders.
// The catalog is fixed at build time and never persisted.
package categories

// Category describes one catalog entry. Icon and Color are client hints.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var expenseCategories = []Category{
	{ID: "food", Name: "Comida", Icon: "restaurant", Color: "#FF9500"},
	{ID: "transport", Name: "Transporte", Icon: "car", Color: "#007AFF"},
	{ID: "entertainment", Name: "Entretenimiento", Icon: "game-controller", Color: "#5856D6"},
	{ID: "shopping", Name: "Compras", Icon: "bag", Color: "#AF52DE"},
	{ID: "health", Name: "Salud", Icon: "medical", Color: "#FF3B30"},
	{ID: "home", Name: "Casa", Icon: "home", Color: "#34C759"},
	{ID: "education", Name: "Educación", Icon: "library", Color: "#FF2D92"},
	{ID: "travel", Name: "Viajes", Icon: "airplane", Color: "#00C7BE"},
	{ID: "utilities", Name: "Servicios", Icon: "flash", Color: "#FFCC02"},
	{ID: "other", Name: "Otros", Icon: "ellipsis-horizontal", Color: "#8E8E93"},
}

var incomeCategories = []Category{
	{ID: "salary", Name: "Salario", Icon: "card", Color: "#34C759"},
	{ID: "freelance", Name: "Freelance", Icon: "briefcase", Color: "#007AFF"},
	{ID: "investment", Name: "Inversiones", Icon: "trending-up", Color: "#5856D6"},
	{ID: "gift", Name: "Regalos", Icon: "gift", Color: "#FF9500"},
	{ID: "other-income", Name: "Otros", Icon: "add-circle", Color: "#8E8E93"},
}

var byID = func() map[string]Category {
	m := make(map[string]Category, len(expenseCategories)+len(incomeCategories))
	for _, c := range expenseCategories {
		m[c.ID] = c
	}
	for _, c := range incomeCategories {
		m[c.ID] = c
	}
	return m
}()

// Expenses returns the expense catalog in display order.
func Expenses() []Category {
	return append([]Category(nil), expenseCategories...)
}

// Incomes returns the income catalog in display order.
func Incomes() []Category {
	return append([]Category(nil), incomeCategories...)
}

// All returns the full catalog, expenses first.
func All() []Category {
	return append(Expenses(), incomeCategories...)
}

// ByID looks up a catalog entry by id.
func ByID(id string) (Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// ByName looks up a catalog entry by display name. Names are not unique
// across the whole catalog ("Otros" appears twice); the expense entry wins.
func ByName(name string) (Category, bool) {
	for _, c := range expenseCategories {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range incomeCategories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
