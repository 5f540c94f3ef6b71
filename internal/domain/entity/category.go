// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// CategoryName identifies one entry of the closed category set shared by
// expenses and budget allocations.
type CategoryName string

const (
	CategoryFood           CategoryName = "Food"
	CategoryTransportation CategoryName = "Transportation"
	CategoryHousing        CategoryName = "Housing"
	CategoryEntertainment  CategoryName = "Entertainment"
	CategoryShopping       CategoryName = "Shopping"
	CategoryUtilities      CategoryName = "Utilities"
	CategoryHealthcare     CategoryName = "Healthcare"
	CategoryOther          CategoryName = "Other"
)

// DefaultCategoryIcon is shown for categories outside the closed set.
const DefaultCategoryIcon = "💰"

// CategoryDefinition pairs a category with its display icon.
type CategoryDefinition struct {
	Name CategoryName
	Icon string
}

// categories is the closed category set in display order.
var categories = []CategoryDefinition{
	{Name: CategoryFood, Icon: "🍔"},
	{Name: CategoryTransportation, Icon: "🚗"},
	{Name: CategoryHousing, Icon: "🏠"},
	{Name: CategoryEntertainment, Icon: "🎬"},
	{Name: CategoryShopping, Icon: "🛍️"},
	{Name: CategoryUtilities, Icon: "💡"},
	{Name: CategoryHealthcare, Icon: "⚕️"},
	{Name: CategoryOther, Icon: "📦"},
}

// Categories returns a copy of the closed category set in display order.
func Categories() []CategoryDefinition {
	out := make([]CategoryDefinition, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether the name belongs to the closed set.
func (c CategoryName) IsValid() bool {
	for _, def := range categories {
		if def.Name == c {
			return true
		}
	}
	return false
}

// Icon returns the display icon for the category, or DefaultCategoryIcon.
func (c CategoryName) Icon() string {
	for _, def := range categories {
		if def.Name == c {
			return def.Icon
		}
	}
	return DefaultCategoryIcon
}

// ParseCategoryName resolves a case-insensitive category name.
// The remote services spell categories in upper case (e.g. "FOOD").
func ParseCategoryName(s string) (CategoryName, bool) {
	s = strings.TrimSpace(s)
	for _, def := range categories {
		if strings.EqualFold(string(def.Name), s) {
			return def.Name, true
		}
	}
	return "", false
}
