package entities

import "strings"

// Category classifies an item. A character holds at most one equipped item
// per category when equipping incrementally.
type Category string

// Item categories
const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryAccessory Category = "accessory"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeapon, CategoryArmor, CategoryAccessory:
		return true
	default:
		return false
	}
}

// AllCategories returns every valid category in declaration order
func AllCategories() []Category {
	return []Category{CategoryWeapon, CategoryArmor, CategoryAccessory}
}

// CategoryNames returns the names of all valid categories
func CategoryNames() []string {
	names := make([]string, 0, 3)
	for _, c := range AllCategories() {
		names = append(names, c.String())
	}
	return names
}

// ParseCategory resolves a category name case-insensitively. The second
// return value is false for unknown names.
func ParseCategory(name string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	return c, c.IsValid()
}
