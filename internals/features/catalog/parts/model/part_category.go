package model

import "strings"

// PartCategory tags a row of the parts table.
type PartCategory string

const (
	CategorySpoiler    PartCategory = "spoiler"
	CategoryDiscs      PartCategory = "discs"
	CategoryRestyling  PartCategory = "restyling"
	CategoryBumper     PartCategory = "bumper"
	CategoryRearBumper PartCategory = "rear_bumper"
	CategorySideSkirt  PartCategory = "side_skirt"
	CategoryTinting    PartCategory = "tinting"
)

// Categories in presentation order.
var Categories = []PartCategory{
	CategorySpoiler,
	CategoryDiscs,
	CategoryRestyling,
	CategoryBumper,
	CategoryRearBumper,
	CategorySideSkirt,
	CategoryTinting,
}

// route segment under /api for each category
var categorySlugs = map[PartCategory]string{
	CategorySpoiler:    "spoilers",
	CategoryDiscs:      "discs",
	CategoryRestyling:  "restylings",
	CategoryBumper:     "bumpers",
	CategoryRearBumper: "rear-bumpers",
	CategorySideSkirt:  "side-skirts",
	CategoryTinting:    "tintings",
}

func (c PartCategory) Valid() bool {
	_, ok := categorySlugs[c]
	return ok
}

func (c PartCategory) Slug() string { return categorySlugs[c] }

// Column is the customization foreign key column holding this category.
func (c PartCategory) Column() string { return string(c) + "_id" }

// ParseCategory accepts the tag itself ("rear_bumper") or its route
// segment ("rear-bumpers").
func ParseCategory(s string) (PartCategory, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c := PartCategory(s); c.Valid() {
		return c, true
	}
	for c, slug := range categorySlugs {
		if slug == s {
			return c, true
		}
	}
	return "", false
}
