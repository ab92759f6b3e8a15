package models

import "gorm.io/gorm"

// Ingredient caches entries fetched from TheMealDB so the explore feed
// keeps working when the upstream API is unreachable.
type Ingredient struct {
	gorm.Model
	MealDBID  string `gorm:"column:mealdb_id;uniqueIndex;not null" json:"id"`
	Label     string `gorm:"not null" json:"label"`
	Category  string `json:"category"`
	Area      string `json:"area"`
	Thumbnail string `json:"thumbnail"`
}
