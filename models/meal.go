package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal types follow the source app's Korean labels.
const (
    MealTypeBreakfast = "아침"
    MealTypeLunch     = "점심"
    MealTypeDinner    = "저녁"
    MealTypeSnack     = "간식"
)

// One MealEvent per (user, date, meal type) once consolidated; the
// storage layer itself allows duplicates to accumulate between saves.
type MealEvent struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null"`
    LogDate  time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
    MealType string    `gorm:"type:varchar(16);not null"`
    EatenAt  *string   `gorm:"type:varchar(5)"` // "HH:MM", optional
    Notes    string
    Items    []MealItem
}

// Each MealItem snapshots macros at entry time. Either FoodID (catalog
// pick) or CustomFoodName (free text) is set, never both.
type MealItem struct {
    gorm.Model
    MealEventID uint `gorm:"index;not null"`

    FoodID         *uint
    CustomFoodName *string

    Quantity int `gorm:"not null"` // grams
    CarbG    float64
    ProteinG float64
    FatG     float64
    FiberG   float64
    Calories int `gorm:"not null;default:0"`
}
