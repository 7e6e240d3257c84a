package models

import "gorm.io/gorm"

// A catalog entry the meal form can pick items from.
// Macros are grams per 100g serving.
type Food struct {
    gorm.Model
    Name     string `gorm:"uniqueIndex;not null"`
    CarbG    float64
    ProteinG float64
    FatG     float64
    FiberG   float64
}
