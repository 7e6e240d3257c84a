package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    WorkoutModeStrength = "strength"
    WorkoutModeCardio   = "cardio"
)

// A day can hold any number of sessions; saving a day replaces all of
// them, so sessions never outlive the save that created them.
type WorkoutSession struct {
    gorm.Model
    UserID  uint      `gorm:"index;not null"`
    LogDate time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
    Mode    string    `gorm:"type:varchar(16);not null"`

    // cardio only
    CardioType  *string
    DurationMin *int
    DistanceKm  *float64
    AvgPaceMin  *float64

    Sets []WorkoutSet
}

type WorkoutSet struct {
    gorm.Model
    WorkoutSessionID uint `gorm:"index;not null"`

    Exercise string  `gorm:"not null"`
    Reps     int     `gorm:"not null"`
    WeightKg float64 `gorm:"not null"`
}
