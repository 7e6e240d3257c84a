package models

import (
    "time"

    "gorm.io/gorm"
)

// InBody-style body composition: one row per (user, date), full
// overwrite on upsert like the condition log.
type BodyCompositionLog struct {
    gorm.Model
    UserID  uint      `gorm:"uniqueIndex:idx_body_user_date;not null"`
    LogDate time.Time `gorm:"uniqueIndex:idx_body_user_date;not null"`

    WeightKg             *float64
    SkeletalMuscleMassKg *float64
    BodyFatPercentage    *float64
}
