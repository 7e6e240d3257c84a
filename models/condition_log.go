package models

import (
    "time"

    "gorm.io/gorm"
)

// Daily condition log: one row per (user, date). Ratings are 1-5,
// mood is 0-10. Pointer fields stay NULL when the form left them blank;
// a save overwrites the whole row, so a blank clears a previous value.
type ConditionLog struct {
    gorm.Model
    UserID  uint      `gorm:"uniqueIndex:idx_condition_user_date;not null"`
    LogDate time.Time `gorm:"uniqueIndex:idx_condition_user_date;not null"` // truncate to YYYY-MM-DD

    BedTime      *string `gorm:"type:varchar(5)"` // "HH:MM"
    WakeTime     *string `gorm:"type:varchar(5)"`
    SleepMinutes *int

    StressMorning *int
    StressNoon    *int
    StressEvening *int
    EnergyMorning *int
    EnergyEvening *int

    SleepQuality *int
    Mood         *int

    JournalGood string
    JournalBad  string
    JournalMemo string
}
