package models

import (
    "github.com/google/uuid"
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
    Email    string    `gorm:"uniqueIndex;not null"`
    Password string    `gorm:"not null"`
    Nickname string
    HeightCm *float64
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
    if u.PublicID == uuid.Nil {
        u.PublicID = uuid.New()
    }
    return nil
}
