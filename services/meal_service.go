// services/meal_service.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/utils"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

type MealItemInput struct {
	FoodID         *uint   `json:"food_id"`
	CustomFoodName *string `json:"custom_food_name"`

	// Quantity arrives untyped from the form; it is coerced to
	// non-negative integer grams before persisting.
	Quantity any `json:"quantity"`

	CarbG    *float64 `json:"carb_g"`
	ProteinG *float64 `json:"protein_g"`
	FatG     *float64 `json:"fat_g"`
	FiberG   *float64 `json:"fiber_g"`
}

// SaveMeal makes "save this meal slot" idempotent even though the
// events table can accumulate duplicates for one (user, date, type)
// key from retried or racing writes.
//
// Steps, in order:
//  1. fetch existing events for the key, oldest first (fatal on error)
//  2. the oldest is canonical; insert one if none exist (fatal)
//  3. overwrite canonical's time/notes/type/date from the payload (fatal)
//  4. wipe items under canonical AND every duplicate (fatal)
//  5. delete the duplicate shells — best effort, a failure here is
//     logged and swallowed; empty shells get merged by a later save
//  6. insert the new items under canonical (fatal); an empty list is a
//     legitimate "clear this meal" and keeps nothing old
func (s *MealService) SaveMeal(
	ctx context.Context,
	userID uint,
	date time.Time,
	mealType string,
	eatenAt *string,
	notes string,
	items []MealItemInput,
) (*models.MealEvent, error) {
	day := dayStart(date)

	var events []models.MealEvent
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ? AND meal_type = ?", userID, day, mealType).
		Order("created_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	var canonical models.MealEvent
	if len(events) == 0 {
		canonical = models.MealEvent{
			UserID:   userID,
			LogDate:  day,
			MealType: mealType,
			EatenAt:  eatenAt,
			Notes:    notes,
		}
		if err := s.db.WithContext(ctx).Create(&canonical).Error; err != nil {
			return nil, err
		}
	} else {
		canonical = events[0]
		canonical.LogDate = day
		canonical.MealType = mealType
		canonical.EatenAt = eatenAt
		canonical.Notes = notes
		canonical.Items = nil
		if err := s.db.WithContext(ctx).Save(&canonical).Error; err != nil {
			return nil, err
		}
	}

	eventIDs := []uint{canonical.ID}
	var duplicateIDs []uint
	for _, ev := range events {
		if ev.ID != canonical.ID {
			duplicateIDs = append(duplicateIDs, ev.ID)
			eventIDs = append(eventIDs, ev.ID)
		}
	}

	// Unconditional wipe, not a diff against the new list.
	if err := s.db.WithContext(ctx).
		Where("meal_event_id IN ?", eventIDs).
		Delete(&models.MealItem{}).Error; err != nil {
		return nil, err
	}

	if len(duplicateIDs) > 0 {
		if err := s.db.WithContext(ctx).
			Where("id IN ?", duplicateIDs).
			Delete(&models.MealEvent{}).Error; err != nil {
			log.Printf("warn: leaving %d duplicate meal event shells for user=%d date=%s type=%s: %v",
				len(duplicateIDs), userID, day.Format("2006-01-02"), mealType, err)
		}
	}

	for _, it := range items {
		mi := models.MealItem{
			MealEventID:    canonical.ID,
			FoodID:         it.FoodID,
			CustomFoodName: it.CustomFoodName,
			Quantity:       utils.NormalizeQuantity(it.Quantity, 0),
			CarbG:          deref(it.CarbG),
			ProteinG:       deref(it.ProteinG),
			FatG:           deref(it.FatG),
			FiberG:         deref(it.FiberG),
			Calories:       utils.CalcCalories(it.CarbG, it.ProteinG, it.FatG),
		}
		if err := s.db.WithContext(ctx).Create(&mi).Error; err != nil {
			return nil, err
		}
	}

	// reload with items
	var saved models.MealEvent
	if err := s.db.WithContext(ctx).
		Preload("Items").
		First(&saved, canonical.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *MealService) ListByDate(ctx context.Context, userID uint, date time.Time) ([]models.MealEvent, error) {
	var events []models.MealEvent
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND log_date = ?", userID, dayStart(date)).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
