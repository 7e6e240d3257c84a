package services

import (
	"context"
	"errors"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BodyService struct{ db *gorm.DB }

func NewBodyService(db *gorm.DB) *BodyService { return &BodyService{db: db} }

// Full desired row, same overwrite contract as ConditionInput.
type BodyCompositionInput struct {
	WeightKg             *float64 `json:"weight_kg"`
	SkeletalMuscleMassKg *float64 `json:"skeletal_muscle_mass_kg"`
	BodyFatPercentage    *float64 `json:"body_fat_percentage"`
}

func (s *BodyService) Save(ctx context.Context, userID uint, date time.Time, in BodyCompositionInput) (*models.BodyCompositionLog, error) {
	row := models.BodyCompositionLog{
		UserID:  userID,
		LogDate: dayStart(date),

		WeightKg:             in.WeightKg,
		SkeletalMuscleMassKg: in.SkeletalMuscleMassKg,
		BodyFatPercentage:    in.BodyFatPercentage,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return nil, err
	}

	return s.GetByDate(ctx, userID, date)
}

func (s *BodyService) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.BodyCompositionLog, error) {
	var row models.BodyCompositionLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, dayStart(date)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
