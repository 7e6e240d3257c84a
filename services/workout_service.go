package services

import (
	"context"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/models"

	"gorm.io/gorm"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

type WorkoutSetInput struct {
	Exercise string  `json:"exercise"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
}

type WorkoutSessionInput struct {
	Mode string `json:"mode"` // strength | cardio

	CardioType  *string  `json:"cardio_type"`
	DurationMin *int     `json:"duration_min"`
	DistanceKm  *float64 `json:"distance_km"`
	AvgPaceMin  *float64 `json:"avg_pace_min"`

	Sets []WorkoutSetInput `json:"sets"`
}

// ReplaceForDate is the only write path for workouts: the form always
// submits the complete day, so saving deletes everything previously
// recorded for (user, date) and inserts the new graph. Children go
// before parents to keep referential ordering.
func (s *WorkoutService) ReplaceForDate(ctx context.Context, userID uint, date time.Time, sessions []WorkoutSessionInput) ([]models.WorkoutSession, error) {
	day := dayStart(date)

	var ids []uint
	if err := s.db.WithContext(ctx).
		Model(&models.WorkoutSession{}).
		Where("user_id = ? AND log_date = ?", userID, day).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		if err := s.db.WithContext(ctx).
			Where("workout_session_id IN ?", ids).
			Delete(&models.WorkoutSet{}).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).
			Where("id IN ?", ids).
			Delete(&models.WorkoutSession{}).Error; err != nil {
			return nil, err
		}
	}

	out := make([]models.WorkoutSession, 0, len(sessions))
	for _, in := range sessions {
		sess := models.WorkoutSession{
			UserID:  userID,
			LogDate: day,
			Mode:    in.Mode,

			CardioType:  in.CardioType,
			DurationMin: in.DurationMin,
			DistanceKm:  in.DistanceKm,
			AvgPaceMin:  in.AvgPaceMin,
		}
		if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
			return nil, err
		}

		for _, st := range in.Sets {
			set := models.WorkoutSet{
				WorkoutSessionID: sess.ID,
				Exercise:         st.Exercise,
				Reps:             st.Reps,
				WeightKg:         st.WeightKg,
			}
			if err := s.db.WithContext(ctx).Create(&set).Error; err != nil {
				return nil, err
			}
			sess.Sets = append(sess.Sets, set)
		}
		out = append(out, sess)
	}
	return out, nil
}

func (s *WorkoutService) LoadByDate(ctx context.Context, userID uint, date time.Time) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("Sets").
		Where("user_id = ? AND log_date = ?", userID, dayStart(date)).
		Order("created_at ASC").
		Find(&sessions).Error
	return sessions, err
}

// ListPreviousDates returns distinct workout dates strictly before the
// given date, newest first — the "copy a previous workout" picker.
func (s *WorkoutService) ListPreviousDates(ctx context.Context, userID uint, before time.Time, limit int) ([]time.Time, error) {
	if limit <= 0 {
		limit = 10
	}
	var dates []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.WorkoutSession{}).
		Distinct("log_date").
		Where("user_id = ? AND log_date < ?", userID, dayStart(before)).
		Order("log_date DESC").
		Limit(limit).
		Pluck("log_date", &dates).Error
	return dates, err
}

// PreviousDetail is LoadByDate plus the day's strength volume, shaped
// for the picker's preview pane.
type PreviousWorkoutDetail struct {
	LogDate     string                  `json:"log_date"`
	Sessions    []models.WorkoutSession `json:"sessions"`
	TotalVolume float64                 `json:"total_volume"`
}

func (s *WorkoutService) LoadPreviousDetail(ctx context.Context, userID uint, date time.Time) (*PreviousWorkoutDetail, error) {
	sessions, err := s.LoadByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var volume float64
	for _, sess := range sessions {
		for _, set := range sess.Sets {
			volume += float64(set.Reps) * set.WeightKg
		}
	}

	return &PreviousWorkoutDetail{
		LogDate:     dayStart(date).Format("2006-01-02"),
		Sessions:    sessions,
		TotalVolume: volume,
	}, nil
}
