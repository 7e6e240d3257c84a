package services

import (
	"context"
	"errors"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConditionService struct{ db *gorm.DB }

func NewConditionService(db *gorm.DB) *ConditionService { return &ConditionService{db: db} }

// ConditionInput is the complete desired row shape. Saving always
// overwrites the whole row for the day, so a nil field here clears a
// previously stored value; there is no field-level merge server-side.
type ConditionInput struct {
	BedTime      *string `json:"bed_time"`
	WakeTime     *string `json:"wake_time"`
	SleepMinutes *int    `json:"sleep_minutes"`

	StressMorning *int `json:"stress_morning"`
	StressNoon    *int `json:"stress_noon"`
	StressEvening *int `json:"stress_evening"`
	EnergyMorning *int `json:"energy_morning"`
	EnergyEvening *int `json:"energy_evening"`

	SleepQuality *int `json:"sleep_quality"`
	Mood         *int `json:"mood"`

	JournalGood string `json:"journal_good"`
	JournalBad  string `json:"journal_bad"`
	JournalMemo string `json:"journal_memo"`
}

// Save upserts the one condition row for (user, date). Conflict
// resolution happens in the store, so concurrent writers for the same
// key converge to last-write-wins without any locking here.
func (s *ConditionService) Save(ctx context.Context, userID uint, date time.Time, in ConditionInput) (*models.ConditionLog, error) {
	row := models.ConditionLog{
		UserID:  userID,
		LogDate: dayStart(date),

		BedTime:      in.BedTime,
		WakeTime:     in.WakeTime,
		SleepMinutes: utils.ComputeSleepMinutes(in.BedTime, in.WakeTime, in.SleepMinutes),

		StressMorning: in.StressMorning,
		StressNoon:    in.StressNoon,
		StressEvening: in.StressEvening,
		EnergyMorning: in.EnergyMorning,
		EnergyEvening: in.EnergyEvening,

		SleepQuality: in.SleepQuality,
		Mood:         in.Mood,

		JournalGood: in.JournalGood,
		JournalBad:  in.JournalBad,
		JournalMemo: in.JournalMemo,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return nil, err
	}

	return s.GetByDate(ctx, userID, date)
}

// SaveJournalOnly keeps the rest of the day's row intact by merging
// here, before the full-overwrite upsert — the store layer itself never
// does partial updates.
func (s *ConditionService) SaveJournalOnly(ctx context.Context, userID uint, date time.Time, good, bad, memo string) (*models.ConditionLog, error) {
	existing, err := s.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	in := ConditionInput{}
	if existing != nil {
		in = ConditionInput{
			BedTime:       existing.BedTime,
			WakeTime:      existing.WakeTime,
			SleepMinutes:  existing.SleepMinutes,
			StressMorning: existing.StressMorning,
			StressNoon:    existing.StressNoon,
			StressEvening: existing.StressEvening,
			EnergyMorning: existing.EnergyMorning,
			EnergyEvening: existing.EnergyEvening,
			SleepQuality:  existing.SleepQuality,
			Mood:          existing.Mood,
		}
	}
	in.JournalGood = good
	in.JournalBad = bad
	in.JournalMemo = memo

	return s.Save(ctx, userID, date, in)
}

func (s *ConditionService) GetByDate(ctx context.Context, userID uint, date time.Time) (*models.ConditionLog, error) {
	var row models.ConditionLog
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

// dayStart truncates to local midnight; log dates carry no time
// component anywhere in the schema.
func dayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
