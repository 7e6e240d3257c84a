package services

import (
	"context"
	"math"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/models"

	"gorm.io/gorm"
)

// TrendService is the read side: day-level KPI sums plus range queries
// over the four trend views. The views already carry the trailing
// 7-day moving average; this layer only post-processes (latest-sample
// lookup, weight delta). Nothing here mutates.
type TrendService struct{ db *gorm.DB }

func NewTrendService(db *gorm.DB) *TrendService { return &TrendService{db: db} }

// ---------- Daily summary ----------

type DailySummary struct {
	Date string `json:"date"`

	TotalCalories int     `json:"total_calories"`
	CarbG         float64 `json:"carb_g"`
	ProteinG      float64 `json:"protein_g"`
	FatG          float64 `json:"fat_g"`
	FiberG        float64 `json:"fiber_g"`

	TrainingVolume float64 `json:"training_volume"`
	CardioMinutes  int     `json:"cardio_minutes"`
}

func (s *TrendService) DailySummary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	day := dayStart(date)

	var meals struct {
		Calories int
		CarbG    float64
		ProteinG float64
		FatG     float64
		FiberG   float64
	}
	if err := s.db.WithContext(ctx).
		Table("meal_items").
		Select("COALESCE(SUM(meal_items.calories), 0) AS calories, "+
			"COALESCE(SUM(meal_items.carb_g), 0) AS carb_g, "+
			"COALESCE(SUM(meal_items.protein_g), 0) AS protein_g, "+
			"COALESCE(SUM(meal_items.fat_g), 0) AS fat_g, "+
			"COALESCE(SUM(meal_items.fiber_g), 0) AS fiber_g").
		Joins("JOIN meal_events ON meal_events.id = meal_items.meal_event_id").
		Where("meal_events.user_id = ? AND meal_events.log_date = ?", userID, day).
		Where("meal_items.deleted_at IS NULL AND meal_events.deleted_at IS NULL").
		Scan(&meals).Error; err != nil {
		return nil, err
	}

	var volume struct{ Volume float64 }
	if err := s.db.WithContext(ctx).
		Table("workout_sets").
		Select("COALESCE(SUM(workout_sets.reps * workout_sets.weight_kg), 0) AS volume").
		Joins("JOIN workout_sessions ON workout_sessions.id = workout_sets.workout_session_id").
		Where("workout_sessions.user_id = ? AND workout_sessions.log_date = ?", userID, day).
		Where("workout_sets.deleted_at IS NULL AND workout_sessions.deleted_at IS NULL").
		Scan(&volume).Error; err != nil {
		return nil, err
	}

	var cardio struct{ Minutes int }
	if err := s.db.WithContext(ctx).
		Model(&models.WorkoutSession{}).
		Select("COALESCE(SUM(duration_min), 0) AS minutes").
		Where("user_id = ? AND log_date = ? AND mode = ?", userID, day, models.WorkoutModeCardio).
		Scan(&cardio).Error; err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:           day.Format("2006-01-02"),
		TotalCalories:  meals.Calories,
		CarbG:          round2(meals.CarbG),
		ProteinG:       round2(meals.ProteinG),
		FatG:           round2(meals.FatG),
		FiberG:         round2(meals.FiberG),
		TrainingVolume: round2(volume.Volume),
		CardioMinutes:  cardio.Minutes,
	}, nil
}

// ---------- Range trends (view-backed) ----------

type ConditionTrendPoint struct {
	LogDate         time.Time `json:"log_date"`
	SleepMinutes    *int      `json:"sleep_minutes"`
	SleepQuality    *int      `json:"sleep_quality"`
	Mood            *int      `json:"mood"`
	SleepMinutesMA7 *float64  `json:"sleep_minutes_ma7" gorm:"column:sleep_minutes_ma7"`
}

type BodyTrendPoint struct {
	LogDate              time.Time `json:"log_date"`
	WeightKg             *float64  `json:"weight_kg"`
	SkeletalMuscleMassKg *float64  `json:"skeletal_muscle_mass_kg"`
	BodyFatPercentage    *float64  `json:"body_fat_percentage"`
	WeightMA7            *float64  `json:"weight_ma7" gorm:"column:weight_ma7"`
}

type MealTrendPoint struct {
	LogDate       time.Time `json:"log_date"`
	TotalCalories int       `json:"total_calories"`
	CarbG         float64   `json:"carb_g"`
	ProteinG      float64   `json:"protein_g"`
	FatG          float64   `json:"fat_g"`
	FiberG        float64   `json:"fiber_g"`
	CaloriesMA7   *float64  `json:"calories_ma7" gorm:"column:calories_ma7"`
}

type WorkoutTrendPoint struct {
	LogDate       time.Time `json:"log_date"`
	TotalVolume   float64   `json:"total_volume"`
	CardioMinutes int       `json:"cardio_minutes"`
	VolumeMA7     *float64  `json:"volume_ma7" gorm:"column:volume_ma7"`
}

func (s *TrendService) ConditionRange(ctx context.Context, userID uint, from, to time.Time) ([]ConditionTrendPoint, error) {
	var points []ConditionTrendPoint
	err := s.rangeQuery(ctx, "condition_trends", userID, from, to).Scan(&points).Error
	return points, err
}

func (s *TrendService) BodyRange(ctx context.Context, userID uint, from, to time.Time) ([]BodyTrendPoint, error) {
	var points []BodyTrendPoint
	err := s.rangeQuery(ctx, "body_composition_trends", userID, from, to).Scan(&points).Error
	return points, err
}

func (s *TrendService) MealRange(ctx context.Context, userID uint, from, to time.Time) ([]MealTrendPoint, error) {
	var points []MealTrendPoint
	err := s.rangeQuery(ctx, "meal_trends", userID, from, to).Scan(&points).Error
	return points, err
}

func (s *TrendService) WorkoutRange(ctx context.Context, userID uint, from, to time.Time) ([]WorkoutTrendPoint, error) {
	var points []WorkoutTrendPoint
	err := s.rangeQuery(ctx, "workout_trends", userID, from, to).Scan(&points).Error
	return points, err
}

func (s *TrendService) rangeQuery(ctx context.Context, view string, userID uint, from, to time.Time) *gorm.DB {
	return s.db.WithContext(ctx).
		Table(view).
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, dayStart(from), dayStart(to)).
		Order("log_date ASC")
}

// ---------- Weight KPI post-processing ----------

type WeightMA7Delta struct {
	Current      float64 `json:"current"`
	CurrentDate  string  `json:"current_date"`
	Previous     float64 `json:"previous"`
	PreviousDate string  `json:"previous_date"`
	Delta        float64 `json:"delta"`
}

// LatestWeightMA7 scans the ordered series from the end for the most
// recent non-null moving-average sample.
func LatestWeightMA7(points []BodyTrendPoint) (float64, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].WeightMA7 != nil {
			return *points[i].WeightMA7, true
		}
	}
	return 0, false
}

// WeightDelta compares the latest MA7 sample against the sample exactly
// 7 calendar days earlier. When no sample sits on that exact date, the
// earliest available non-null sample stands in rather than failing.
// Returns nil when the series holds no usable sample at all.
func WeightDelta(points []BodyTrendPoint) *WeightMA7Delta {
	latest := -1
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].WeightMA7 != nil {
			latest = i
			break
		}
	}
	if latest < 0 {
		return nil
	}

	target := points[latest].LogDate.AddDate(0, 0, -7)
	prev := -1
	for i := range points {
		if points[i].WeightMA7 == nil {
			continue
		}
		if sameDay(points[i].LogDate, target) {
			prev = i
			break
		}
	}
	if prev < 0 {
		for i := range points {
			if points[i].WeightMA7 != nil {
				prev = i
				break
			}
		}
	}

	cur := *points[latest].WeightMA7
	old := *points[prev].WeightMA7
	return &WeightMA7Delta{
		Current:      round2(cur),
		CurrentDate:  points[latest].LogDate.Format("2006-01-02"),
		Previous:     round2(old),
		PreviousDate: points[prev].LogDate.Format("2006-01-02"),
		Delta:        round2(cur - old),
	}
}

// ---------- Exercise rankings ----------

type ExerciseFrequency struct {
	Exercise string `json:"exercise"`
	SetCount int    `json:"set_count" gorm:"column:set_count"`
}

// TopExercises ranks by set count over the lookback window, count
// descending, name ascending on ties, top 3.
func (s *TrendService) TopExercises(ctx context.Context, userID uint, lookbackDays int) ([]ExerciseFrequency, error) {
	if lookbackDays <= 0 {
		lookbackDays = 30
	}
	since := dayStart(time.Now()).AddDate(0, 0, -lookbackDays)

	var rows []ExerciseFrequency
	err := s.db.WithContext(ctx).
		Table("workout_sets").
		Select("workout_sets.exercise AS exercise, COUNT(*) AS set_count").
		Joins("JOIN workout_sessions ON workout_sessions.id = workout_sets.workout_session_id").
		Where("workout_sessions.user_id = ? AND workout_sessions.log_date >= ?", userID, since).
		Where("workout_sets.deleted_at IS NULL AND workout_sessions.deleted_at IS NULL").
		Group("workout_sets.exercise").
		Order("set_count DESC, workout_sets.exercise ASC").
		Limit(3).
		Scan(&rows).Error
	return rows, err
}

type RecentExercise struct {
	Exercise string    `json:"exercise"`
	LastDone time.Time `json:"last_done" gorm:"column:last_done"`
}

// RecentExercises feeds the exercise autocomplete: each name's most
// recent date in the window, newest first, top 10.
func (s *TrendService) RecentExercises(ctx context.Context, userID uint, lookbackDays int) ([]RecentExercise, error) {
	if lookbackDays <= 0 {
		lookbackDays = 90
	}
	since := dayStart(time.Now()).AddDate(0, 0, -lookbackDays)

	var rows []RecentExercise
	err := s.db.WithContext(ctx).
		Table("workout_sets").
		Select("workout_sets.exercise AS exercise, MAX(workout_sessions.log_date) AS last_done").
		Joins("JOIN workout_sessions ON workout_sessions.id = workout_sets.workout_session_id").
		Where("workout_sessions.user_id = ? AND workout_sessions.log_date >= ?", userID, since).
		Where("workout_sets.deleted_at IS NULL AND workout_sessions.deleted_at IS NULL").
		Group("workout_sets.exercise").
		Order("last_done DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// ---------- internals ----------

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
