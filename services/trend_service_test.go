package services_test

import (
	"context"
	"testing"

	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaryScenario(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	condSvc := services.NewConditionService(db)
	mealSvc := services.NewMealService(db)
	workoutSvc := services.NewWorkoutService(db)
	trendSvc := services.NewTrendService(db)

	cond, err := condSvc.Save(ctx, userID, day(0), services.ConditionInput{
		BedTime:  strPtr("23:00"),
		WakeTime: strPtr("07:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, cond.SleepMinutes)
	assert.Equal(t, 480, *cond.SleepMinutes)

	_, err = mealSvc.SaveMeal(ctx, userID, day(0), models.MealTypeBreakfast, strPtr("08:00"), "", []services.MealItemInput{
		{CustomFoodName: strPtr("오트밀"), Quantity: 100.0, CarbG: floatPtr(30), ProteinG: floatPtr(10), FatG: floatPtr(5)},
	})
	require.NoError(t, err)

	_, err = workoutSvc.ReplaceForDate(ctx, userID, day(0), []services.WorkoutSessionInput{{
		Mode: models.WorkoutModeStrength,
		Sets: []services.WorkoutSetInput{
			{Exercise: "squat", Reps: 5, WeightKg: 100},
			{Exercise: "squat", Reps: 5, WeightKg: 100},
		},
	}})
	require.NoError(t, err)

	summary, err := trendSvc.DailySummary(ctx, userID, day(0))
	require.NoError(t, err)
	assert.Equal(t, 205, summary.TotalCalories) // 30*4 + 10*4 + 5*9
	assert.Equal(t, 1000.0, summary.TrainingVolume)
	assert.Equal(t, 30.0, summary.CarbG)
	assert.Equal(t, 0, summary.CardioMinutes)
}

func TestDailySummaryCountsCardioMinutes(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	workoutSvc := services.NewWorkoutService(db)
	trendSvc := services.NewTrendService(db)

	_, err := workoutSvc.ReplaceForDate(ctx, userID, day(0), []services.WorkoutSessionInput{
		{Mode: models.WorkoutModeCardio, CardioType: strPtr("run"), DurationMin: intPtr(30)},
		{Mode: models.WorkoutModeCardio, CardioType: strPtr("bike"), DurationMin: intPtr(45)},
	})
	require.NoError(t, err)

	summary, err := trendSvc.DailySummary(ctx, userID, day(0))
	require.NoError(t, err)
	assert.Equal(t, 75, summary.CardioMinutes)
	assert.Equal(t, 0.0, summary.TrainingVolume)
}

func TestBodyRangeCarriesMovingAverage(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	bodySvc := services.NewBodyService(db)
	trendSvc := services.NewTrendService(db)

	// ten days of weights: 80, 79.9, ... 79.1
	for i := 0; i < 10; i++ {
		w := 80.0 - float64(i)*0.1
		_, err := bodySvc.Save(ctx, userID, day(i-9), services.BodyCompositionInput{WeightKg: floatPtr(w)})
		require.NoError(t, err)
	}

	points, err := trendSvc.BodyRange(ctx, userID, day(-9), day(0))
	require.NoError(t, err)
	require.Len(t, points, 10)

	last := points[len(points)-1]
	require.NotNil(t, last.WeightMA7)
	// trailing 7 samples of the newest day: 79.7 .. 79.1
	assert.InDelta(t, 79.4, *last.WeightMA7, 0.001)

	ma, ok := services.LatestWeightMA7(points)
	require.True(t, ok)
	assert.InDelta(t, 79.4, ma, 0.001)

	delta := services.WeightDelta(points)
	require.NotNil(t, delta)
	// exact sample 7 days earlier exists
	assert.Equal(t, day(-7).Format("2006-01-02"), delta.PreviousDate)
}

func TestWeightDeltaFallsBackToEarliestSample(t *testing.T) {
	// samples at D and D-10 only; no sample exactly 7 days before D
	points := []services.BodyTrendPoint{
		{LogDate: day(-10), WeightKg: floatPtr(81), WeightMA7: floatPtr(81)},
		{LogDate: day(0), WeightKg: floatPtr(80), WeightMA7: floatPtr(80)},
	}

	delta := services.WeightDelta(points)
	require.NotNil(t, delta)
	assert.Equal(t, day(-10).Format("2006-01-02"), delta.PreviousDate)
	assert.Equal(t, day(0).Format("2006-01-02"), delta.CurrentDate)
	assert.Equal(t, -1.0, delta.Delta)
}

func TestWeightDeltaEmptySeries(t *testing.T) {
	assert.Nil(t, services.WeightDelta(nil))
	assert.Nil(t, services.WeightDelta([]services.BodyTrendPoint{{LogDate: day(0)}}))

	_, ok := services.LatestWeightMA7(nil)
	assert.False(t, ok)
}

func TestMealRangeAggregatesPerDay(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	mealSvc := services.NewMealService(db)
	trendSvc := services.NewTrendService(db)

	_, err := mealSvc.SaveMeal(ctx, userID, day(0), models.MealTypeBreakfast, nil, "", []services.MealItemInput{
		{CustomFoodName: strPtr("a"), Quantity: 100.0, CarbG: floatPtr(30), ProteinG: floatPtr(10), FatG: floatPtr(5)},
	})
	require.NoError(t, err)
	_, err = mealSvc.SaveMeal(ctx, userID, day(0), models.MealTypeLunch, nil, "", []services.MealItemInput{
		{CustomFoodName: strPtr("b"), Quantity: 100.0, CarbG: floatPtr(50), ProteinG: floatPtr(20), FatG: floatPtr(10)},
	})
	require.NoError(t, err)

	points, err := trendSvc.MealRange(ctx, userID, day(0), day(0))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 205+370, points[0].TotalCalories)
	assert.Equal(t, 80.0, points[0].CarbG)
}

func TestTopExercisesRankingAndTieBreak(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	workoutSvc := services.NewWorkoutService(db)
	trendSvc := services.NewTrendService(db)

	_, err := workoutSvc.ReplaceForDate(ctx, userID, day(-1), []services.WorkoutSessionInput{{
		Mode: models.WorkoutModeStrength,
		Sets: []services.WorkoutSetInput{
			{Exercise: "squat", Reps: 5, WeightKg: 100},
			{Exercise: "squat", Reps: 5, WeightKg: 100},
			{Exercise: "bench press", Reps: 8, WeightKg: 60},
			{Exercise: "bench press", Reps: 8, WeightKg: 60},
			{Exercise: "deadlift", Reps: 3, WeightKg: 140},
			{Exercise: "overhead press", Reps: 10, WeightKg: 40},
		},
	}})
	require.NoError(t, err)

	rows, err := trendSvc.TopExercises(ctx, userID, 30)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// squat and bench press tie at 2 sets; name ascending breaks it
	assert.Equal(t, "bench press", rows[0].Exercise)
	assert.Equal(t, 2, rows[0].SetCount)
	assert.Equal(t, "squat", rows[1].Exercise)
	assert.Equal(t, 2, rows[1].SetCount)
	assert.Equal(t, "deadlift", rows[2].Exercise)
}

func TestRecentExercisesMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	workoutSvc := services.NewWorkoutService(db)
	trendSvc := services.NewTrendService(db)

	_, err := workoutSvc.ReplaceForDate(ctx, userID, day(-8), []services.WorkoutSessionInput{{
		Mode: models.WorkoutModeStrength,
		Sets: []services.WorkoutSetInput{
			{Exercise: "squat", Reps: 5, WeightKg: 90},
			{Exercise: "deadlift", Reps: 3, WeightKg: 130},
		},
	}})
	require.NoError(t, err)
	_, err = workoutSvc.ReplaceForDate(ctx, userID, day(-2), []services.WorkoutSessionInput{{
		Mode: models.WorkoutModeStrength,
		Sets: []services.WorkoutSetInput{{Exercise: "squat", Reps: 5, WeightKg: 100}},
	}})
	require.NoError(t, err)

	rows, err := trendSvc.RecentExercises(ctx, userID, 90)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "squat", rows[0].Exercise)
	assert.Equal(t, day(-2).Format("2006-01-02"), rows[0].LastDone.Format("2006-01-02"))
	assert.Equal(t, "deadlift", rows[1].Exercise)
}

func TestConditionRangeReadsView(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	ctx := context.Background()

	condSvc := services.NewConditionService(db)
	trendSvc := services.NewTrendService(db)

	for i := 0; i < 3; i++ {
		_, err := condSvc.Save(ctx, userID, day(i-2), services.ConditionInput{
			SleepMinutes: intPtr(400 + i*20),
			Mood:         intPtr(6),
		})
		require.NoError(t, err)
	}

	points, err := trendSvc.ConditionRange(ctx, userID, day(-2), day(0))
	require.NoError(t, err)
	require.Len(t, points, 3)
	require.NotNil(t, points[2].SleepMinutesMA7)
	assert.InDelta(t, 420.0, *points[2].SleepMinutesMA7, 0.001) // avg(400,420,440)
	require.NotNil(t, points[2].SleepMinutes)
	assert.Equal(t, 440, *points[2].SleepMinutes)
}
