package config

import (
	"fmt"
	"log"
	"os"

	"github.com/iyunseong/mental-n-fit-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	return db
}

// Migrate runs schema migration plus the trend views. Tests call it
// against a sqlite DB, so everything here stays engine-neutral SQL.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.ConditionLog{},
		&models.BodyCompositionLog{},
		&models.WorkoutSession{},
		&models.WorkoutSet{},
		&models.MealEvent{},
		&models.MealItem{},
	)
	if err != nil {
		return err
	}
	return createTrendViews(db)
}

// The four read views consumed by the trend endpoints. Each exposes the
// raw per-day values plus a trailing 7-day moving average; the service
// layer never recomputes the average itself.
func createTrendViews(db *gorm.DB) error {
	views := []struct {
		name string
		sql  string
	}{
		{"condition_trends", `
			SELECT user_id, log_date, sleep_minutes, sleep_quality, mood,
			       AVG(sleep_minutes) OVER (
			           PARTITION BY user_id ORDER BY log_date
			           ROWS BETWEEN 6 PRECEDING AND CURRENT ROW
			       ) AS sleep_minutes_ma7
			FROM condition_logs
			WHERE deleted_at IS NULL`},
		{"body_composition_trends", `
			SELECT user_id, log_date, weight_kg, skeletal_muscle_mass_kg, body_fat_percentage,
			       AVG(weight_kg) OVER (
			           PARTITION BY user_id ORDER BY log_date
			           ROWS BETWEEN 6 PRECEDING AND CURRENT ROW
			       ) AS weight_ma7
			FROM body_composition_logs
			WHERE deleted_at IS NULL`},
		{"meal_trends", `
			SELECT user_id, log_date, total_calories, carb_g, protein_g, fat_g, fiber_g,
			       AVG(total_calories) OVER (
			           PARTITION BY user_id ORDER BY log_date
			           ROWS BETWEEN 6 PRECEDING AND CURRENT ROW
			       ) AS calories_ma7
			FROM (
			    SELECT e.user_id AS user_id, e.log_date AS log_date,
			           SUM(i.calories) AS total_calories,
			           SUM(i.carb_g) AS carb_g,
			           SUM(i.protein_g) AS protein_g,
			           SUM(i.fat_g) AS fat_g,
			           SUM(i.fiber_g) AS fiber_g
			    FROM meal_events e
			    JOIN meal_items i ON i.meal_event_id = e.id AND i.deleted_at IS NULL
			    WHERE e.deleted_at IS NULL
			    GROUP BY e.user_id, e.log_date
			) daily`},
		{"workout_trends", `
			SELECT user_id, log_date, total_volume, cardio_minutes,
			       AVG(total_volume) OVER (
			           PARTITION BY user_id ORDER BY log_date
			           ROWS BETWEEN 6 PRECEDING AND CURRENT ROW
			       ) AS volume_ma7
			FROM (
			    SELECT s.user_id AS user_id, s.log_date AS log_date,
			           COALESCE(SUM(sv.session_volume), 0) AS total_volume,
			           COALESCE(SUM(CASE WHEN s.mode = 'cardio' THEN COALESCE(s.duration_min, 0) ELSE 0 END), 0) AS cardio_minutes
			    FROM workout_sessions s
			    LEFT JOIN (
			        SELECT workout_session_id, SUM(reps * weight_kg) AS session_volume
			        FROM workout_sets
			        WHERE deleted_at IS NULL
			        GROUP BY workout_session_id
			    ) sv ON sv.workout_session_id = s.id
			    WHERE s.deleted_at IS NULL
			    GROUP BY s.user_id, s.log_date
			) daily`},
	}

	for _, v := range views {
		if err := db.Exec("DROP VIEW IF EXISTS " + v.name).Error; err != nil {
			return err
		}
		if err := db.Exec("CREATE VIEW " + v.name + " AS " + v.sql).Error; err != nil {
			return err
		}
	}
	return nil
}
