package routes

import (
	"github.com/iyunseong/mental-n-fit-sub000/controllers"
	"github.com/iyunseong/mental-n-fit-sub000/middlewares"
	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db)
	conditionSvc := services.NewConditionService(db)
	bodySvc := services.NewBodyService(db)
	workoutSvc := services.NewWorkoutService(db)
	mealSvc := services.NewMealService(db)
	foodSvc := services.NewFoodService(db)
	trendSvc := services.NewTrendService(db)

	authCtl := controllers.NewAuthController(authSvc)
	conditionCtl := controllers.NewConditionController(conditionSvc)
	bodyCtl := controllers.NewBodyController(bodySvc, authSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	trendCtl := controllers.NewTrendController(trendSvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", authCtl.Profile)
	}

	// Log + trend routes. Optional auth: a session identity wins when
	// present; otherwise save handlers accept a trusted override id.
	api := r.Group("/api")
	api.Use(middlewares.OptionalAuthMiddleware())
	{
		api.POST("/condition", conditionCtl.Save)
		api.POST("/condition/journal", conditionCtl.SaveJournal)
		api.GET("/condition/:date", conditionCtl.GetByDate)

		api.POST("/body", bodyCtl.Save)
		api.GET("/body/:date", bodyCtl.GetByDate)

		api.POST("/workouts", workoutCtl.Save)
		api.GET("/workouts/date/:date", workoutCtl.LoadByDate)
		api.GET("/workouts/previous/dates", workoutCtl.ListPreviousDates)
		api.GET("/workouts/previous/detail/:date", workoutCtl.PreviousDetail)

		api.POST("/meals", mealCtl.Save)
		api.GET("/meals/:date", mealCtl.ListByDate)

		api.GET("/foods", foodCtl.Search)
		api.POST("/foods", foodCtl.Create)

		api.GET("/summary/:date", trendCtl.DailySummary)
		api.GET("/trends/condition", trendCtl.ConditionTrend)
		api.GET("/trends/body", trendCtl.BodyTrend)
		api.GET("/trends/meals", trendCtl.MealTrend)
		api.GET("/trends/workouts", trendCtl.WorkoutTrend)
		api.GET("/exercises/top", trendCtl.TopExercises)
		api.GET("/exercises/recent", trendCtl.RecentExercises)
	}

	return r
}
