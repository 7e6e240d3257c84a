package controllers

import (
	"net/http"

	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

var validMealTypes = map[string]bool{
	models.MealTypeBreakfast: true,
	models.MealTypeLunch:     true,
	models.MealTypeDinner:    true,
	models.MealTypeSnack:     true,
}

func (h *MealController) Save(c *gin.Context) {
	var body struct {
		Date           string                   `json:"date" binding:"required"`
		UserIDOverride uint                     `json:"user_id_override"`
		MealType       string                   `json:"meal_type" binding:"required"`
		EatenAt        *string                  `json:"eaten_at"`
		Notes          string                   `json:"notes"`
		Items          []services.MealItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !validMealTypes[body.MealType] {
		c.JSON(400, gin.H{"error": "meal_type must be one of 아침, 점심, 저녁, 간식"})
		return
	}
	date, ok := parseDate(body.Date)
	if !ok {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}

	userID, err := resolveUserID(c, body.UserIDOverride)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	event, err := h.Svc.SaveMeal(c.Request.Context(), userID, date, body.MealType, body.EatenAt, body.Notes, body.Items)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, event)
}

func (h *MealController) ListByDate(c *gin.Context) {
	userID, err := resolveUserID(c, 0)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDateParam(c, "date")
	if !ok {
		c.JSON(400, gin.H{"error": "invalid date"})
		return
	}

	events, err := h.Svc.ListByDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, events)
}
