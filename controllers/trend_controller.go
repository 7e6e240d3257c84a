package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type TrendController struct {
	Svc *services.TrendService
}

func NewTrendController(svc *services.TrendService) *TrendController {
	return &TrendController{Svc: svc}
}

func (h *TrendController) DailySummary(c *gin.Context) {
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

	summary, err := h.Svc.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, summary)
}

func (h *TrendController) ConditionTrend(c *gin.Context) {
	userID, from, to, ok := h.rangeArgs(c)
	if !ok {
		return
	}
	points, err := h.Svc.ConditionRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"points": points})
}

func (h *TrendController) BodyTrend(c *gin.Context) {
	userID, from, to, ok := h.rangeArgs(c)
	if !ok {
		return
	}
	points, err := h.Svc.BodyRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	out := gin.H{"points": points}
	if ma, found := services.LatestWeightMA7(points); found {
		out["latest_weight_ma7"] = ma
	}
	if delta := services.WeightDelta(points); delta != nil {
		out["weight_delta"] = delta
	}
	c.JSON(200, out)
}

func (h *TrendController) MealTrend(c *gin.Context) {
	userID, from, to, ok := h.rangeArgs(c)
	if !ok {
		return
	}
	points, err := h.Svc.MealRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"points": points})
}

func (h *TrendController) WorkoutTrend(c *gin.Context) {
	userID, from, to, ok := h.rangeArgs(c)
	if !ok {
		return
	}
	points, err := h.Svc.WorkoutRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"points": points})
}

func (h *TrendController) TopExercises(c *gin.Context) {
	userID, err := resolveUserID(c, 0)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := h.Svc.TopExercises(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"exercises": rows})
}

func (h *TrendController) RecentExercises(c *gin.Context) {
	userID, err := resolveUserID(c, 0)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "90"))

	rows, err := h.Svc.RecentExercises(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"exercises": rows})
}

func (h *TrendController) rangeArgs(c *gin.Context) (userID uint, from, to time.Time, ok bool) {
	userID, err := resolveUserID(c, 0)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return 0, from, to, false
	}
	from, to, ok = parseRange(c)
	if !ok {
		c.JSON(400, gin.H{"error": "invalid from/to range"})
		return 0, from, to, false
	}
	return userID, from, to, true
}
