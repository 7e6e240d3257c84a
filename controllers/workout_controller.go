package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

// Save replaces the whole day: the form always submits the complete
// day's workout state, so anything previously stored for the date goes.
func (h *WorkoutController) Save(c *gin.Context) {
	var body struct {
		Date           string                         `json:"date" binding:"required"`
		UserIDOverride uint                           `json:"user_id_override"`
		Sessions       []services.WorkoutSessionInput `json:"sessions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
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

	sessions, err := h.Svc.ReplaceForDate(c.Request.Context(), userID, date, body.Sessions)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sessions)
}

func (h *WorkoutController) LoadByDate(c *gin.Context) {
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

	sessions, err := h.Svc.LoadByDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sessions)
}

func (h *WorkoutController) ListPreviousDates(c *gin.Context) {
	userID, err := resolveUserID(c, 0)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	before := time.Now()
	if v := c.Query("before"); v != "" {
		t, ok := parseDate(v)
		if !ok {
			c.JSON(400, gin.H{"error": "invalid before date"})
			return
		}
		before = t
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	dates, err := h.Svc.ListPreviousDates(c.Request.Context(), userID, before, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	c.JSON(200, gin.H{"dates": out})
}

func (h *WorkoutController) PreviousDetail(c *gin.Context) {
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

	detail, err := h.Svc.LoadPreviousDetail(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, detail)
}
