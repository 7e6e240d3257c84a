package controllers

import (
	"net/http"

	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type ConditionController struct {
	Svc *services.ConditionService
}

func NewConditionController(svc *services.ConditionService) *ConditionController {
	return &ConditionController{Svc: svc}
}

func (h *ConditionController) Save(c *gin.Context) {
	var body struct {
		Date           string `json:"date" binding:"required"`
		UserIDOverride uint   `json:"user_id_override"`
		services.ConditionInput
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

	row, err := h.Svc.Save(c.Request.Context(), userID, date, body.ConditionInput)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, row)
}

func (h *ConditionController) SaveJournal(c *gin.Context) {
	var body struct {
		Date           string `json:"date" binding:"required"`
		UserIDOverride uint   `json:"user_id_override"`
		JournalGood    string `json:"journal_good"`
		JournalBad     string `json:"journal_bad"`
		JournalMemo    string `json:"journal_memo"`
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

	row, err := h.Svc.SaveJournalOnly(c.Request.Context(), userID, date, body.JournalGood, body.JournalBad, body.JournalMemo)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, row)
}

func (h *ConditionController) GetByDate(c *gin.Context) {
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

	row, err := h.Svc.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no condition log for date"})
		return
	}
	c.JSON(200, row)
}
