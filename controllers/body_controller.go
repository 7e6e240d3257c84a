package controllers

import (
	"net/http"

	"github.com/iyunseong/mental-n-fit-sub000/services"
	"github.com/iyunseong/mental-n-fit-sub000/utils"

	"github.com/gin-gonic/gin"
)

type BodyController struct {
	Svc     *services.BodyService
	AuthSvc *services.AuthService
}

func NewBodyController(svc *services.BodyService, authSvc *services.AuthService) *BodyController {
	return &BodyController{Svc: svc, AuthSvc: authSvc}
}

func (h *BodyController) Save(c *gin.Context) {
	var body struct {
		Date           string `json:"date" binding:"required"`
		UserIDOverride uint   `json:"user_id_override"`
		services.BodyCompositionInput
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

	row, err := h.Svc.Save(c.Request.Context(), userID, date, body.BodyCompositionInput)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, row)
}

func (h *BodyController) GetByDate(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "no body composition log for date"})
		return
	}

	// Attach BMI when the profile carries a height and the day a weight.
	var bmi *float64
	if row.WeightKg != nil {
		if user, uerr := h.AuthSvc.GetUser(c.Request.Context(), userID); uerr == nil && user.HeightCm != nil {
			if v, berr := utils.CalculateBMI(*user.HeightCm, *row.WeightKg); berr == nil {
				bmi = &v
			}
		}
	}
	c.JSON(200, gin.H{"log": row, "bmi": bmi})
}
