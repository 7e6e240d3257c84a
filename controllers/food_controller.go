package controllers

import (
	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

func (h *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(400, gin.H{"error": "q is required"})
		return
	}

	foods, err := h.Svc.Search(c.Request.Context(), q, 20)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, foods)
}

func (h *FoodController) Create(c *gin.Context) {
	var body struct {
		Name     string  `json:"name" binding:"required"`
		CarbG    float64 `json:"carb_g"`
		ProteinG float64 `json:"protein_g"`
		FatG     float64 `json:"fat_g"`
		FiberG   float64 `json:"fiber_g"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		Name:     body.Name,
		CarbG:    body.CarbG,
		ProteinG: body.ProteinG,
		FatG:     body.FatG,
		FiberG:   body.FiberG,
	}
	if err := h.Svc.Create(c.Request.Context(), &food); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, food)
}
