package services

import (
	"context"

	"github.com/iyunseong/mental-n-fit-sub000/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Search backs the meal form's food picker.
func (s *FoodService) Search(ctx context.Context, q string, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 20
	}
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Where("name LIKE ?", "%"+q+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Create(ctx context.Context, food *models.Food) error {
	return s.db.WithContext(ctx).Create(food).Error
}

func (s *FoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
