package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const defaultLogLimit = 50

type NutritionLogService struct{ db *gorm.DB }

func NewNutritionLogService(db *gorm.DB) *NutritionLogService {
	return &NutritionLogService{db: db}
}

// Create persists a new entry owned by userID. The entry date defaults
// to now; ownership is set here and never changes afterwards.
func (s *NutritionLogService) Create(ctx context.Context, userID uint, entry *models.NutritionLog) (*models.NutritionLog, error) {
	entry.ID = 0
	entry.UserID = userID
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries newest-first. A zero filter means no
// date constraint; limit <= 0 means no cap (summaries aggregate the
// whole window, the API layer passes its own default).
func (s *NutritionLogService) List(ctx context.Context, userID uint, filter DateFilter, limit int) ([]models.NutritionLog, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.IsZero() {
		start, end := filter.Bounds(time.Now())
		q = q.Where("date BETWEEN ? AND ?", start, end)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var logs []models.NutritionLog
	err := q.Order("date DESC").Find(&logs).Error
	return logs, err
}

func (s *NutritionLogService) GetOwned(ctx context.Context, id, userID uint) (*models.NutritionLog, error) {
	var entry models.NutritionLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteOwned deletes only when the owner matches; the ownership check
// and the delete are one statement, so a non-owner can never race past
// the check.
func (s *NutritionLogService) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.NutritionLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
