package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type WorkoutLogService struct{ db *gorm.DB }

func NewWorkoutLogService(db *gorm.DB) *WorkoutLogService {
	return &WorkoutLogService{db: db}
}

func (s *WorkoutLogService) Create(ctx context.Context, userID uint, entry *models.WorkoutLog) (*models.WorkoutLog, error) {
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

func (s *WorkoutLogService) List(ctx context.Context, userID uint, filter DateFilter, limit int) ([]models.WorkoutLog, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.IsZero() {
		start, end := filter.Bounds(time.Now())
		q = q.Where("date BETWEEN ? AND ?", start, end)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var logs []models.WorkoutLog
	err := q.Order("date DESC").Find(&logs).Error
	return logs, err
}

func (s *WorkoutLogService) GetOwned(ctx context.Context, id, userID uint) (*models.WorkoutLog, error) {
	var entry models.WorkoutLog
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

func (s *WorkoutLogService) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WorkoutLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
