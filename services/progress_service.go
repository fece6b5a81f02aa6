package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

const defaultProgressLimit = 90

const defaultHeightCm = 170

type ProgressService struct{ db *gorm.DB }

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Create persists a body-measurement snapshot. BMI is computed here from
// the owner's stored height and frozen into the entry; a later height
// change never rewrites history.
func (s *ProgressService) Create(ctx context.Context, userID uint, entry *models.ProgressEntry) (*models.ProgressEntry, error) {
	entry.ID = 0
	entry.UserID = userID
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	height := float64(defaultHeightCm)
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err == nil && user.Height > 0 {
		height = user.Height
	}
	entry.BMI = utils.CalculateBMI(entry.Weight, height)

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ProgressService) List(ctx context.Context, userID uint, filter DateFilter, limit int) ([]models.ProgressEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !filter.IsZero() {
		start, end := filter.Bounds(time.Now())
		q = q.Where("date BETWEEN ? AND ?", start, end)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []models.ProgressEntry
	err := q.Order("date DESC").Find(&entries).Error
	return entries, err
}

func (s *ProgressService) GetOwned(ctx context.Context, id, userID uint) (*models.ProgressEntry, error) {
	var entry models.ProgressEntry
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

func (s *ProgressService) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ProgressEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
