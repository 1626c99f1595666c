package services

import (
	"context"
	"time"

	"backend/config"
	"backend/models"
	"backend/nutrition"

	"github.com/google/uuid"
)

type EntryService struct {
	analysis *AnalysisService
}

func NewEntryService(analysis *AnalysisService) *EntryService {
	return &EntryService{analysis: analysis}
}

type EntryRequest struct {
	Name     string  `json:"name"`
	MealType string  `json:"meal_type"` // breakfast | lunch | dinner | snack
	PortionG float64 `json:"portion_g"`
	AteAt    string  `json:"ate_at"` // RFC3339, defaults to now
	PhotoURL string  `json:"photo_url,omitempty"`
}

// AddEntry analyzes the described food and stores the entry together with its
// substance readings.
func (s *EntryService) AddEntry(ctx context.Context, userID uint, req EntryRequest) (*models.FoodEntry, error) {
	ateAt := time.Now()
	if req.AteAt != "" {
		if t, err := time.Parse(time.RFC3339, req.AteAt); err == nil {
			ateAt = t
		}
	}

	readings, err := s.analysis.AnalyzeMeal(req.Name, req.MealType, req.PortionG)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodEntry{
		UserID:     userID,
		ExternalID: uuid.NewString(),
		Name:       req.Name,
		MealType:   req.MealType,
		PortionG:   req.PortionG,
		AteAt:      ateAt,
		PhotoURL:   req.PhotoURL,
	}
	for _, r := range readings {
		entry.Readings = append(entry.Readings, models.EntryReading{
			Substance: r.Name,
			Category:  r.Category,
			Amount:    r.Amount,
		})
	}

	if err := config.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) ListEntries(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := config.DB.WithContext(ctx).
		Preload("Readings").
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, from, to).
		Order("ate_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.FoodEntry{}, entryID).Error
}

// ReadingsForRange flattens every reading a user logged in [from, to] into the
// engine's input shape.
func (s *EntryService) ReadingsForRange(ctx context.Context, userID uint, from, to time.Time) ([]nutrition.Reading, error) {
	entries, err := s.ListEntries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var readings []nutrition.Reading
	for _, e := range entries {
		for _, r := range e.Readings {
			readings = append(readings, nutrition.Reading{
				Name:     r.Substance,
				Category: r.Category,
				Amount:   r.Amount,
				MealType: e.MealType,
			})
		}
	}
	return readings, nil
}
