package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backend/logger"
	"backend/models"
	"backend/nutrition"
	"backend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportService generates the daily comparison and weekly rollup reports that
// the engine computes from a user's logged entries.
type ReportService struct {
	db      *gorm.DB
	entries *EntryService
	engine  *nutrition.Engine
}

func NewReportService(db *gorm.DB, entries *EntryService, engine *nutrition.Engine) *ReportService {
	return &ReportService{db: db, entries: entries, engine: engine}
}

type DailyReport struct {
	Date    string                       `json:"date"`
	Records []nutrition.ComparisonRecord `json:"records"`
	Score   nutrition.NutritionScore     `json:"score"`
}

type WeeklyReport struct {
	WeekStart string                   `json:"week_start"`
	Records   []nutrition.WeeklyRecord `json:"records"`
	Score     nutrition.NutritionScore `json:"score"`
	Trends    *nutrition.TrendReport   `json:"trends,omitempty"`
}

// Daily builds the comparison records and score for one calendar day.
func (s *ReportService) Daily(ctx context.Context, userID uint, date time.Time) (*DailyReport, error) {
	records, err := s.dailyRecords(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	score := nutrition.Score(records)
	s.alertHarmfulExcess(userID, records)

	return &DailyReport{
		Date:    date.Format("2006-01-02"),
		Records: records,
		Score:   score,
	}, nil
}

// Weekly rolls seven daily record sets into weekly records, scores them,
// computes trends against the previous stored week, and persists a snapshot
// for the next week's trends.
func (s *ReportService) Weekly(ctx context.Context, userID uint, weekStart time.Time) (*WeeklyReport, error) {
	weekStart = dayStart(weekStart)

	days := make([][]nutrition.ComparisonRecord, nutrition.DaysPerWeek)
	for i := 0; i < nutrition.DaysPerWeek; i++ {
		recs, err := s.dailyRecords(ctx, userID, weekStart.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		days[i] = recs
	}

	weekly := s.engine.BuildWeekly(days)
	score := nutrition.Score(flatten(weekly))

	report := &WeeklyReport{
		WeekStart: weekStart.Format("2006-01-02"),
		Records:   weekly,
		Score:     score,
	}

	if prev, prevScore, ok := s.loadSnapshot(ctx, userID, weekStart.AddDate(0, 0, -nutrition.DaysPerWeek)); ok {
		trends := nutrition.ComputeTrends(weekly, prev, score, prevScore)
		report.Trends = &trends
	}

	if err := s.saveSnapshot(ctx, userID, weekStart, weekly, score); err != nil {
		logger.Error("weekly snapshot save failed", zap.Uint("user", userID), zap.Error(err))
	}
	return report, nil
}

// FinishWeek generates the weekly report and notifies the user about it.
func (s *ReportService) FinishWeek(ctx context.Context, userID uint, weekStart time.Time) (*WeeklyReport, error) {
	report, err := s.Weekly(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	EmitAlert(userID, "weekly_report",
		fmt.Sprintf("Your weekly nutrition report is ready: overall score %.0f/100", report.Score.Overall))

	if user, err := FindUserByID(userID); err == nil {
		if err := utils.SendWeeklyReportEmail(user.Email, report.WeekStart, report.Score); err != nil {
			logger.Warn("weekly report email failed", zap.Uint("user", userID), zap.Error(err))
		}
	}
	return report, nil
}

func (s *ReportService) dailyRecords(ctx context.Context, userID uint, date time.Time) ([]nutrition.ComparisonRecord, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	age := utils.CalculateAge(user.Birthday)

	readings, err := s.entries.ReadingsForRange(ctx, userID, dayStart(date), dayEnd(date))
	if err != nil {
		return nil, err
	}

	totals, err := nutrition.Aggregate(readings)
	if err != nil {
		return nil, err
	}
	return s.engine.BuildRecords(totals, utils.AgeGroup(age), user.Gender), nil
}

func (s *ReportService) alertHarmfulExcess(userID uint, records []nutrition.ComparisonRecord) {
	for _, r := range records {
		if r.Category == nutrition.CategoryHarmful && r.Status == nutrition.StatusExcess {
			EmitAlert(userID, "harmful_excess",
				fmt.Sprintf("%s intake is over the limit today (%s)", r.Substance, r.Display))
		}
	}
}

func (s *ReportService) loadSnapshot(ctx context.Context, userID uint, weekStart time.Time) ([]nutrition.WeeklyRecord, nutrition.NutritionScore, bool) {
	var snap models.WeeklySnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&snap).Error
	if err != nil {
		return nil, nutrition.NutritionScore{}, false
	}

	var records []nutrition.WeeklyRecord
	if err := json.Unmarshal([]byte(snap.RecordsJSON), &records); err != nil {
		logger.Warn("stored weekly records unreadable", zap.Uint("user", userID), zap.Error(err))
		return nil, nutrition.NutritionScore{}, false
	}

	score := nutrition.NutritionScore{
		Overall: snap.Overall,
		Breakdown: nutrition.ScoreBreakdown{
			Macronutrients:    snap.Macronutrients,
			Micronutrients:    snap.Micronutrients,
			HarmfulSubstances: snap.HarmfulSubstances,
		},
	}
	return records, score, true
}

func (s *ReportService) saveSnapshot(ctx context.Context, userID uint, weekStart time.Time, records []nutrition.WeeklyRecord, score nutrition.NutritionScore) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}

	snap := models.WeeklySnapshot{
		UserID:            userID,
		WeekStart:         weekStart,
		Overall:           score.Overall,
		Macronutrients:    score.Breakdown.Macronutrients,
		Micronutrients:    score.Breakdown.Micronutrients,
		HarmfulSubstances: score.Breakdown.HarmfulSubstances,
		CalorieTotal:      weeklyCalories(records),
		RecordsJSON:       string(raw),
	}

	var existing models.WeeklySnapshot
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&existing).Error; err == nil {
		snap.ID = existing.ID
		snap.CreatedAt = existing.CreatedAt
	}
	return s.db.WithContext(ctx).Save(&snap).Error
}

func flatten(week []nutrition.WeeklyRecord) []nutrition.ComparisonRecord {
	out := make([]nutrition.ComparisonRecord, len(week))
	for i, r := range week {
		out[i] = r.ComparisonRecord
	}
	return out
}

func weeklyCalories(week []nutrition.WeeklyRecord) float64 {
	for _, r := range week {
		if r.Category == nutrition.CategoryCalorie {
			return r.Consumed
		}
	}
	return 0
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
