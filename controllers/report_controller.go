package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(rs *services.ReportService) *ReportController {
	return &ReportController{Reports: rs}
}

// Daily returns the comparison records and score for one day.
// GET /reports/daily?date=YYYY-MM-DD (default today)
func (rc *ReportController) Daily(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if v := c.Query("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = t
	}

	report, err := rc.Reports.Daily(c.Request.Context(), uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Weekly returns the weekly rollup starting at week_start.
// GET /reports/weekly?week_start=YYYY-MM-DD (default: Monday of this week)
func (rc *ReportController) Weekly(c *gin.Context) {
	uid := c.GetUint("userID")

	weekStart, err := weekStartParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	report, err := rc.Reports.Weekly(c.Request.Context(), uid, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Finish closes out a week: generates the report, stores the snapshot, and
// notifies the user.
// POST /reports/weekly/finish?week_start=YYYY-MM-DD
func (rc *ReportController) Finish(c *gin.Context) {
	uid := c.GetUint("userID")

	weekStart, err := weekStartParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	report, err := rc.Reports.FinishWeek(c.Request.Context(), uid, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func weekStartParam(c *gin.Context) (time.Time, error) {
	if v := c.Query("week_start"); v != "" {
		return time.Parse("2006-01-02", v)
	}
	now := time.Now()
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset), nil
}
