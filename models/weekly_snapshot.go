package models

import (
    "time"

    "gorm.io/gorm"
)

// WeeklySnapshot persists one generated weekly report so the following week
// has a baseline for trend deltas.
type WeeklySnapshot struct {
    gorm.Model
    UserID            uint      `gorm:"index;not null"`
    WeekStart         time.Time `gorm:"index;not null"`
    Overall           float64
    Macronutrients    float64
    Micronutrients    float64
    HarmfulSubstances float64
    CalorieTotal      float64
    RecordsJSON       string `gorm:"type:text"` // serialized weekly records
}
