package models

import (
    "time"

    "gorm.io/gorm"
)

// One logged food (breakfast/lunch/…) with the nutrient readings its
// analysis produced.
type FoodEntry struct {
    gorm.Model
    UserID     uint   `gorm:"index;not null"`
    ExternalID string `gorm:"type:varchar(36);uniqueIndex"` // client-facing id
    Name       string `gorm:"not null"`
    MealType   string `gorm:"size:20"` // "breakfast"|"lunch"|"dinner"|"snack"
    PortionG   float64
    AteAt      time.Time `gorm:"index"`
    PhotoURL   string
    Readings   []EntryReading
}

// EntryReading snapshots one substance reading so entries stay stable even if
// the analysis service changes its answers later.
type EntryReading struct {
    gorm.Model
    FoodEntryID uint   `gorm:"index;not null"`
    Substance   string `gorm:"not null"`
    Category    string `gorm:"size:10"` // "good" | "bad" | "neutral"
    Amount      float64
}
