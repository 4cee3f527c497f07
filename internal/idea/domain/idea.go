package domain

import (
	"math"
	"time"
)

// Score bounds for impact, ease and confidence
const (
	ScoreMin = 1
	ScoreMax = 10
)

// Idea is the scored record resource managed by the API.
type Idea struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Content      string    `json:"content" gorm:"size:255;not null"`
	Impact       int       `json:"impact" gorm:"not null"`
	Ease         int       `json:"ease" gorm:"not null"`
	Confidence   int       `json:"confidence" gorm:"not null"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ComputeAverageScore recomputes the derived score from the three
// dimensions, rounded to two decimal places. Called on every save path so
// a client-supplied value never survives.
func (i *Idea) ComputeAverageScore() {
	avg := float64(i.Impact+i.Ease+i.Confidence) / 3
	i.AverageScore = math.Round(avg*100) / 100
}
