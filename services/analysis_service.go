package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/nutrition"
)

// AnalysisService talks to the external food-analysis API that breaks a
// described meal down into its substances.
type AnalysisService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		baseURL: os.Getenv("ANALYSIS_API_URL"),
		apiKey:  os.Getenv("ANALYSIS_API_KEY"),
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type analyzeRequest struct {
	Description string  `json:"description"`
	PortionG    float64 `json:"portion_g,omitempty"`
}

type analyzeResponse struct {
	Substances []struct {
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		Category     string  `json:"category"`
		HealthImpact string  `json:"health_impact"`
	} `json:"substances"`
}

// AnalyzeMeal sends a free-text meal description to the analysis API and maps
// the returned substances into readings for the comparison engine.
func (s *AnalysisService) AnalyzeMeal(description, mealType string, portionG float64) ([]nutrition.Reading, error) {
	b, err := json.Marshal(analyzeRequest{Description: description, PortionG: portionG})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/v1/analyze", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis API error %d: %s", resp.StatusCode, string(body))
	}

	var ar analyzeResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	readings := make([]nutrition.Reading, 0, len(ar.Substances))
	for _, sub := range ar.Substances {
		readings = append(readings, nutrition.Reading{
			Name:     sub.Name,
			Category: mapImpact(sub.HealthImpact),
			Amount:   sub.Quantity,
			MealType: mealType,
		})
	}
	return readings, nil
}

// mapImpact folds the API's health_impact field into a comparison category.
func mapImpact(impact string) string {
	switch impact {
	case "negative":
		return "bad"
	case "positive":
		return "good"
	default:
		return "neutral"
	}
}
