package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAnalysisService(url string) *AnalysisService {
	return &AnalysisService{
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestAnalyzeMealMapsSubstances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analyze" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"substances":[
			{"name":"Protein","quantity":32,"unit":"g","category":"macronutrient","health_impact":"positive"},
			{"name":"Sodium","quantity":900,"unit":"mg","category":"mineral","health_impact":"negative"},
			{"name":"Water","quantity":200,"unit":"g","category":"other","health_impact":"neutral"}
		]}`))
	}))
	defer srv.Close()

	s := newTestAnalysisService(srv.URL)
	readings, err := s.AnalyzeMeal("grilled chicken", "lunch", 250)
	if err != nil {
		t.Fatalf("AnalyzeMeal: %v", err)
	}
	if len(readings) != 3 {
		t.Fatalf("got %d readings, want 3", len(readings))
	}

	if readings[0].Name != "Protein" || readings[0].Category != "good" || readings[0].Amount != 32 {
		t.Errorf("protein reading mismatch: %+v", readings[0])
	}
	if readings[1].Category != "bad" {
		t.Errorf("negative impact should map to bad, got %q", readings[1].Category)
	}
	if readings[2].Category != "neutral" {
		t.Errorf("unknown impact should map to neutral, got %q", readings[2].Category)
	}
	for _, r := range readings {
		if r.MealType != "lunch" {
			t.Errorf("meal type not carried through: %+v", r)
		}
	}
}

func TestAnalyzeMealAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := newTestAnalysisService(srv.URL)
	if _, err := s.AnalyzeMeal("toast", "breakfast", 0); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestAnalyzeMealBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	s := newTestAnalysisService(srv.URL)
	if _, err := s.AnalyzeMeal("toast", "breakfast", 0); err == nil {
		t.Fatal("expected error on malformed response")
	}
}
