package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ExerciseSearchService looks up exercises via the API Ninjas exercises
// API, with a static demo catalog as fallback.
type ExerciseSearchService struct {
	client *http.Client
	apiKey string
}

func NewExerciseSearchService() *ExerciseSearchService {
	return &ExerciseSearchService{
		client: &http.Client{Timeout: 10 * time.Second},
		apiKey: os.Getenv("API_NINJAS_KEY"),
	}
}

type ExerciseResult struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// ExerciseQuery mirrors the upstream filter parameters; empty fields
// are omitted from the request.
type ExerciseQuery struct {
	Muscle     string
	Difficulty string
	Type       string
	Offset     string
}

func (s *ExerciseSearchService) Search(q ExerciseQuery) []ExerciseResult {
	results, err := s.fetch(q)
	if err != nil {
		log.Printf("exercise search falling back to demo data: %v", err)
		return demoExercises(q)
	}
	return results
}

func (s *ExerciseSearchService) fetch(q ExerciseQuery) ([]ExerciseResult, error) {
	params := url.Values{}
	if q.Muscle != "" {
		params.Set("muscle", q.Muscle)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Offset != "" {
		params.Set("offset", q.Offset)
	}

	req, err := http.NewRequest(http.MethodGet, "https://api.api-ninjas.com/v1/exercises?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call API Ninjas exercises: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercises response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API Ninjas exercises error %d: %s", resp.StatusCode, string(body))
	}

	var results []ExerciseResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse exercises JSON: %w", err)
	}
	return results, nil
}

func demoExercises(q ExerciseQuery) []ExerciseResult {
	catalog := []ExerciseResult{
		{Name: "Push-Ups", Type: "strength", Muscle: "chest", Equipment: "body_only", Difficulty: "beginner", Instructions: "Start in plank position. Lower your body until your chest nearly touches the floor. Push yourself back up."},
		{Name: "Squats", Type: "strength", Muscle: "quadriceps", Equipment: "body_only", Difficulty: "beginner", Instructions: "Stand with feet shoulder-width apart. Lower your hips back and down as if sitting in a chair. Return to standing."},
		{Name: "Deadlift", Type: "strength", Muscle: "lower_back", Equipment: "barbell", Difficulty: "intermediate", Instructions: "Stand with feet hip-width apart behind the bar. Bend at hips, grip bar, lift by extending hips and knees."},
		{Name: "Pull-Ups", Type: "strength", Muscle: "lats", Equipment: "pull-up_bar", Difficulty: "intermediate", Instructions: "Hang from a pull-up bar with palms facing away. Pull yourself up until your chin is above the bar."},
		{Name: "Bench Press", Type: "strength", Muscle: "chest", Equipment: "barbell", Difficulty: "intermediate", Instructions: "Lie on a flat bench. Lower the bar to your chest and press it back up."},
		{Name: "Plank", Type: "strength", Muscle: "abdominals", Equipment: "body_only", Difficulty: "beginner", Instructions: "Hold a push-up position with arms straight. Keep your body in a straight line from head to heels."},
		{Name: "Lunges", Type: "strength", Muscle: "quadriceps", Equipment: "body_only", Difficulty: "beginner", Instructions: "Step forward with one leg and lower your hips until both knees are bent at 90 degrees."},
		{Name: "Shoulder Press", Type: "strength", Muscle: "shoulders", Equipment: "dumbbell", Difficulty: "intermediate", Instructions: "Press dumbbells overhead from shoulder height until arms are fully extended."},
		{Name: "Bicep Curls", Type: "strength", Muscle: "biceps", Equipment: "dumbbell", Difficulty: "beginner", Instructions: "Hold dumbbells at your sides. Curl them up toward your shoulders, then lower."},
		{Name: "Burpees", Type: "cardio", Muscle: "chest", Equipment: "body_only", Difficulty: "intermediate", Instructions: "From standing, squat down, kick feet back to plank, do a push-up, jump feet forward, jump up."},
	}

	filtered := make([]ExerciseResult, 0, len(catalog))
	for _, e := range catalog {
		if q.Muscle != "" && e.Muscle != q.Muscle {
			continue
		}
		if q.Difficulty != "" && e.Difficulty != q.Difficulty {
			continue
		}
		filtered = append(filtered, e)
	}
	if len(filtered) > 0 {
		return filtered
	}
	return catalog
}
