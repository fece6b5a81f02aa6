package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"backend/utils"
)

// NutritionSearchService looks up foods via the API Ninjas nutrition
// API. Any upstream failure degrades to a static demo catalog so the
// search box keeps working without a key.
type NutritionSearchService struct {
	client *http.Client
	apiKey string
}

func NewNutritionSearchService() *NutritionSearchService {
	return &NutritionSearchService{
		client: &http.Client{Timeout: 10 * time.Second},
		apiKey: os.Getenv("API_NINJAS_KEY"),
	}
}

type FoodResult struct {
	FoodID      string  `json:"foodId"`
	Label       string  `json:"label"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"servingSize"`
	Category    string  `json:"category"`
}

func (s *NutritionSearchService) Search(query string) []FoodResult {
	if query == "" {
		return []FoodResult{}
	}
	results, err := s.fetch(query)
	if err != nil {
		log.Printf("nutrition search falling back to demo data: %v", err)
		return demoFoods(query)
	}
	return results
}

type ninjaNutritionItem struct {
	Name         string  `json:"name"`
	Calories     float64 `json:"calories"`
	ProteinG     float64 `json:"protein_g"`
	FatTotalG    float64 `json:"fat_total_g"`
	CarbsTotalG  float64 `json:"carbohydrates_total_g"`
	FiberG       float64 `json:"fiber_g"`
	ServingSizeG float64 `json:"serving_size_g"`
}

func (s *NutritionSearchService) fetch(query string) ([]FoodResult, error) {
	u := fmt.Sprintf("https://api.api-ninjas.com/v1/nutrition?query=%s", url.QueryEscape(query))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call API Ninjas nutrition: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API Ninjas nutrition error %d: %s", resp.StatusCode, string(body))
	}

	var items []ninjaNutritionItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	results := make([]FoodResult, 0, len(items))
	for i, item := range items {
		results = append(results, FoodResult{
			FoodID:      fmt.Sprintf("ninja_%d_%d", time.Now().UnixMilli(), i),
			Label:       capitalize(item.Name),
			Calories:    math.Round(item.Calories),
			Protein:     utils.Round1(item.ProteinG),
			Fat:         utils.Round1(item.FatTotalG),
			Carbs:       utils.Round1(item.CarbsTotalG),
			Fiber:       utils.Round1(item.FiberG),
			ServingSize: fmt.Sprintf("%.0fg", item.ServingSizeG),
			Category:    "Food",
		})
	}
	return results, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func demoFoods(query string) []FoodResult {
	catalog := []FoodResult{
		{FoodID: "demo_1", Label: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0, Fiber: 0, Category: "Poultry", ServingSize: "100g"},
		{FoodID: "demo_2", Label: "Brown Rice", Calories: 216, Protein: 5, Fat: 1.8, Carbs: 45, Fiber: 3.5, Category: "Grains", ServingSize: "100g"},
		{FoodID: "demo_3", Label: "Banana", Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23, Fiber: 2.6, Category: "Fruit", ServingSize: "100g"},
		{FoodID: "demo_4", Label: "Greek Yogurt", Calories: 59, Protein: 10, Fat: 0.7, Carbs: 3.6, Fiber: 0, Category: "Dairy", ServingSize: "100g"},
		{FoodID: "demo_5", Label: "Egg", Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1, Fiber: 0, Category: "Protein", ServingSize: "100g"},
		{FoodID: "demo_6", Label: "Salmon", Calories: 208, Protein: 20, Fat: 13, Carbs: 0, Fiber: 0, Category: "Seafood", ServingSize: "100g"},
		{FoodID: "demo_7", Label: "Sweet Potato", Calories: 86, Protein: 1.6, Fat: 0.1, Carbs: 20, Fiber: 3, Category: "Vegetables", ServingSize: "100g"},
		{FoodID: "demo_8", Label: "Oatmeal", Calories: 68, Protein: 2.4, Fat: 1.4, Carbs: 12, Fiber: 1.7, Category: "Grains", ServingSize: "100g"},
		{FoodID: "demo_9", Label: "Broccoli", Calories: 34, Protein: 2.8, Fat: 0.4, Carbs: 7, Fiber: 2.6, Category: "Vegetables", ServingSize: "100g"},
		{FoodID: "demo_10", Label: "Almonds", Calories: 579, Protein: 21, Fat: 50, Carbs: 22, Fiber: 12.5, Category: "Nuts", ServingSize: "100g"},
	}

	q := strings.ToLower(query)
	filtered := make([]FoodResult, 0, len(catalog))
	for _, f := range catalog {
		if strings.Contains(strings.ToLower(f.Label), q) {
			filtered = append(filtered, f)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}
	return catalog[:5]
}
