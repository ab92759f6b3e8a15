package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/config"
	"github.com/Mayur-aditya-007/AyuVeda-Website/models"
)

// feedSeeds are the terms the explore page shows when nothing has been
// searched yet.
var feedSeeds = []string{"turmeric", "ginger", "rice", "lentil", "chicken"}

const feedLimit = 24

type IngredientService struct {
	baseURL string
	client  *http.Client
}

// NewIngredientService points at TheMealDB's public v1 API.
func NewIngredientService() *IngredientService {
	return &IngredientService{
		baseURL: "https://www.themealdb.com/api/json/v1/1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewIngredientServiceWithBase is used by tests to aim at a local server.
func NewIngredientServiceWithBase(baseURL string, client *http.Client) *IngredientService {
	return &IngredientService{baseURL: baseURL, client: client}
}

type mealSearchResponse struct {
	Meals []struct {
		ID        string `json:"idMeal"`
		Name      string `json:"strMeal"`
		Category  string `json:"strCategory"`
		Area      string `json:"strArea"`
		Thumbnail string `json:"strMealThumb"`
	} `json:"meals"`
}

// Search queries the upstream API, refreshes the local cache with the
// hits, and falls back to the cache when the upstream call fails.
func (s *IngredientService) Search(query string) ([]models.Ingredient, error) {
	results, err := s.fetch(query)
	if err != nil {
		var cached []models.Ingredient
		if dbErr := config.DB.Where("label LIKE ?", "%"+query+"%").
			Limit(feedLimit).Find(&cached).Error; dbErr == nil && len(cached) > 0 {
			return cached, nil
		}
		return nil, err
	}

	s.cache(results)
	return results, nil
}

// Feed returns the default explore listing by fanning out over the seed
// terms. Upstream errors for individual seeds are skipped.
func (s *IngredientService) Feed() ([]models.Ingredient, error) {
	var combined []models.Ingredient
	for _, seed := range feedSeeds {
		results, err := s.fetch(seed)
		if err != nil {
			continue
		}
		combined = append(combined, results...)
		if len(combined) > feedLimit {
			break
		}
	}

	if len(combined) == 0 {
		var cached []models.Ingredient
		if err := config.DB.Limit(feedLimit).Find(&cached).Error; err == nil && len(cached) > 0 {
			return cached, nil
		}
		return nil, fmt.Errorf("ingredient feed unavailable")
	}

	if len(combined) > feedLimit {
		combined = combined[:feedLimit]
	}
	s.cache(combined)
	return combined, nil
}

func (s *IngredientService) fetch(query string) ([]models.Ingredient, error) {
	u := fmt.Sprintf("%s/search.php?s=%s", s.baseURL, url.QueryEscape(query))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call TheMealDB: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TheMealDB response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TheMealDB API error %d: %s", resp.StatusCode, string(body))
	}

	var sr mealSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse TheMealDB JSON: %w", err)
	}

	results := make([]models.Ingredient, 0, len(sr.Meals))
	for _, m := range sr.Meals {
		results = append(results, models.Ingredient{
			MealDBID:  m.ID,
			Label:     m.Name,
			Category:  m.Category,
			Area:      m.Area,
			Thumbnail: m.Thumbnail,
		})
	}
	return results, nil
}

// cache upserts fetched rows keyed by their upstream id. Failures here
// only cost the offline fallback, so they are not surfaced.
func (s *IngredientService) cache(items []models.Ingredient) {
	for i := range items {
		var existing models.Ingredient
		err := config.DB.Where("mealdb_id = ?", items[i].MealDBID).First(&existing).Error
		if err != nil {
			config.DB.Create(&items[i])
			continue
		}
		config.DB.Model(&existing).Updates(map[string]interface{}{
			"label":     items[i].Label,
			"category":  items[i].Category,
			"area":      items[i].Area,
			"thumbnail": items[i].Thumbnail,
		})
	}
}
