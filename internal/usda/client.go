// Package usda looks up per-100 g macros in USDA FoodData Central.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultSearchURL = "https://api.nal.usda.gov/fdc/v1/foods/search"
	defaultCacheSize = 512
	requestTimeout   = 10 * time.Second
)

// FoodData Central nutrient ids. Legacy nutrient numbers are matched too.
const (
	NutrientIDEnergy       = 1008
	NutrientIDProtein      = 1003
	NutrientIDTotalFat     = 1004
	NutrientIDCarbohydrate = 1005
)

var legacyNumbers = map[string]int{
	"208": NutrientIDEnergy,
	"203": NutrientIDProtein,
	"204": NutrientIDTotalFat,
	"205": NutrientIDCarbohydrate,
}

type searchResponse struct {
	Foods []struct {
		FdcID         int    `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientID     int     `json:"nutrientId"`
			NutrientNumber string  `json:"nutrientNumber"`
			UnitName       string  `json:"unitName"`
			Value          float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

type cachedResult struct {
	match models.FoodMatch
	found bool
}

// Client searches FoodData Central. Answers, including misses, are cached.
type Client struct {
	APIKey     string
	SearchURL  string
	HTTPClient *http.Client

	cache  *lru.Cache[string, cachedResult]
	logger zerolog.Logger
}

// NewClient returns a client using apiKey.
func NewClient(apiKey string) (*Client, error) {
	cache, err := lru.New[string, cachedResult](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create USDA cache: %w", err)
	}
	return &Client{
		APIKey:     apiKey,
		SearchURL:  defaultSearchURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
		cache:      cache,
		logger:     log.Logger,
	}, nil
}

// WithLogger replaces the client's logger.
func (c *Client) WithLogger(l zerolog.Logger) *Client {
	c.logger = l
	return c
}

// SearchFood returns the best match for query. found is false when USDA has
// no food with usable energy data.
func (c *Client) SearchFood(ctx context.Context, query string) (models.FoodMatch, bool, error) {
	key := nutrition.Normalize(query)
	if key == "" {
		return models.FoodMatch{}, false, nil
	}
	if hit, ok := c.cache.Get(key); ok {
		return hit.match, hit.found, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", "1")
	params.Set("api_key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.FoodMatch{}, false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.FoodMatch{}, false, fmt.Errorf("usda request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return models.FoodMatch{}, false, fmt.Errorf("usda returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return models.FoodMatch{}, false, fmt.Errorf("failed to decode usda response: %w", err)
	}

	result := cachedResult{}
	if len(sr.Foods) > 0 {
		food := sr.Foods[0]
		var m models.Macros
		for _, n := range food.FoodNutrients {
			id := n.NutrientID
			if id == 0 {
				id = legacyNumbers[n.NutrientNumber]
			}
			switch id {
			case NutrientIDEnergy:
				if n.UnitName == "" || strings.EqualFold(n.UnitName, "kcal") {
					m.Calories = n.Value
				}
			case NutrientIDProtein:
				m.Protein = n.Value
			case NutrientIDTotalFat:
				m.Fat = n.Value
			case NutrientIDCarbohydrate:
				m.Carbs = n.Value
			}
		}
		if m.Calories > 0 {
			result = cachedResult{match: models.FoodMatch{Name: food.Description, Per100g: m}, found: true}
		}
	}

	c.cache.Add(key, result)
	c.logger.Debug().Str("query", query).Bool("found", result.found).Msg("USDA lookup")
	return result.match, result.found, nil
}
