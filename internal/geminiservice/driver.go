package geminiservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const (
	maxAttempts         = 3
	maxTransportRetries = 2
	samplingTopP        = 0.1
	maxOutputTokens     = 2048
)

// Driver asks a ChatCompleter for the dishes of one meal. It owns the
// process-wide response cache and rate limiter.
type Driver struct {
	client      ChatCompleter
	cache       *lru.Cache[string, []models.DishDraft]
	limiter     *Limiter
	logger      zerolog.Logger
	backoff     func(ctx context.Context, retry int) error
	callTimeout time.Duration
}

// DriverOption customises a Driver.
type DriverOption func(*Driver)

// WithLimiter sets the rate limiter. Without one calls are unlimited.
func WithLimiter(l *Limiter) DriverOption {
	return func(d *Driver) { d.limiter = l }
}

func WithLogger(l zerolog.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// WithBackoff replaces the exponential back-off between transport retries.
func WithBackoff(fn func(ctx context.Context, retry int) error) DriverOption {
	return func(d *Driver) { d.backoff = fn }
}

func WithCallTimeout(t time.Duration) DriverOption {
	return func(d *Driver) { d.callTimeout = t }
}

// NewDriver returns a Driver around client. A nil client disables the model:
// only cached answers are served. cacheSize <= 0 disables the cache.
func NewDriver(client ChatCompleter, cacheSize int, opts ...DriverOption) (*Driver, error) {
	d := &Driver{
		client:      client,
		logger:      zerolog.Nop(),
		backoff:     exponentialBackoff,
		callTimeout: requestTimeout,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, []models.DishDraft](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM cache: %w", err)
		}
		d.cache = cache
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger.Debug().RawJSON("schema", []byte(schemaJSON())).Msg("LLM driver ready")
	return d, nil
}

// Enabled reports whether a model is configured.
func (d *Driver) Enabled() bool {
	return d != nil && d.client != nil
}

// FlushCache drops every memoized answer.
func (d *Driver) FlushCache() {
	if d != nil && d.cache != nil {
		d.cache.Purge()
	}
}

// SuggestMeal returns validated drafts for req, or an error whose Kind names
// the failure. It makes at most three calls: two transport retries and one
// repair retry after a schema violation.
func (d *Driver) SuggestMeal(ctx context.Context, req MealRequest) ([]models.DishDraft, error) {
	key := CacheKey(req)
	if d.cache != nil {
		if cached, ok := d.cache.Get(key); ok {
			d.logger.Debug().Str("slot", string(req.Slot)).Msg("LLM cache hit")
			return cloneDrafts(cached), nil
		}
	}
	if d.client == nil {
		return nil, ErrCacheMissDisabled
	}

	mealPrompt := BuildMealPrompt(req)
	userPrompt := mealPrompt
	transportRetries := 0
	repaired := false
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if !d.limiter.Allow() {
			d.logger.Warn().Str("slot", string(req.Slot)).Msg("LLM rate limit reached")
			return nil, ErrRateLimited
		}

		d.logger.Info().Str("slot", string(req.Slot)).Int("attempt", attempt).Msg("Sending prompt to LLM...")
		text, err := d.call(ctx, userPrompt)
		if err != nil {
			lastErr = err
			if errors.Is(err, ErrAuth) || ctx.Err() != nil {
				return nil, err
			}
			if transportRetries >= maxTransportRetries {
				break
			}
			d.logger.Warn().Err(err).Int("retry", transportRetries+1).Msg("LLM call failed, backing off")
			if berr := d.backoff(ctx, transportRetries); berr != nil {
				return nil, berr
			}
			transportRetries++
			continue
		}

		drafts, verr := ValidDrafts(ParseDishes(text, req.Target))
		if verr == nil {
			drafts, verr = dropAllergens(drafts, req.Allergies)
		}
		if verr == nil {
			if d.cache != nil {
				d.cache.Add(key, cloneDrafts(drafts))
			}
			d.logger.Info().Str("slot", string(req.Slot)).Int("dishes", len(drafts)).Msg("LLM suggestion parsed")
			return drafts, nil
		}

		lastErr = fmt.Errorf("%w: %w", ErrSchemaViolation, verr)
		if repaired {
			break
		}
		d.logger.Warn().Err(verr).Msg("LLM output invalid, sending repair prompt")
		repaired = true
		userPrompt = mealPrompt + "\n\n" + BuildRepairPrompt(text, verr)
	}
	return nil, lastErr
}

func (d *Driver) call(ctx context.Context, user string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()
	return d.client.Complete(callCtx, CompletionRequest{
		System:      SystemPrompt,
		User:        user,
		Temperature: 0,
		TopP:        samplingTopP,
		MaxTokens:   maxOutputTokens,
		JSONMode:    true,
		Schema:      DishArraySchema,
	})
}

// CacheKey derives the memoization key from slot, rounded targets and the
// normalized preference, allergy and cuisine sets. Avoid lists are not part
// of the key; callers filter used names themselves.
func CacheKey(req MealRequest) string {
	prefs := append(normalizedSet(req.Preferences), normalizedSet(req.DietPrefs)...)
	slices.Sort(prefs)
	return fmt.Sprintf("%s|%.0f|%.0f|%.0f|%.0f|%s|%s|%s",
		req.Slot,
		req.Target.Calories, req.Target.Protein, req.Target.Fat, req.Target.Carbs,
		strings.Join(slices.Compact(prefs), ","),
		strings.Join(normalizedSet(req.Allergies), ","),
		nutrition.Normalize(req.Cuisine),
	)
}

func normalizedSet(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if n := nutrition.Normalize(x); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// dropAllergens removes dishes whose name or ingredients mention an allergen.
func dropAllergens(drafts []models.DishDraft, allergies []string) ([]models.DishDraft, error) {
	allergens := normalizedSet(allergies)
	if len(allergens) == 0 {
		return drafts, nil
	}
	kept := drafts[:0]
	for _, d := range drafts {
		if !mentionsAny(d, allergens) {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("every dish contains a forbidden allergen (%s)", strings.Join(allergens, ", "))
	}
	return kept, nil
}

func mentionsAny(d models.DishDraft, allergens []string) bool {
	texts := []string{nutrition.Normalize(d.Name)}
	for _, ing := range d.Ingredients {
		texts = append(texts, nutrition.Normalize(ing.Name))
	}
	for _, a := range allergens {
		for _, t := range texts {
			if nutrition.ContainsWord(t, a) {
				return true
			}
		}
	}
	return false
}

func cloneDrafts(in []models.DishDraft) []models.DishDraft {
	out := make([]models.DishDraft, len(in))
	for i, d := range in {
		d.Ingredients = slices.Clone(d.Ingredients)
		d.Preparation = slices.Clone(d.Preparation)
		d.HealthBenefits = slices.Clone(d.HealthBenefits)
		d.Notes = slices.Clone(d.Notes)
		out[i] = d
	}
	return out
}

func exponentialBackoff(ctx context.Context, retry int) error {
	t := time.NewTimer(time.Second << retry)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
