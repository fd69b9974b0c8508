// Package mealplan builds week plans of Vietnamese meals that meet macro
// targets, and replaces single days or meals of an existing plan.
package mealplan

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"NutriViet_V1.0/internal/geminiservice"
	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"NutriViet_V1.0/internal/recipepool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// dayTolerance is the relative calorie gap that triggers one regeneration.
	dayTolerance = 0.10
	// regenSeedOffset moves the recipe draw of a regenerated day.
	regenSeedOffset = 7
	// recentKeep is how many names of a slot stay blocked once the model
	// only suggests dishes that were already served.
	recentKeep = 3
)

// Planner composes the distributor, LLM driver, fallback generator, scaler
// and assembler into the public plan operations.
type Planner struct {
	fallback  FallbackGenerator
	assembler *Assembler
	llm       MealSuggester
	store     PlanStore
	foods     FoodLookup
	enhanced  bool
	logger    zerolog.Logger
	now       func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithSuggester sets the LLM driver. Without one every meal uses the pool.
func WithSuggester(s MealSuggester) Option {
	return func(p *Planner) { p.llm = s }
}

func WithStore(s PlanStore) Option {
	return func(p *Planner) { p.store = s }
}

func WithFoodLookup(f FoodLookup) Option {
	return func(p *Planner) { p.foods = f }
}

func WithLogger(l zerolog.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// WithEnhancedInfo turns on derived preparation times for every request.
func WithEnhancedInfo(on bool) Option {
	return func(p *Planner) { p.enhanced = on }
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// NewPlanner returns a Planner drawing fallback meals from pool and
// resolving nutrition against table.
func NewPlanner(pool recipepool.Pool, table *nutrition.Table, opts ...Option) *Planner {
	p := &Planner{
		fallback: FallbackGenerator{Pool: pool},
		logger:   log.Logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.assembler = NewAssembler(table, p.foods, p.logger)
	return p
}

// NewGenerationContext prepares the state of one run for req.
func (p *Planner) NewGenerationContext(req Request) *GenerationContext {
	gc := &GenerationContext{
		Tracker:     NewDishTracker(),
		Bounds:      DefaultBounds,
		Assembly:    AssemblyOptions{EnhancedInfo: p.enhanced},
		preferences: req.Preferences,
		allergies:   req.Allergies,
		dietPrefs:   req.DietPrefs,
		cuisine:     req.Cuisine,
	}
	if req.UseAI {
		gc.LLM = p.llm
	}
	if prof := req.Profile; prof != nil {
		gc.Assembly.Region = models.ParseRegion(prof.Region)
		gc.Assembly.EnhancedInfo = gc.Assembly.EnhancedInfo || prof.EnhancedInfo
		gc.preferences = mergeLists(gc.preferences, prof.Preferences)
		gc.allergies = mergeLists(gc.allergies, prof.Allergies)
		if gc.cuisine == "" && prof.Region != "" {
			gc.cuisine = prof.Region
		}
	}
	return gc
}

/* =================================================================================
								WEEK
=================================================================================*/

// GenerateWeek builds seven days in WeekDays order. Each day's target is
// perturbed by up to ±5% for variety; a day more than 10% off the requested
// target is regenerated once with the unperturbed target and strict bounds.
// The gap is measured against the requested target, not the perturbed one,
// so no accepted day drifts more than 10% from what the user asked for.
func (p *Planner) GenerateWeek(ctx context.Context, req Request) (*models.WeekPlan, error) {
	target, err := p.dayTarget(req)
	if err != nil {
		return nil, err
	}

	plan := &models.WeekPlan{Days: make([]models.DayPlan, 0, len(models.WeekDays))}
	if capped, ok := CapDayTarget(target); ok {
		p.logger.Warn().
			Float64("requested_kcal", target.Calories).
			Float64("cap_kcal", MaxDailyCalories).
			Msg("Daily target above cap, scaling down")
		plan.Advisories = append(plan.Advisories, fmt.Sprintf("daily target capped at %d kcal (requested %.0f)", MaxDailyCalories, target.Calories))
		target = capped
	}

	gc := p.NewGenerationContext(req)
	gc.Tracker.Reset()

	for i, label := range models.WeekDays {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		perturbed, _ := CapDayTarget(target.Scale(1 + perturbation(i)))

		snap := gc.Tracker.snapshot()
		day, err := p.GenerateDay(ctx, gc, label, i, perturbed)
		if err != nil {
			return nil, err
		}

		if gap := relativeGap(day.Macros.Calories, target.Calories); gap > dayTolerance {
			p.logger.Info().
				Str("day", label).
				Float64("kcal", day.Macros.Calories).
				Float64("target_kcal", target.Calories).
				Msg("Day missed its target, regenerating")
			gc.Tracker.restore(snap)
			gc.Bounds = StrictBounds
			day, err = p.GenerateDay(ctx, gc, label, i+regenSeedOffset, target)
			gc.Bounds = DefaultBounds
			if err != nil {
				return nil, err
			}
			day.Advisories = append(day.Advisories, "regenerated with unperturbed target")
		}

		plan.Days = append(plan.Days, day)
		if req.OnDay != nil {
			req.OnDay(i, day)
		}
	}

	if err := p.persist(ctx, req.UserID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// perturbation is a deterministic factor in [-0.05, 0.05] for day i.
func perturbation(i int) float64 {
	return float64((i*37)%11-5) / 100
}

func relativeGap(got, want float64) float64 {
	if want <= 0 {
		return 0
	}
	return math.Abs(got-want) / want
}

/* =================================================================================
								DAY & MEAL
=================================================================================*/

// GenerateDay distributes target over the three slots and generates the
// meals concurrently. dayIndex seeds the recipe draws.
func (p *Planner) GenerateDay(ctx context.Context, gc *GenerationContext, label string, dayIndex int, target models.Macros) (models.DayPlan, error) {
	targets, err := Distribute(target, p.logger)
	if err != nil {
		return models.DayPlan{}, err
	}

	meals := make([]models.Meal, len(models.MealSlots))
	g, grpCtx := errgroup.WithContext(ctx)
	for i, slot := range models.MealSlots {
		g.Go(func() error {
			meal, err := p.GenerateMeal(grpCtx, gc, slot, targets.For(slot), dayIndex)
			if err != nil {
				return err
			}
			meals[i] = meal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DayPlan{}, err
	}

	day := models.DayPlan{DayLabel: label}
	for i, slot := range models.MealSlots {
		meal := meals[i]
		if len(meal.Dishes) == 0 {
			p.logger.Warn().Str("day", label).Str("slot", string(slot)).Msg("Empty meal, using skeleton")
			meal = p.skeletonMeal(ctx, gc, slot, targets.For(slot))
		}
		day.SetMeal(slot, meal)
	}
	day.Advisories = gc.takeAdvisories()
	return day, nil
}

// GenerateMeal runs one slot through its state machine:
// draft-requested, ai-path or fallback-path, scaling, assembly,
// verification, committed. Only cancellation of ctx is returned as an error.
func (p *Planner) GenerateMeal(ctx context.Context, gc *GenerationContext, slot models.MealSlot, target models.Macros, dayIndex int) (models.Meal, error) {
	logger := p.logger.With().Str("slot", string(slot)).Int("day_index", dayIndex).Logger()
	logger.Debug().Msg("draft-requested")

	var drafts []models.DishDraft
	if gc.LLM != nil {
		logger.Debug().Msg("ai-path")
		suggested, err := gc.LLM.SuggestMeal(ctx, gc.mealRequest(slot, target))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.Meal{}, ctxErr
			}
			kind := geminiservice.Kind(err)
			logger.Warn().Err(err).Str("kind", kind).Msg("LLM unavailable, falling back to recipe pool")
			gc.advise(fmt.Sprintf("llm-unavailable: %s (%s)", kind, slot))
		} else {
			drafts = unusedDrafts(gc.Tracker, slot, suggested)
			if len(drafts) == 0 && len(suggested) > 0 {
				logger.Debug().Int("suggested", len(suggested)).Msg("LLM suggested only used dishes, pruning tracker")
				gc.Tracker.Prune(slot, recentKeep)
				drafts = unusedDrafts(gc.Tracker, slot, suggested)
			}
		}
	}

	if len(drafts) > 0 {
		for i := range drafts {
			drafts[i] = p.assembler.ResolveNutrition(ctx, drafts[i], slot)
		}
		logger.Debug().Msg("scaling")
		var res ScaleResult
		drafts, res = Scale(drafts, target, gc.Bounds)
		if res.Clamped {
			logger.Debug().Float64("factor", res.Factor).Msg("LLM portions clamped")
		}
	} else {
		logger.Debug().Msg("fallback-path")
		drafts = p.fallback.Generate(slot, target, gc.Tracker.Used(slot), dayIndex, gc.Bounds)
	}

	logger.Debug().Msg("assembly")
	meal := models.Meal{Dishes: make([]models.Dish, 0, len(drafts))}
	unverified := 0
	for _, d := range drafts {
		dish := p.assembler.Assemble(ctx, d, slot, gc.Assembly)
		if !dish.Verification.Verified {
			unverified++
		}
		meal.Dishes = append(meal.Dishes, dish)
	}
	logger.Debug().Int("unverified", unverified).Msg("verification")

	macros := make([]models.Macros, len(meal.Dishes))
	for i, dish := range meal.Dishes {
		gc.Tracker.Add(slot, dish.Name)
		macros[i] = dish.Nutrition
	}
	meal.Macros = models.SumMacros(macros...)
	logger.Debug().Int("dishes", len(meal.Dishes)).Float64("kcal", meal.Macros.Calories).Msg("committed")
	return meal, nil
}

// unusedDrafts drops drafts already served in slot or repeated in the list.
func unusedDrafts(t *DishTracker, slot models.MealSlot, drafts []models.DishDraft) []models.DishDraft {
	seen := make(map[string]struct{}, len(drafts))
	out := make([]models.DishDraft, 0, len(drafts))
	for _, d := range drafts {
		key := nutrition.Normalize(d.Name)
		if _, dup := seen[key]; dup || t.IsUsed(slot, d.Name) {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}

func (p *Planner) skeletonMeal(ctx context.Context, gc *GenerationContext, slot models.MealSlot, target models.Macros) models.Meal {
	dish := p.assembler.Assemble(ctx, draftFromRecipe(recipepool.Skeleton(slot, target)), slot, gc.Assembly)
	gc.Tracker.Add(slot, dish.Name)
	return models.Meal{Dishes: []models.Dish{dish}, Macros: models.SumMacros(dish.Nutrition)}
}

/* =================================================================================
								REPLACEMENT
=================================================================================*/

// ReplaceDay regenerates the day labelled label in plan, in place. The
// tracker is reset so any dish of the week may appear again, except the
// dishes of the day being replaced.
func (p *Planner) ReplaceDay(ctx context.Context, plan *models.WeekPlan, label string, req Request) (models.DayPlan, error) {
	if plan == nil {
		return models.DayPlan{}, ErrPlanMissing
	}
	idx := plan.DayIndex(label)
	if idx < 0 {
		return models.DayPlan{}, fmt.Errorf("%w: %q", ErrDayNotInPlan, label)
	}
	target, err := p.dayTarget(req)
	if err != nil {
		return models.DayPlan{}, err
	}

	if p.llm != nil {
		p.llm.FlushCache()
	}
	gc := p.NewGenerationContext(req)
	gc.Tracker.Reset()
	old := plan.Days[idx]
	for _, slot := range models.MealSlots {
		for _, dish := range old.Meal(slot).Dishes {
			gc.Tracker.Add(slot, dish.Name)
		}
	}

	day, err := p.GenerateDay(ctx, gc, label, idx, target)
	if err != nil {
		return models.DayPlan{}, err
	}
	plan.Days[idx] = day

	if err := p.persist(ctx, req.UserID, plan); err != nil {
		return models.DayPlan{}, err
	}
	return day, nil
}

// ReplaceMeal regenerates one slot of one day. req.Target is a day target;
// it is distributed and the slot's share is used.
func (p *Planner) ReplaceMeal(ctx context.Context, plan *models.WeekPlan, label string, slot models.MealSlot, req Request) (models.DayPlan, error) {
	if plan == nil {
		return models.DayPlan{}, ErrPlanMissing
	}
	if !slices.Contains(models.MealSlots, slot) {
		return models.DayPlan{}, fmt.Errorf("%w: unknown meal slot %q", ErrInvalidRequest, slot)
	}
	idx := plan.DayIndex(label)
	if idx < 0 {
		return models.DayPlan{}, fmt.Errorf("%w: %q", ErrDayNotInPlan, label)
	}
	target, err := p.dayTarget(req)
	if err != nil {
		return models.DayPlan{}, err
	}
	targets, err := Distribute(target, p.logger)
	if err != nil {
		return models.DayPlan{}, err
	}

	if p.llm != nil {
		p.llm.FlushCache()
	}
	gc := p.NewGenerationContext(req)
	for _, d := range plan.Days {
		for _, dish := range d.Meal(slot).Dishes {
			gc.Tracker.Add(slot, dish.Name)
		}
	}

	meal, err := p.GenerateMeal(ctx, gc, slot, targets.For(slot), idx)
	if err != nil {
		return models.DayPlan{}, err
	}
	if len(meal.Dishes) == 0 {
		meal = p.skeletonMeal(ctx, gc, slot, targets.For(slot))
	}

	day := plan.Days[idx]
	day.SetMeal(slot, meal)
	day.Advisories = replaceSlotAdvisories(day.Advisories, slot, gc.takeAdvisories())
	plan.Days[idx] = day

	if err := p.persist(ctx, req.UserID, plan); err != nil {
		return models.DayPlan{}, err
	}
	return day, nil
}

// replaceSlotAdvisories drops the old advisories of slot and appends fresh.
func replaceSlotAdvisories(old []string, slot models.MealSlot, fresh []string) []string {
	suffix := "(" + string(slot) + ")"
	var out []string
	for _, a := range old {
		if !strings.HasSuffix(a, suffix) {
			out = append(out, a)
		}
	}
	return append(out, fresh...)
}

/* =================================================================================
								PERSISTENCE
=================================================================================*/

// LatestPlan returns the user's most recent stored plan.
func (p *Planner) LatestPlan(ctx context.Context, userID string) (*models.WeekPlan, error) {
	if p.store == nil {
		return nil, ErrPlanMissing
	}
	plan, err := p.store.LatestWeekPlan(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading week plan: %w", ErrInternal, err)
	}
	if plan == nil {
		return nil, ErrPlanMissing
	}
	return plan, nil
}

func (p *Planner) persist(ctx context.Context, userID string, plan *models.WeekPlan) error {
	if p.store == nil || userID == "" {
		return nil
	}
	if err := p.store.SaveWeekPlan(ctx, userID, plan, p.now()); err != nil {
		p.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to save week plan")
		return fmt.Errorf("%w: saving week plan: %w", ErrInternal, err)
	}
	return nil
}

/* =================================================================================
								HELPERS
=================================================================================*/

// dayTarget returns the request target, deriving it from the profile when
// the request carries none.
func (p *Planner) dayTarget(req Request) (models.Macros, error) {
	t := req.Target
	if t.IsZero() && req.Profile != nil {
		if derived, ok := nutrition.TargetFromProfile(req.Profile); ok {
			t = derived
		}
	}
	if err := ValidateTarget(t); err != nil {
		return models.Macros{}, err
	}
	return t, nil
}

func mergeLists(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, s := range slices.Concat(a, b) {
		key := nutrition.Normalize(s)
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
