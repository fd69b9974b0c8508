package geminiservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"NutriViet_V1.0/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	text string
	err  error
}

// fakeCompleter replays canned replies; the last one repeats.
type fakeCompleter struct {
	mu       sync.Mutex
	replies  []reply
	requests []CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r := f.replies[min(len(f.requests), len(f.replies))-1]
	return r.text, r.err
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

const phoReply = `[{"name": "Phở bò", "nutrition": {"calories": 450, "protein": 25, "fat": 12, "carbs": 60}}]`

var lunchRequest = MealRequest{
	Slot:   models.SlotLunch,
	Target: models.Macros{Calories: 800, Protein: 48, Fat: 26, Carbs: 100},
}

func noBackoff(retries *[]int) DriverOption {
	return WithBackoff(func(_ context.Context, retry int) error {
		if retries != nil {
			*retries = append(*retries, retry)
		}
		return nil
	})
}

func newTestDriver(t *testing.T, fc ChatCompleter, opts ...DriverOption) *Driver {
	t.Helper()
	d, err := NewDriver(fc, 16, append([]DriverOption{noBackoff(nil)}, opts...)...)
	require.NoError(t, err)
	return d
}

func TestSuggestMeal_Success(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{text: phoReply}}}
	d := newTestDriver(t, fc)

	drafts, err := d.SuggestMeal(context.Background(), lunchRequest)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Phở bò", drafts[0].Name)

	req := fc.requests[0]
	assert.Equal(t, SystemPrompt, req.System)
	assert.Equal(t, float32(0), req.Temperature)
	assert.True(t, req.JSONMode)
	assert.Same(t, DishArraySchema, req.Schema)
	assert.Contains(t, req.User, "Bữa trưa")
}

func TestSuggestMeal_CacheAndFlush(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{text: phoReply}}}
	d := newTestDriver(t, fc)
	ctx := context.Background()

	first, err := d.SuggestMeal(ctx, lunchRequest)
	require.NoError(t, err)
	first[0].Name = "changed by caller"

	second, err := d.SuggestMeal(ctx, lunchRequest)
	require.NoError(t, err)
	assert.Equal(t, 1, fc.calls())
	assert.Equal(t, "Phở bò", second[0].Name)

	d.FlushCache()
	_, err = d.SuggestMeal(ctx, lunchRequest)
	require.NoError(t, err)
	assert.Equal(t, 2, fc.calls())
}

func TestSuggestMeal_TransportRetries(t *testing.T) {
	transient := fmt.Errorf("%w: connection reset", ErrTransport)

	t.Run("recovers on third attempt", func(t *testing.T) {
		fc := &fakeCompleter{replies: []reply{{err: transient}, {err: transient}, {text: phoReply}}}
		var retries []int
		d, err := NewDriver(fc, 16, noBackoff(&retries))
		require.NoError(t, err)

		drafts, err := d.SuggestMeal(context.Background(), lunchRequest)
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
		assert.Equal(t, 3, fc.calls())
		assert.Equal(t, []int{0, 1}, retries)
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		fc := &fakeCompleter{replies: []reply{{err: transient}}}
		d := newTestDriver(t, fc)

		_, err := d.SuggestMeal(context.Background(), lunchRequest)
		require.ErrorIs(t, err, ErrTransport)
		assert.Equal(t, "transport-error", Kind(err))
		assert.Equal(t, 3, fc.calls())
	})
}

func TestSuggestMeal_AuthErrorIsNotRetried(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{err: statusError("gemini", 401, "bad key")}}}
	d := newTestDriver(t, fc)

	_, err := d.SuggestMeal(context.Background(), lunchRequest)
	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, "auth-error", Kind(err))
	assert.Equal(t, 1, fc.calls())
}

func TestSuggestMeal_RepairRetry(t *testing.T) {
	t.Run("repair prompt fixes the answer", func(t *testing.T) {
		fc := &fakeCompleter{replies: []reply{{text: "Tôi đề xuất phở bò."}, {text: phoReply}}}
		d := newTestDriver(t, fc)

		drafts, err := d.SuggestMeal(context.Background(), lunchRequest)
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
		require.Equal(t, 2, fc.calls())
		assert.Contains(t, fc.requests[1].User, "Validator error")
		assert.Contains(t, fc.requests[1].User, "Tôi đề xuất phở bò.")
	})

	t.Run("only one repair attempt", func(t *testing.T) {
		fc := &fakeCompleter{replies: []reply{{text: "not json"}}}
		d := newTestDriver(t, fc)

		_, err := d.SuggestMeal(context.Background(), lunchRequest)
		require.ErrorIs(t, err, ErrSchemaViolation)
		assert.Equal(t, "schema-violation", Kind(err))
		assert.Equal(t, 2, fc.calls())
	})
}

func TestSuggestMeal_AllergensTriggerRepair(t *testing.T) {
	shrimp := `[{"name": "Gỏi cuốn tôm", "ingredients": [{"name": "Tôm", "amount": "80g"}], "nutrition": {"calories": 250, "protein": 15, "fat": 5, "carbs": 35}}]`
	fc := &fakeCompleter{replies: []reply{{text: shrimp}, {text: phoReply}}}
	d := newTestDriver(t, fc)

	req := lunchRequest
	req.Allergies = []string{"Tôm"}
	drafts, err := d.SuggestMeal(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Phở bò", drafts[0].Name)
	assert.Equal(t, 2, fc.calls())
}

func TestSuggestMeal_DisabledServesCacheOnly(t *testing.T) {
	d, err := NewDriver(nil, 16)
	require.NoError(t, err)
	assert.False(t, d.Enabled())

	_, err = d.SuggestMeal(context.Background(), lunchRequest)
	require.ErrorIs(t, err, ErrCacheMissDisabled)
	assert.Equal(t, "cache-miss-and-disabled", Kind(err))
}

func TestSuggestMeal_RateLimited(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{text: phoReply}}}
	d := newTestDriver(t, fc, WithLimiter(NewLimiter(1, 0)))
	ctx := context.Background()

	_, err := d.SuggestMeal(ctx, lunchRequest)
	require.NoError(t, err)

	other := lunchRequest
	other.Slot = models.SlotDinner
	_, err = d.SuggestMeal(ctx, other)
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, "rate-limited", Kind(err))
	assert.Equal(t, 1, fc.calls())
}

func TestSuggestMeal_CanceledContext(t *testing.T) {
	fc := &fakeCompleter{replies: []reply{{text: phoReply}}}
	d := newTestDriver(t, fc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.SuggestMeal(ctx, lunchRequest)
	require.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "timeout", Kind(err))
	assert.Equal(t, 1, fc.calls())
}

func TestCacheKey_NormalizesSets(t *testing.T) {
	a := MealRequest{
		Slot:        models.SlotBreakfast,
		Target:      models.Macros{Calories: 500.2, Protein: 30, Fat: 16, Carbs: 62},
		Preferences: []string{"Cay", "ít dầu"},
		Allergies:   []string{"Tôm", "đậu phộng"},
		Cuisine:     "Miền Bắc",
	}
	b := MealRequest{
		Slot:        models.SlotBreakfast,
		Target:      models.Macros{Calories: 499.8, Protein: 30, Fat: 16, Carbs: 62},
		Preferences: []string{"ít dầu", "cay", "cay"},
		Allergies:   []string{"đậu phộng", "tôm"},
		Cuisine:     "miền bắc",
		Avoid:       []string{"Phở bò"},
	}
	assert.Equal(t, CacheKey(a), CacheKey(b))

	b.Slot = models.SlotLunch
	assert.NotEqual(t, CacheKey(a), CacheKey(b))
}

func TestLimiter(t *testing.T) {
	t.Run("nil and disabled limiters allow everything", func(t *testing.T) {
		var nilLimiter *Limiter
		assert.True(t, nilLimiter.Allow())

		l := NewLimiter(0, 0)
		for i := 0; i < 100; i++ {
			require.True(t, l.Allow())
		}
	})

	t.Run("minute and day windows", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
		l := NewLimiter(1, 2)
		l.now = func() time.Time { return now }

		assert.True(t, l.Allow())
		assert.False(t, l.Allow(), "minute window exhausted")

		now = now.Add(time.Minute)
		assert.True(t, l.Allow())

		now = now.Add(time.Minute)
		assert.False(t, l.Allow(), "day window exhausted")
	})
}
