package nutrition

import (
	"testing"

	"NutriViet_V1.0/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text       string
		ingredient string
		want       float64
	}{
		{"100g", "thịt bò", 100},
		{"2 quả", "trứng", 120},
		{"1 ổ", "bánh mì", 150},
		{"1 tbsp", "dầu ăn", 15},
		{"1 muỗng canh", "nước mắm", 15},
		{"1 muỗng cà phê", "đường", 5},
		{"1 bát", "cơm", 200},
		{"1 tô", "phở", 400},
		{"0.5kg", "thịt heo", 500},
		{"1,5 l", "nước dùng", 1500},
		{"250 ml", "sữa tươi", 250},
		{"1/2 quả", "chuối", 50},
		{"2 lát", "bánh mì", 60},
		{"2 lạng", "thịt gà", 200},
		{"150", "cá basa", 150},
		{"3", "khoai lang", 300},
		{"2", "trứng gà", 120},
		{"vừa đủ", "muối", 5},
		{"to taste", "pepper", 5},
		{"", "rau muống", 100},
		{"3 tép", "tỏi", 15},
		{"0.1 mg", "muối", 1},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.ingredient, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.text, tt.ingredient), 0.001)
		})
	}
}

func TestParseAmountAlwaysPositive(t *testing.T) {
	for _, s := range []string{"0g", "0", "abc", "-", "0 quả"} {
		assert.Greater(t, ParseAmount(s, "x"), 0.0, s)
	}
}

func TestLookupIngredient(t *testing.T) {
	tbl := NewTable()

	t.Run("exact row scaled to grams", func(t *testing.T) {
		hit, ok := tbl.LookupIngredient("Thịt Bò", 200)
		require.True(t, ok)
		assert.False(t, hit.Provisional)
		assert.InDelta(t, 374, hit.Macros.Calories, 0.001)
		assert.InDelta(t, 52, hit.Macros.Protein, 0.001)
	})

	t.Run("keyword bucket is provisional", func(t *testing.T) {
		hit, ok := tbl.LookupIngredient("thịt dê", 100)
		require.True(t, ok)
		assert.True(t, hit.Provisional)
		assert.Equal(t, BucketMeat, hit.Bucket)
		assert.InDelta(t, 200, hit.Macros.Calories, 0.001)
	})

	t.Run("seafood wins over meat", func(t *testing.T) {
		assert.Equal(t, BucketSeafood, Classify("chả cá"))
	})

	t.Run("diacritics matter", func(t *testing.T) {
		assert.Equal(t, BucketSeafood, Classify("cá"))
		assert.Equal(t, BucketVegetable, Classify("cà tím"))
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		for _, name := range []string{"quinoa", "gia vị tổng hợp", "bột năng"} {
			hit, ok := tbl.LookupIngredient(name, 50)
			require.True(t, ok, name)
			assert.True(t, hit.Provisional, name)
			assert.Equal(t, BucketOther, hit.Bucket, name)
			assert.Equal(t, 50.0, hit.Macros.Calories, name)
		}
	})

	t.Run("non-positive grams", func(t *testing.T) {
		_, ok := tbl.LookupIngredient("thịt bò", 0)
		assert.False(t, ok)
	})
}

func TestLookupDish(t *testing.T) {
	tbl := NewTable()

	m, ok := tbl.LookupDish("Phở bò")
	require.True(t, ok)
	assert.Equal(t, 450.0, m.Calories)

	m, ok = tbl.LookupDish("phở bò tái chín")
	require.True(t, ok)
	assert.Equal(t, 450.0, m.Calories)

	m, ok = tbl.LookupDish("Bánh mì chay đặc biệt")
	require.True(t, ok)
	assert.Equal(t, 350.0, m.Calories, "longest contained key wins")

	_, ok = tbl.LookupDish("phở")
	assert.True(t, ok)

	_, ok = tbl.LookupDish("spaghetti carbonara")
	assert.False(t, ok)
}

func TestSimilarDish(t *testing.T) {
	tbl := NewTable()

	name, m, ok := tbl.SimilarDish("Cơm chiên hải sản")
	require.True(t, ok)
	assert.Contains(t, name, "cơm")
	assert.Greater(t, m.Calories, 0.0)

	_, _, ok = tbl.SimilarDish("pizza margherita")
	assert.False(t, ok)

	_, _, ok = tbl.SimilarDish("món với")
	assert.False(t, ok, "stop words alone never match")
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.46, Round(0.456))
	assert.Equal(t, 3.1, Round(3.14159))
	assert.Equal(t, 124.0, Round(123.6))
	assert.Equal(t, -2.5, Round(-2.46))

	r := RoundMacros(models.Macros{Calories: 412.4, Protein: 23.56, Fat: 8.04, Carbs: 0.333})
	assert.Equal(t, models.Macros{Calories: 412, Protein: 24, Fat: 8, Carbs: 0.33}, r)
}

func TestVerify(t *testing.T) {
	t.Run("plausible dish", func(t *testing.T) {
		v := Verify(models.Macros{Calories: 450, Protein: 25, Fat: 12, Carbs: 60}, SourceDishTable)
		assert.True(t, v.Verified)
		assert.Empty(t, v.Warnings)
		assert.Equal(t, 0.9, v.Confidence)
		assert.Equal(t, SourceDishTable, v.Source)
	})

	t.Run("too few calories", func(t *testing.T) {
		v := Verify(models.Macros{Calories: 30, Protein: 1, Fat: 1, Carbs: 5}, SourceDishTable)
		assert.False(t, v.Verified)
		require.Len(t, v.Warnings, 1)
		assert.Contains(t, v.Warnings[0], "too low")
		assert.Equal(t, 0.7, v.Confidence)
	})

	t.Run("too many calories", func(t *testing.T) {
		v := Verify(models.Macros{Calories: 2500, Protein: 100, Fat: 100, Carbs: 300}, SourceLLM)
		assert.False(t, v.Verified)
		assert.Contains(t, v.Warnings[0], "too high")
	})

	t.Run("macros do not add up", func(t *testing.T) {
		v := Verify(models.Macros{Calories: 500}, SourceLLM)
		require.Len(t, v.Warnings, 1)
		assert.Contains(t, v.Warnings[0], "mismatch")
		assert.Equal(t, 0.5, v.Confidence)
	})

	t.Run("negative fields and clamped confidence", func(t *testing.T) {
		v := Verify(models.Macros{Calories: -10, Protein: -1, Fat: -1, Carbs: -1}, SourceEstimated)
		assert.False(t, v.Verified)
		assert.GreaterOrEqual(t, len(v.Warnings), 4)
		assert.Equal(t, 0.0, v.Confidence)
	})

	t.Run("input untouched", func(t *testing.T) {
		in := models.Macros{Calories: 10, Protein: -3}
		cp := in
		Verify(in, SourceLLM)
		assert.Equal(t, cp, in)
	})
}

func TestTargetFromProfile(t *testing.T) {
	t.Run("explicit target wins", func(t *testing.T) {
		target := &models.Macros{Calories: 1800, Protein: 90, Fat: 60, Carbs: 220}
		got, ok := TargetFromProfile(&models.UserProfile{TargetMacros: target, WeightKg: 70, HeightCm: 170, Age: 30})
		require.True(t, ok)
		assert.Equal(t, *target, got)
	})

	t.Run("mifflin st jeor", func(t *testing.T) {
		got, ok := TargetFromProfile(&models.UserProfile{
			Gender: "male", WeightKg: 70, HeightCm: 175, Age: 30,
			ActivityLevel: "moderate", Goal: "maintain",
		})
		require.True(t, ok)
		assert.Equal(t, 2556.0, got.Calories)
		assert.Equal(t, 160.0, got.Protein)
		assert.Equal(t, 71.0, got.Fat)
		assert.Equal(t, 320.0, got.Carbs)
	})

	t.Run("floor", func(t *testing.T) {
		got, ok := TargetFromProfile(&models.UserProfile{
			Gender: "female", WeightKg: 50, HeightCm: 155, Age: 60,
			ActivityLevel: "sedentary", Goal: "lose",
		})
		require.True(t, ok)
		assert.Equal(t, 1200.0, got.Calories)
	})

	t.Run("missing metrics", func(t *testing.T) {
		_, ok := TargetFromProfile(&models.UserProfile{Goal: "gain"})
		assert.False(t, ok)
		_, ok = TargetFromProfile(nil)
		assert.False(t, ok)
	})
}
