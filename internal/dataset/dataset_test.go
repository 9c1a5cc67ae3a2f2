package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"January": {"Health": 7, "Career": 5, "Relationships": 8},
	"February": {"Health": 8, "Career": 6, "Relationships": 7},
	"March": {"Relationships": 9, "Health": 4}
}`

func TestDecode(t *testing.T) {
	t.Run("keeps month and category order", func(t *testing.T) {
		d, err := Decode(strings.NewReader(sample))
		require.NoError(t, err)

		assert.Equal(t, []string{"January", "February", "March"}, d.Months())
		scores, ok := d.Month("March")
		require.True(t, ok)
		assert.Equal(t, []string{"Relationships", "Health"}, scores.Categories())
		assert.Equal(t, []int{9, 4}, scores.Values())
	})

	t.Run("empty object", func(t *testing.T) {
		d, err := Decode(strings.NewReader(`{}`))
		require.NoError(t, err)
		assert.True(t, d.IsEmpty())
		assert.Equal(t, []string{}, d.Months())
	})

	t.Run("duplicate keys keep first position and last value", func(t *testing.T) {
		d, err := Decode(strings.NewReader(`{"A": {"x": 1, "y": 2, "x": 3}, "B": {"x": 1}, "A": {"z": 4}}`))
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, d.Months())
		a, _ := d.Month("A")
		assert.Equal(t, Scores{{Category: "z", Value: 4}}, a)
	})

	t.Run("null month has no scores", func(t *testing.T) {
		d, err := Decode(strings.NewReader(`{"A": null, "B": {"x": 2}}`))
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, d.Months())
		a, ok := d.Month("A")
		require.True(t, ok)
		assert.Empty(t, a)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		cases := map[string]string{
			"not an object":    `[1, 2]`,
			"fractional score": `{"A": {"x": 1.5}}`,
			"nested object":    `{"A": {"x": {"y": 1}}}`,
			"month not object": `{"A": 3}`,
			"truncated":        `{"A": {"x": 1}`,
			"trailing data":    `{} {}`,
			"empty input":      ``,
			"string score":     `{"A": {"x": "7"}}`,
		}
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Decode(strings.NewReader(input))
				assert.Error(t, err)
			})
		}
	})
}

func TestSelect(t *testing.T) {
	d := New(
		Month{Name: "January", Scores: Scores{{"A", 5}}},
		Month{Name: "February", Scores: Scores{{"A", 6}}},
	)

	t.Run("request order and duplicates", func(t *testing.T) {
		months, missing := d.Select([]string{"February", "January", "February"})
		assert.Empty(t, missing)
		require.Len(t, months, 3)
		assert.Equal(t, "February", months[0].Name)
		assert.Equal(t, "January", months[1].Name)
		assert.Equal(t, "February", months[2].Name)
	})

	t.Run("reports every missing month", func(t *testing.T) {
		_, missing := d.Select([]string{"March", "January", "April"})
		assert.Equal(t, []string{"March", "April"}, missing)
	})
}

func TestMonthReturnsCopy(t *testing.T) {
	d := New(Month{Name: "January", Scores: Scores{{"A", 5}}})

	scores, _ := d.Month("January")
	scores[0].Value = 9

	again, _ := d.Month("January")
	assert.Equal(t, 5, again[0].Value)
}

func TestValidate(t *testing.T) {
	d := New(Month{Name: "January", Scores: Scores{{"A", 5}, {"B", 11}}})

	assert.NoError(t, d.Validate(11))
	err := d.Validate(10)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	assert.Contains(t, err.Error(), "January/B = 11")

	negative := New(Month{Name: "M", Scores: Scores{{"A", -1}}})
	assert.ErrorIs(t, negative.Validate(10), ErrScoreOutOfRange)
}

func TestNilDataset(t *testing.T) {
	var d *Dataset
	assert.Equal(t, 0, d.Len())
	assert.True(t, d.IsEmpty())
	assert.False(t, d.Has("January"))
	assert.Equal(t, []string{}, d.Months())
}
