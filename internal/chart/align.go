package chart

import (
	"errors"
	"fmt"

	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
)

// ErrCategoryMismatch is returned under strict alignment when a month lacks
// a category of the first month.
var ErrCategoryMismatch = errors.New("category mismatch")

// Align returns the category axis for months under policy.
func Align(policy config.Alignment, months []dataset.Month) ([]string, error) {
	if len(months) == 0 {
		return []string{}, nil
	}

	switch policy {
	case config.AlignFirst:
		return months[0].Scores.Categories(), nil

	case config.AlignStrict:
		categories := months[0].Scores.Categories()
		for _, m := range months[1:] {
			var missing []string
			for _, c := range categories {
				if _, ok := m.Scores.Get(c); !ok {
					missing = append(missing, c)
				}
			}
			if len(missing) > 0 {
				return nil, fmt.Errorf("%w: month %q lacks %v", ErrCategoryMismatch, m.Name, missing)
			}
		}
		return categories, nil

	default:
		var categories []string
		seen := map[string]bool{}
		for _, m := range months {
			for _, sc := range m.Scores {
				if !seen[sc.Category] {
					seen[sc.Category] = true
					categories = append(categories, sc.Category)
				}
			}
		}
		if categories == nil {
			categories = []string{}
		}
		return categories, nil
	}
}

// valuesFor reads scores along categories; missing categories read as 0.
func valuesFor(scores dataset.Scores, categories []string) []int {
	out := make([]int, len(categories))
	for i, c := range categories {
		out[i], _ = scores.Get(c)
	}
	return out
}
