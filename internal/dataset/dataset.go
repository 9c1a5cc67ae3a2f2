package dataset

import (
	"errors"
	"fmt"
)

// ErrScoreOutOfRange is returned by Validate when a score lies outside [0, measure].
var ErrScoreOutOfRange = errors.New("score out of range")

// Score is a single category rating.
type Score struct {
	Category string
	Value    int
}

// Scores is an ordered set of category ratings for one month.
// The order is the axis order of every chart built from it.
type Scores []Score

// Get returns the score for category.
func (s Scores) Get(category string) (int, bool) {
	for _, sc := range s {
		if sc.Category == category {
			return sc.Value, true
		}
	}
	return 0, false
}

// Categories returns the category names in order.
func (s Scores) Categories() []string {
	out := make([]string, len(s))
	for i, sc := range s {
		out[i] = sc.Category
	}
	return out
}

// Values returns the scores in category order.
func (s Scores) Values() []int {
	out := make([]int, len(s))
	for i, sc := range s {
		out[i] = sc.Value
	}
	return out
}

// set assigns value to category, keeping the position of an existing entry.
func (s Scores) set(category string, value int) Scores {
	for i := range s {
		if s[i].Category == category {
			s[i].Value = value
			return s
		}
	}
	return append(s, Score{Category: category, Value: value})
}

// Month is a named rating period.
type Month struct {
	Name   string
	Scores Scores
}

// Dataset is an ordered mapping of month name to Scores.
// A Dataset is not modified after it has been built.
type Dataset struct {
	months []Month
	index  map[string]int
}

// Empty returns a dataset with no months.
func Empty() *Dataset {
	return &Dataset{index: map[string]int{}}
}

// New builds a dataset from months. A repeated month name replaces the
// earlier value but keeps its position.
func New(months ...Month) *Dataset {
	b := NewBuilder()
	for _, m := range months {
		b.Replace(m.Name)
		for _, sc := range m.Scores {
			b.Add(m.Name, sc.Category, sc.Value)
		}
	}
	return b.Build()
}

// Len returns the number of months.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.months)
}

// IsEmpty reports whether the dataset has no months.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Months returns the month names in source order.
func (d *Dataset) Months() []string {
	if d == nil {
		return []string{}
	}
	out := make([]string, len(d.months))
	for i, m := range d.months {
		out[i] = m.Name
	}
	return out
}

// Has reports whether name is a month of the dataset.
func (d *Dataset) Has(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.index[name]
	return ok
}

// Month returns a copy of the scores recorded for name.
func (d *Dataset) Month(name string) (Scores, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return append(Scores(nil), d.months[i].Scores...), true
}

// Select returns the named months in the requested order, and the names
// that are not part of the dataset. Duplicated names are returned twice.
func (d *Dataset) Select(names []string) ([]Month, []string) {
	selected := make([]Month, 0, len(names))
	var missing []string
	for _, name := range names {
		scores, ok := d.Month(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, Month{Name: name, Scores: scores})
	}
	return selected, missing
}

// All returns a copy of every month in source order.
func (d *Dataset) All() []Month {
	if d == nil {
		return nil
	}
	out := make([]Month, len(d.months))
	for i, m := range d.months {
		out[i] = Month{Name: m.Name, Scores: append(Scores(nil), m.Scores...)}
	}
	return out
}

// Validate checks every score against [0, measure].
func (d *Dataset) Validate(measure int) error {
	if d == nil {
		return nil
	}
	for _, m := range d.months {
		for _, sc := range m.Scores {
			if sc.Value < 0 || sc.Value > measure {
				return fmt.Errorf("%w: %s/%s = %d, allowed [0, %d]",
					ErrScoreOutOfRange, m.Name, sc.Category, sc.Value, measure)
			}
		}
	}
	return nil
}

// Builder accumulates months and scores in arrival order.
type Builder struct {
	months []Month
	index  map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: map[string]int{}}
}

// Touch registers month without scores if it is not yet known.
func (b *Builder) Touch(month string) {
	if _, ok := b.index[month]; ok {
		return
	}
	b.index[month] = len(b.months)
	b.months = append(b.months, Month{Name: month, Scores: Scores{}})
}

// Add records a score. Later values for the same month and category win.
func (b *Builder) Add(month, category string, value int) {
	b.Touch(month)
	i := b.index[month]
	b.months[i].Scores = b.months[i].Scores.set(category, value)
}

// Replace drops every score held for month, keeping its position.
func (b *Builder) Replace(month string) {
	b.Touch(month)
	b.months[b.index[month]].Scores = Scores{}
}

// Build returns the Dataset. The builder must not be used afterwards.
func (b *Builder) Build() *Dataset {
	return &Dataset{months: b.months, index: b.index}
}
