package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// document is the on-disk shape: month -> {category: score}, both in file order.
type document = orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, int]]

// Decode reads a JSON object of month -> {category: score} preserving key
// order. A repeated key keeps its first position and its last value.
func Decode(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	doc := orderedmap.New[string, *orderedmap.OrderedMap[string, int]]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return fromDocument(doc), nil
}

func fromDocument(doc *document) *Dataset {
	b := NewBuilder()
	for month := doc.Oldest(); month != nil; month = month.Next() {
		b.Replace(month.Key)
		if month.Value == nil {
			continue
		}
		for sc := month.Value.Oldest(); sc != nil; sc = sc.Next() {
			b.Add(month.Key, sc.Key, sc.Value)
		}
	}
	return b.Build()
}
