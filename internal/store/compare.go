package store

import "fmt"

// Comparison holds the deltas for one record present in both runs.
type Comparison struct {
	Key        string
	MedianDiff float64 // Percentage change
	AllocDiff  float64 // Percentage change
	Prev       Record
	Curr       Record
}

// Compare matches records across two runs by params+candidate key.
// Rows absent from either run, and rows with absent statistics, are
// skipped: a delta against missing data is meaningless.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[string]Record)
	for _, r := range prev.Records {
		prevMap[r.Key()] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Records {
		p, ok := prevMap[c.Key()]
		if !ok || p.StatsAbsent || c.StatsAbsent {
			continue
		}

		comp := Comparison{
			Key:  c.Key(),
			Prev: p,
			Curr: c,
		}
		if p.Median > 0 {
			comp.MedianDiff = float64(c.Median-p.Median) / float64(p.Median) * 100
		}
		if p.AllocBytes > 0 {
			comp.AllocDiff = (float64(c.AllocBytes) - float64(p.AllocBytes)) / float64(p.AllocBytes) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% median", c.Key, c.MedianDiff)
}
