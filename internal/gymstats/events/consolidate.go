package events

import (
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/trend"
	"github.com/2beens/gymcoach/pkg"
)

// ConsolidateDaily keeps one sample per calendar day in loc (the latest reported one),
// dates normalized to the start of that day, sorted ascending.
func ConsolidateDaily(samples []trend.Sample, loc *time.Location) []trend.Sample {
	if loc == nil {
		loc = time.UTC
	}

	latest := make(map[time.Time]trend.Sample, len(samples))
	for _, s := range samples {
		day := pkg.StartOfDay(s.Date, loc)
		prev, ok := latest[day]
		// on equal timestamps the later one in input order wins
		if !ok || !s.Date.Before(prev.Date) {
			latest[day] = s
		}
	}

	consolidated := make([]trend.Sample, 0, len(latest))
	for day, s := range latest {
		consolidated = append(consolidated, trend.Sample{
			Date:  day,
			Value: s.Value,
		})
	}
	sort.Slice(consolidated, func(i, j int) bool {
		return consolidated[i].Date.Before(consolidated[j].Date)
	})

	return consolidated
}
