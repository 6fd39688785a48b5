package analysis

import (
	"sort"
	"time"

	"github.com/sjzar/mailstat/internal/model"
)

// MonthStamp floors ts (epoch milliseconds) to the first instant of its
// calendar month. Month boundaries are fixed to UTC so bucket keys do not
// depend on the host timezone.
func MonthStamp(ts int64) int64 {
	t := time.UnixMilli(ts).UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// ActiveMonths buckets event timestamps to calendar months and keeps the
// months whose event count is strictly greater than threshold, ascending
// by bucket stamp. Non-positive timestamps are treated as malformed and
// skipped. An empty result is a valid outcome, not an error.
func ActiveMonths(stamps []int64, threshold int64) []model.MonthCount {
	counts := make(map[int64]int64)
	for _, ts := range stamps {
		if ts <= 0 {
			continue
		}
		counts[MonthStamp(ts)]++
	}

	out := make([]model.MonthCount, 0, len(counts))
	for stamp, count := range counts {
		if count > threshold {
			out = append(out, model.MonthCount{Stamp: stamp, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stamp < out[j].Stamp })
	return out
}
