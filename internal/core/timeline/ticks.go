package timeline

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/penwyp/agelens/internal/core/calendar"
)

// YearTicks returns a tick at start, at every January 1st whose year is a
// multiple of stepYears and at end. Ticks are unique by instant and sorted.
func YearTicks(start, end time.Time, stepYears int) []Tick {
	if stepYears <= 0 || !end.After(start) {
		return nil
	}

	var ticks []Tick
	seen := make(map[int64]bool)
	push := func(t time.Time, key string) {
		v := t.UnixMilli()
		if v < start.UnixMilli() || v > end.UnixMilli() || seen[v] {
			return
		}
		seen[v] = true
		ticks = append(ticks, Tick{
			ID:      fmt.Sprintf("%s-%d", key, v),
			Instant: v,
			Label:   t.Format("2006"),
		})
	}

	push(start, "start")

	firstYear := int(math.Ceil(float64(start.Year())/float64(stepYears))) * stepYears
	cursor := time.Date(firstYear, time.January, 1, 0, 0, 0, 0, start.Location())
	if cursor.Before(start) {
		cursor = calendar.AddYears(cursor, stepYears)
	}
	for !cursor.After(end) {
		push(cursor, "tick")
		cursor = calendar.AddYears(cursor, stepYears)
	}

	push(end, "end")

	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i].Instant < ticks[j].Instant
	})
	return ticks
}
