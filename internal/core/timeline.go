package core

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseDate accepts full calendar dates, optionally with a time component.
// Partial dates such as "2025-03" do not parse.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FlightTitles returns display titles by position in the flight list.
func FlightTitles(n int) []string {
	titles := make([]string, n)
	switch n {
	case 0:
	case 1:
		titles[0] = "Flight"
	case 2:
		titles[0], titles[1] = "Outbound", "Return"
	default:
		for i := range titles {
			titles[i] = fmt.Sprintf("Flight %d", i+1)
		}
	}
	return titles
}

// MergeTimeline interleaves flights and local transportation into one
// chronological list. Flight titles follow the original flight order.
func MergeTimeline(flights []Flight, local []LocalTransport) []TimelineItem {
	items := make([]TimelineItem, 0, len(flights)+len(local))
	titles := FlightTitles(len(flights))
	for i := range flights {
		f := flights[i]
		items = append(items, TimelineItem{
			Kind:   TimelineFlight,
			Title:  titles[i],
			Date:   f.Date,
			Time:   f.Time,
			Flight: &f,
		})
	}
	for i := range local {
		l := local[i]
		title := l.Description
		if title == "" {
			title = l.Mode
		}
		items = append(items, TimelineItem{
			Kind:  TimelineLocal,
			Title: title,
			Date:  l.Date,
			Time:  l.Time,
			Local: &l,
		})
	}

	return orderTimeline(items)
}

// orderTimeline sorts items with a parseable date by date, sorts the rest by
// the fallback rule, then merges the two runs with compareTimeline. Dated
// items keep their date order whatever undated items sit between them.
func orderTimeline(items []TimelineItem) []TimelineItem {
	var dated, undated []TimelineItem
	for _, it := range items {
		if _, ok := parseDate(it.Date); ok {
			dated = append(dated, it)
		} else {
			undated = append(undated, it)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return compareTimeline(dated[i], dated[j]) < 0
	})
	sort.SliceStable(undated, func(i, j int) bool {
		return compareTimeline(undated[i], undated[j]) < 0
	})

	out := items[:0]
	i, j := 0, 0
	for i < len(dated) && j < len(undated) {
		if compareTimeline(undated[j], dated[i]) < 0 {
			out = append(out, undated[j])
			j++
		} else {
			out = append(out, dated[i])
			i++
		}
	}
	out = append(out, dated[i:]...)
	return append(out, undated[j:]...)
}

// compareTimeline orders two items by date when both dates parse. Otherwise
// flights go before local transportation, and items of the same kind compare
// their raw time strings. Equal dates fall through to the time strings.
func compareTimeline(a, b TimelineItem) int {
	da, okA := parseDate(a.Date)
	db, okB := parseDate(b.Date)
	if okA && okB {
		if c := da.Compare(db); c != 0 {
			return c
		}
		return strings.Compare(a.Time, b.Time)
	}
	if a.Kind != b.Kind {
		if a.Kind == TimelineFlight {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Time, b.Time)
}
