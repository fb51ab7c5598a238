// Package layout packs overlapping calendar events into side-by-side columns.
package layout

import (
	"sort"

	"plansync/internal/model"
)

// GutterPercent is the horizontal gap between adjacent columns.
const GutterPercent = 1.0

// Block is one positioned event.
type Block struct {
	Event        model.CalendarEvent
	Column       int
	TotalColumns int // shared by every event of the cluster
	LeftPercent  float64
	WidthPercent float64
}

// Compute lays out events. Overlap is half-open: an event ending at 10:00 and
// one starting at 10:00 never collide. Events are grouped into clusters of
// transitively overlapping events; each cluster is packed greedily and every
// member gets the cluster's column count.
func Compute(events []model.CalendarEvent) []Block {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]model.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].End.After(sorted[j].End)
	})

	blocks := make([]Block, 0, len(sorted))
	for _, cluster := range clusters(sorted) {
		blocks = append(blocks, pack(cluster)...)
	}
	return blocks
}

// clusters groups events into connected components of the overlap graph.
func clusters(events []model.CalendarEvent) [][]model.CalendarEvent {
	n := len(events)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if events[i].Overlaps(events[j]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var out [][]model.CalendarEvent
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}

		var members []int
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, cur)
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		sort.Ints(members)
		cluster := make([]model.CalendarEvent, len(members))
		for k, idx := range members {
			cluster[k] = events[idx]
		}
		out = append(out, cluster)
	}
	return out
}

// pack assigns columns inside one cluster.
func pack(cluster []model.CalendarEvent) []Block {
	sort.SliceStable(cluster, func(i, j int) bool {
		if !cluster[i].Start.Equal(cluster[j].Start) {
			return cluster[i].Start.Before(cluster[j].Start)
		}
		return cluster[i].End.Before(cluster[j].End)
	})

	// columnEnds[c] is the end of the last event placed in column c
	var columnEnds []model.CalendarEvent
	columns := make([]int, len(cluster))
	for i, ev := range cluster {
		placed := false
		for c := range columnEnds {
			if !columnEnds[c].End.After(ev.Start) {
				columns[i] = c
				columnEnds[c] = ev
				placed = true
				break
			}
		}
		if !placed {
			columns[i] = len(columnEnds)
			columnEnds = append(columnEnds, ev)
		}
	}

	total := len(columnEnds)
	width := 100.0
	if total > 1 {
		width = (100.0 - float64(total-1)*GutterPercent) / float64(total)
	}

	blocks := make([]Block, len(cluster))
	for i, ev := range cluster {
		left := 0.0
		if total > 1 {
			left = float64(columns[i]) * (width + GutterPercent)
		}
		blocks[i] = Block{
			Event:        ev,
			Column:       columns[i],
			TotalColumns: total,
			LeftPercent:  left,
			WidthPercent: width,
		}
	}
	return blocks
}
