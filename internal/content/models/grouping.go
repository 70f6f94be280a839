package models

// Grouping partitions a fetched set of events into top-level entries and
// their direct children. Only one level of nesting is recognised:
// grandchildren appear under their own parent, never under the root.
type Grouping struct {
	Main     []Event
	children map[string][]Event
	orphans  []Event
}

// GroupTopLevel groups events without I/O. Input order is kept within Main
// and within each child list. Events whose parent is not in the set are
// orphans: reachable from neither Main nor ChildrenOf.
func GroupTopLevel(events []Event) Grouping {
	present := make(map[string]struct{}, len(events))
	for _, e := range events {
		present[e.ID] = struct{}{}
	}

	g := Grouping{Main: []Event{}, children: make(map[string][]Event)}
	for _, e := range events {
		if e.IsTopLevel() {
			g.Main = append(g.Main, e)
			continue
		}
		if _, ok := present[*e.ParentID]; !ok {
			g.orphans = append(g.orphans, e)
			continue
		}
		g.children[*e.ParentID] = append(g.children[*e.ParentID], e)
	}
	return g
}

// ChildrenOf returns the direct children of id, or an empty slice.
func (g Grouping) ChildrenOf(id string) []Event {
	if kids, ok := g.children[id]; ok {
		return kids
	}
	return []Event{}
}

// Orphans lists events whose parent was not present at grouping time.
func (g Grouping) Orphans() []Event {
	if g.orphans == nil {
		return []Event{}
	}
	return g.orphans
}

// TimelineEntry is a top-level event with its direct children.
type TimelineEntry struct {
	Event
	YearRange string  `json:"year_range"`
	Children  []Event `json:"children"`
}

// Timeline flattens the grouping into display entries in Main order.
func (g Grouping) Timeline() []TimelineEntry {
	out := make([]TimelineEntry, 0, len(g.Main))
	for _, e := range g.Main {
		out = append(out, TimelineEntry{Event: e, YearRange: e.YearRange(), Children: g.ChildrenOf(e.ID)})
	}
	return out
}

// CategoryGroup is one value circle with its events.
type CategoryGroup struct {
	CategoryInfo
	Events []Event `json:"events"`
}

// GroupByCategory buckets events by category in display order. Events with
// an unknown category are dropped from the view.
func GroupByCategory(events []Event) []CategoryGroup {
	byCat := make(map[Category][]Event, len(categories))
	for _, e := range events {
		if !e.Category.IsValid() {
			continue
		}
		byCat[e.Category] = append(byCat[e.Category], e)
	}
	out := make([]CategoryGroup, 0, len(categories))
	for _, info := range categories {
		evs := byCat[info.ID]
		if evs == nil {
			evs = []Event{}
		}
		out = append(out, CategoryGroup{CategoryInfo: info, Events: evs})
	}
	return out
}
