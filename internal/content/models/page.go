package models

// Page is everything the single page renders on first load.
type Page struct {
	Timeline   []TimelineEntry `json:"timeline"`
	Orphans    []Event         `json:"orphans"`
	Categories []CategoryGroup `json:"categories"`
	Thoughts   []Thought       `json:"thoughts"`
}
