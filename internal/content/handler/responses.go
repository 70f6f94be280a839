package handler

import "strata/internal/content/models"

type EventResponse struct {
	models.Event
	YearRange string `json:"year_range"`
}

func toEventResponse(e models.Event) EventResponse {
	return EventResponse{Event: e, YearRange: e.YearRange()}
}

func toEventResponses(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

type GroupedEventsResponse struct {
	Timeline []models.TimelineEntry `json:"timeline"`
	Orphans  []models.Event         `json:"orphans"`
}

type CategoryViewResponse struct {
	Categories []models.CategoryGroup `json:"categories"`
}

type DraftResponse struct {
	Draft      models.EventFields    `json:"draft"`
	Categories []models.CategoryInfo `json:"categories"`
}

type ThoughtListResponse struct {
	Thoughts []models.Thought `json:"thoughts"`
}

type CommentResponse struct {
	models.Comment
	Status        models.CommentStatus `json:"status"`
	DisplayAuthor string               `json:"display_author"`
}

func toCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{Comment: c, Status: c.Status(), DisplayAuthor: c.DisplayAuthor()}
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	// PublicCount is the number of approved comments in the list.
	PublicCount int `json:"public_count"`
}

func toCommentList(comments []models.Comment) CommentListResponse {
	resp := CommentListResponse{Comments: make([]CommentResponse, 0, len(comments))}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
		if c.IsPublic {
			resp.PublicCount++
		}
	}
	return resp
}
