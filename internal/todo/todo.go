// Package todo implements the task collection: an in-memory keyed store with
// filtering and pagination, and its HTTP handlers.
package todo

// Todo is a single task item. Description is a pointer so a missing value
// serializes as null, matching the legacy API contract.
type Todo struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Done        bool    `json:"done"`
	Description *string `json:"description"`
}
