package todo

import (
	"encoding/json"
	"fmt"
	"os"
)

type seedFile struct {
	Todos []seedEntry `json:"todos"`
}

type seedEntry struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Done        bool    `json:"done"`
	Description *string `json:"description"`
}

// LoadSeed reads initial todos from a JSON file of the form
// {"todos": [{"id", "title", "done", "description"}, ...]}.
// A missing path returns the built-in defaults; a malformed file is an error.
func LoadSeed(path string) ([]Todo, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSeed(), nil
		}
		return nil, fmt.Errorf("todo seed: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("todo seed: %w", err)
	}

	todos := make([]Todo, 0, len(f.Todos))
	for i, e := range f.Todos {
		if e.Title == "" {
			return nil, fmt.Errorf("todo seed: entry %d has no title", i)
		}
		id := e.ID
		if id == 0 {
			id = i + 1
		}
		todos = append(todos, Todo{ID: id, Title: e.Title, Done: e.Done, Description: e.Description})
	}
	return todos, nil
}

// DefaultSeed returns the built-in starter items used when no seed file is
// configured.
func DefaultSeed() []Todo {
	return []Todo{
		{ID: 1, Title: "Buy groceries", Done: false, Description: strPtr("Milk, eggs, bread, and coffee")},
		{ID: 2, Title: "Call mom", Done: true, Description: strPtr("Check in and catch up")},
		{ID: 3, Title: "Finish project report", Done: false, Description: strPtr("Summarize Q4 performance metrics")},
		{ID: 4, Title: "Workout", Done: true, Description: strPtr("30 minutes of cardio")},
	}
}

func strPtr(s string) *string { return &s }
