package dto

import "github.com/noah-isme/institute-dashboard-api/pkg/table"

// TableResponse is a list view rendered through the table contract.
type TableResponse[T any] struct {
	Headers []table.Header  `json:"headers"`
	Rows    []T             `json:"rows"`
	Shown   int             `json:"shown"`
	Total   int             `json:"total"`
	Empty   bool            `json:"empty"`
	Summary string          `json:"summary"`
	Sort    table.SortState `json:"sort"`
	Query   string          `json:"query,omitempty"`
}

// NewTableResponse converts a table view into its response form.
func NewTableResponse[T any](view table.View[T]) TableResponse[T] {
	return TableResponse[T]{
		Headers: view.Headers,
		Rows:    view.Rows,
		Shown:   view.Shown,
		Total:   view.Total,
		Empty:   view.Empty,
		Summary: view.Summary(),
		Sort:    view.Sort,
		Query:   view.Query,
	}
}
