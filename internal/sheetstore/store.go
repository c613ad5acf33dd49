// Package sheetstore is the boundary to the spreadsheet backend. The
// core only depends on the Store interface; the Google implementation
// lives in google.go.
package sheetstore

import "context"

// Store is the backing-store contract the senha core relies on.
//
// AppendRow must use the store's atomic "append after the last used
// row" primitive and return the landed range string (e.g.
// "Tenda A!A7:F7"); the sequence allocator derives the senha from the
// row index encoded there. Correctness of the whole numbering scheme
// rests on that append being linearizable per sheet.
type Store interface {
	// SheetTitles lists the titles of every sheet in the spreadsheet.
	SheetTitles(ctx context.Context) ([]string, error)
	// ReadRange reads an A1-notation range ("Nomes!A:Z", "Tenda!1:1").
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	// AppendRow appends one row to the sheet and reports where it landed.
	AppendRow(ctx context.Context, sheet string, row []string) (updatedRange string, err error)
	// UpdateRange overwrites an A1-notation range with the given values.
	UpdateRange(ctx context.Context, rng string, values [][]string) error
	// AddSheet creates a new, empty sheet with the given title.
	AddSheet(ctx context.Context, title string) error
}
