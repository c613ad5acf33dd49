package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// fakeStore is an in-memory sheetstore.Store whose AppendRow assigns
// row positions under a mutex, mimicking the linearizable append the
// real backend guarantees per sheet.
type fakeStore struct {
	mu        sync.Mutex
	order     []string
	rows      map[string][][]string
	appendErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:      map[string][][]string{},
		appendErr: map[string]error{},
	}
}

func (f *fakeStore) addSheet(title string, rows ...[]string) {
	f.order = append(f.order, title)
	f.rows[title] = append([][]string{}, rows...)
}

func (f *fakeStore) SheetTitles(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.order...), nil
}

var (
	colRangeRe = regexp.MustCompile(`^(.+)!(1:1|A:Z|A:A)$`)
	cellRe     = regexp.MustCompile(`^(.+)!A(\d+)(?::F(\d+))?$`)
)

func (f *fakeStore) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := colRangeRe.FindStringSubmatch(rng)
	if m == nil {
		return nil, fmt.Errorf("fake: unsupported read range %q", rng)
	}
	sheet, ref := m[1], m[2]
	rows, ok := f.rows[sheet]
	if !ok {
		return nil, fmt.Errorf("fake: unable to parse range: %s", rng)
	}
	switch ref {
	case "1:1":
		if len(rows) == 0 || len(rows[0]) == 0 {
			return nil, nil
		}
		return [][]string{append([]string{}, rows[0]...)}, nil
	case "A:A":
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			if len(r) == 0 {
				out = append(out, []string{})
				continue
			}
			out = append(out, []string{r[0]})
		}
		return out, nil
	default: // A:Z
		out := make([][]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, append([]string{}, r...))
		}
		return out, nil
	}
}

func (f *fakeStore) AppendRow(ctx context.Context, sheet string, row []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.appendErr[sheet]; err != nil {
		return "", err
	}
	if _, ok := f.rows[sheet]; !ok {
		return "", fmt.Errorf("fake: unable to parse range: %s", sheet)
	}
	f.rows[sheet] = append(f.rows[sheet], append([]string{}, row...))
	r := len(f.rows[sheet])
	return fmt.Sprintf("%s!A%d:F%d", sheet, r, r), nil
}

func (f *fakeStore) UpdateRange(ctx context.Context, rng string, values [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m := cellRe.FindStringSubmatch(rng)
	if m == nil {
		return fmt.Errorf("fake: unsupported update range %q", rng)
	}
	sheet := m[1]
	rowIdx, _ := strconv.Atoi(m[2])
	rows, ok := f.rows[sheet]
	if !ok {
		return fmt.Errorf("fake: unable to parse range: %s", rng)
	}
	for len(rows) < rowIdx {
		rows = append(rows, []string{})
	}
	if m[3] != "" {
		rows[rowIdx-1] = append([]string{}, values[0]...)
	} else {
		row := rows[rowIdx-1]
		if len(row) == 0 {
			row = []string{""}
		}
		row[0] = values[0][0]
		rows[rowIdx-1] = row
	}
	f.rows[sheet] = rows
	return nil
}

func (f *fakeStore) AddSheet(ctx context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[title]; ok {
		return fmt.Errorf("fake: sheet %q already exists", title)
	}
	f.order = append(f.order, title)
	f.rows[title] = [][]string{}
	return nil
}

// dataRows returns the persisted rows of a sheet excluding the header.
func (f *fakeStore) dataRows(sheet string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.rows[sheet]
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
