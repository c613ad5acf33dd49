package sheetstore

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store over the Sheets v4 API for a single
// spreadsheet. The handle is built once in config and injected; nothing
// here is a process-wide singleton.
type GoogleStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleStore(svc *sheets.Service, spreadsheetID string) *GoogleStore {
	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}
}

func (g *GoogleStore) SpreadsheetID() string { return g.spreadsheetID }

func (g *GoogleStore) SheetTitles(ctx context.Context) ([]string, error) {
	meta, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (g *GoogleStore) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return fromValues(resp.Values), nil
}

func (g *GoogleStore) AppendRow(ctx context.Context, sheet string, row []string) (string, error) {
	body := &sheets.ValueRange{Values: [][]interface{}{toValues(row)}}
	resp, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, sheet+"!A1", body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if resp.Updates == nil {
		return "", fmt.Errorf("append sem updates na resposta")
	}
	return resp.Updates.UpdatedRange, nil
}

func (g *GoogleStore) UpdateRange(ctx context.Context, rng string, values [][]string) error {
	rows := make([][]interface{}, 0, len(values))
	for _, v := range values {
		rows = append(rows, toValues(v))
	}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (g *GoogleStore) AddSheet(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}
	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}

func toValues(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func fromValues(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		out[i] = cells
	}
	return out
}
