package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"backend/internal/domain"
	"backend/internal/sheetstore"
	"backend/internal/utils"
)

// SequenceService turns the store's append-only primitive into a senha
// sequence: the row index the append lands on, minus the header row, is
// the senha. It holds no locks of its own; two racing appends are safe
// exactly because the store assigns each one a distinct increasing row.
type SequenceService struct {
	Store     sheetstore.Store
	RequestID string
}

// EnsureSheet guarantees the destination sheet exists and carries the
// 6-column header. An existing non-empty first row is left untouched,
// even if it differs from the expected header.
func (s SequenceService) EnsureSheet(ctx context.Context, title string) error {
	titles, err := s.Store.SheetTitles(ctx)
	if err != nil {
		return domain.StoreError{Op: "list sheets", Err: err}
	}
	for _, t := range titles {
		if t == title {
			return s.ensureHeader(ctx, title)
		}
	}

	if err := s.Store.AddSheet(ctx, title); err != nil {
		return domain.StoreError{Op: "create sheet " + title, Err: err}
	}
	if err := s.writeHeader(ctx, title); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "sequence", "create_sheet", "title="+title)
	return nil
}

// ensureHeader writes the header into an externally created sheet whose
// first row is still empty.
func (s SequenceService) ensureHeader(ctx context.Context, title string) error {
	rows, err := s.Store.ReadRange(ctx, title+"!1:1")
	if err != nil {
		return domain.StoreError{Op: "read header " + title, Err: err}
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		return nil
	}
	return s.writeHeader(ctx, title)
}

func (s SequenceService) writeHeader(ctx context.Context, title string) error {
	rng := title + "!A1:F1"
	if err := s.Store.UpdateRange(ctx, rng, [][]string{domain.SheetHeaders}); err != nil {
		return domain.StoreError{Op: "write header " + title, Err: err}
	}
	return nil
}

// Allocate appends the registration with an empty senha cell, derives
// the senha from where the append landed and writes it back into that
// row's first cell. Returns the assigned senha.
func (s SequenceService) Allocate(ctx context.Context, title string, reg domain.Registration) (int, error) {
	if err := s.EnsureSheet(ctx, title); err != nil {
		return 0, err
	}

	row := []string{"", reg.Nome, reg.Telefone, reg.Bairro, reg.RegistradoEm, ""}
	updatedRange, err := s.Store.AppendRow(ctx, title, row)
	if err != nil {
		return 0, domain.StoreError{Op: "append " + title, Err: err}
	}

	rowIdx, err := parseLandedRow(updatedRange)
	if err != nil {
		return 0, err
	}

	// Header occupies row 1; guard the degenerate case of an append
	// reported at row <= 1.
	senha := rowIdx - 1
	if senha < 1 {
		senha = 1
	}

	cellRng := fmt.Sprintf("%s!A%d", title, rowIdx)
	if err := s.Store.UpdateRange(ctx, cellRng, [][]string{{strconv.Itoa(senha)}}); err != nil {
		return 0, domain.StoreError{Op: "write senha " + cellRng, Err: err}
	}

	utils.LogEvent(s.RequestID, "sequence", "allocate", fmt.Sprintf("sheet=%s senha=%d", title, senha))
	return senha, nil
}

// The store reports where an appended row landed as
// "<sheet>!<cols><row>:<cols><row>" or "<sheet>!<cols><row>".
// parseLandedRow extracts the row number of the first (only) cell
// reference after the "!".
var (
	landedRowPairRe   = regexp.MustCompile(`!.*?(\d+):`)
	landedRowSingleRe = regexp.MustCompile(`!.*?(\d+)$`)
)

func parseLandedRow(updatedRange string) (int, error) {
	m := landedRowPairRe.FindStringSubmatch(updatedRange)
	if m == nil {
		m = landedRowSingleRe.FindStringSubmatch(updatedRange)
	}
	if m == nil {
		return 0, domain.ContractError{
			Msg: fmt.Sprintf("não foi possível detectar a linha inserida: %q", updatedRange),
		}
	}
	rowIdx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, domain.ContractError{Msg: "linha inserida não numérica: " + m[1], Err: err}
	}
	return rowIdx, nil
}
