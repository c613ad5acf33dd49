package services

import (
	"context"
	"fmt"

	"backend/internal/domain"
	"backend/internal/sheetstore"
	"backend/internal/utils"
)

// Column synonyms accepted on the "Nomes" sheet, matched
// accent/case-insensitively in order.
var (
	areaColumns  = []string{"Área", "Area", "Setor", "Mesa", "Área/Setor"}
	abaColumns   = []string{"Aba", "Sheet", "AbaDestino", "Aba Destino", "Destino", "Guia", "Tab"}
	ativaColumns = []string{"Ativa", "Ativo", "Status", "Habilitada", "Disponível"}
)

// Leading rows of the bairro sheet matching one of these are treated as
// a header and dropped.
var bairroHeaderSentinels = map[string]bool{
	"bairro":         true,
	"nome do bairro": true,
}

// DirectoryService reads the reference sheets: active areas and the
// bairro list. It never caches; every call re-reads the spreadsheet.
type DirectoryService struct {
	Store        sheetstore.Store
	NomesSheet   string
	BairrosSheet string
	RequestID    string
}

// ActiveDestinations reads the directory sheet and returns only the
// rows whose active flag resolves truthy, in sheet order. A wholly
// absent active column marks every row active.
func (s DirectoryService) ActiveDestinations(ctx context.Context) ([]domain.Destination, error) {
	rng := s.NomesSheet + "!A:Z"
	rows, err := s.Store.ReadRange(ctx, rng)
	if err != nil {
		return nil, domain.StoreError{Op: "read " + s.NomesSheet, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	areaIdx := resolveColumn(header, areaColumns)
	abaIdx := resolveColumn(header, abaColumns)
	ativaIdx := resolveColumn(header, ativaColumns)

	if areaIdx < 0 {
		return nil, domain.ValidationError{
			Field: s.NomesSheet,
			Msg:   "coluna 'Área' (ou equivalente) não encontrada",
		}
	}

	var out []domain.Destination
	for _, row := range rows[1:] {
		area := utils.TrimOrEmpty(cell(row, areaIdx))
		if area == "" {
			continue
		}
		sheet := area
		if abaIdx >= 0 {
			if v := utils.TrimOrEmpty(cell(row, abaIdx)); v != "" {
				sheet = v
			}
		}
		ativa := true
		if ativaIdx >= 0 {
			ativa = utils.Truthy(cell(row, ativaIdx))
		}
		if ativa {
			out = append(out, domain.Destination{Area: area, Sheet: sheet, Ativa: true})
		}
	}
	utils.LogEvent(s.RequestID, "directory", "read_areas", fmt.Sprintf("ativas=%d", len(out)))
	return out, nil
}

// Neighborhoods reads the single-column bairro sheet, dropping a
// leading header-like row. Duplicates are kept as-is.
func (s DirectoryService) Neighborhoods(ctx context.Context) ([]string, error) {
	rng := s.BairrosSheet + "!A:A"
	rows, err := s.Store.ReadRange(ctx, rng)
	if err != nil {
		return nil, domain.StoreError{Op: "read " + s.BairrosSheet, Err: err}
	}

	var out []string
	for i, row := range rows {
		nome := utils.TrimOrEmpty(cell(row, 0))
		if nome == "" {
			continue
		}
		if i == 0 && bairroHeaderSentinels[utils.Normalize(nome)] {
			continue
		}
		out = append(out, nome)
	}
	return out, nil
}

// resolveColumn finds the first header cell matching any synonym,
// compared via Normalize. Returns -1 when no synonym matches.
func resolveColumn(header []string, synonyms []string) int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = utils.Normalize(h)
	}
	for _, want := range synonyms {
		wantN := utils.Normalize(want)
		for idx, col := range normalized {
			if col == wantN {
				return idx
			}
		}
	}
	return -1
}

// cell reads row[idx] tolerating the ragged rows the Sheets API returns.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
