package services

import (
	"context"
	"fmt"

	"backend/internal/domain"
	"backend/internal/sheetstore"
	"backend/internal/utils"
)

// RegistrationService runs one submission end-to-end: validate input,
// map areas to destination sheets, allocate one senha per area and
// render the combined ticket PDF.
type RegistrationService struct {
	Store        sheetstore.Store
	NomesSheet   string
	BairrosSheet string
	PhoneDDD     string
	Timezone     string
	RequestID    string

	// Now overrides the registration-timestamp source in tests.
	Now func() string
}

// SubmitResult is what one submission hands back to the caller.
type SubmitResult struct {
	Registrations []domain.RegistrationResult `json:"registrations"`
	RegisteredAt  string                      `json:"registered_at"`
	PDF           []byte                      `json:"-"`
}

// Submit registers the attendee on every requested area, in the given
// order, and renders one ticket page per area.
//
// Allocation is deliberately sequential: all areas share a single
// registration timestamp, and a failure aborts the areas that were not
// reached yet. Rows already written are not rolled back.
func (s RegistrationService) Submit(ctx context.Context, areas []string, nome, telefone, bairro string) (SubmitResult, error) {
	var out SubmitResult

	if len(areas) == 0 {
		return out, domain.ValidationError{Field: "areas", Msg: "selecione ao menos uma área"}
	}

	// Validation happens before any write: a bad phone must not leave
	// partial rows behind.
	telefoneFmt, err := utils.FormatPhone(telefone, s.PhoneDDD)
	if err != nil {
		return out, err
	}
	nomeFmt := utils.FormatName(nome)
	bairro = utils.TrimOrEmpty(bairro)

	dir := DirectoryService{
		Store:        s.Store,
		NomesSheet:   s.NomesSheet,
		BairrosSheet: s.BairrosSheet,
		RequestID:    s.RequestID,
	}
	destinations, err := dir.ActiveDestinations(ctx)
	if err != nil {
		return out, err
	}
	sheetByArea := make(map[string]string, len(destinations))
	for _, d := range destinations {
		sheetByArea[d.Area] = d.Sheet
	}

	registradoEm := s.now()
	reg := domain.Registration{
		Nome:         nomeFmt,
		Telefone:     telefoneFmt,
		Bairro:       bairro,
		RegistradoEm: registradoEm,
	}

	seq := SequenceService{Store: s.Store, RequestID: s.RequestID}

	var tickets []domain.Ticket
	for _, area := range areas {
		sheet, ok := sheetByArea[area]
		if !ok || utils.TrimOrEmpty(sheet) == "" {
			// Best effort: unknown areas write to a sheet named after
			// the area itself.
			sheet = area
			utils.LogEvent(s.RequestID, "registration", "fallback_sheet", "area="+area)
		}

		senha, err := seq.Allocate(ctx, sheet, reg)
		if err != nil {
			utils.LogError(s.RequestID, "registration", "allocate", err)
			return out, err
		}

		out.Registrations = append(out.Registrations, domain.RegistrationResult{Area: area, Senha: senha})
		tickets = append(tickets, domain.Ticket{
			Area:         area,
			Senha:        fmt.Sprintf("%d", senha),
			Nome:         nomeFmt,
			Telefone:     telefoneFmt,
			Bairro:       bairro,
			RegistradoEm: registradoEm,
		})
	}

	pdf, err := TicketService{}.Render(tickets)
	if err != nil {
		return out, err
	}

	out.RegisteredAt = registradoEm
	out.PDF = pdf
	utils.LogEvent(s.RequestID, "registration", "submit", fmt.Sprintf("areas=%d", len(areas)))
	return out, nil
}

func (s RegistrationService) now() string {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowRegistro(s.Timezone)
}
