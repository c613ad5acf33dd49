package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"backend/internal/domain"
)

func newSubmitService(store *fakeStore) RegistrationService {
	return RegistrationService{
		Store:      store,
		NomesSheet: "Nomes",
		PhoneDDD:   "92",
		Timezone:   "America/Manaus",
		Now:        func() string { return "01/08/2026 09:00:00" },
	}
}

func pdfPageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
}

func TestSubmitMultiDestination(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Nomes",
		[]string{"Área", "Aba", "Ativa"},
		[]string{"Tenda A", "", "Sim"},
		[]string{"Tenda B", "", "Sim"},
	)
	svc := newSubmitService(store)

	res, err := svc.Submit(context.Background(), []string{"Tenda A", "Tenda B"}, "maria", "92981234567", "Centro")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if len(res.Registrations) != 2 {
		t.Fatalf("got %d registrations, want 2: %+v", len(res.Registrations), res.Registrations)
	}
	wantRegs := []domain.RegistrationResult{
		{Area: "Tenda A", Senha: 1},
		{Area: "Tenda B", Senha: 1},
	}
	for i, want := range wantRegs {
		if res.Registrations[i] != want {
			t.Errorf("registration[%d] = %+v, want %+v", i, res.Registrations[i], want)
		}
	}

	if res.RegisteredAt != "01/08/2026 09:00:00" {
		t.Errorf("RegisteredAt = %q", res.RegisteredAt)
	}
	for _, sheet := range []string{"Tenda A", "Tenda B"} {
		rows := store.dataRows(sheet)
		if len(rows) != 1 {
			t.Fatalf("%s: %d data rows, want 1", sheet, len(rows))
		}
		row := rows[0]
		if row[1] != "MARIA" || row[2] != "92 98123-4567" || row[3] != "Centro" {
			t.Errorf("%s row = %v", sheet, row)
		}
		if row[4] != res.RegisteredAt {
			t.Errorf("%s registered_at = %q, want shared %q", sheet, row[4], res.RegisteredAt)
		}
	}

	if got := pdfPageCount(res.PDF); got != 2 {
		t.Errorf("PDF has %d pages, want 2", got)
	}
}

func TestSubmitInvalidPhoneWritesNothing(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Nomes", []string{"Área"}, []string{"Tenda A"})
	svc := newSubmitService(store)

	_, err := svc.Submit(context.Background(), []string{"Tenda A"}, "maria", "9812345", "Centro")
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if rows := store.dataRows("Tenda A"); len(rows) != 0 {
		t.Errorf("rows written despite invalid phone: %v", rows)
	}
}

func TestSubmitNoAreas(t *testing.T) {
	svc := newSubmitService(newFakeStore())
	if _, err := svc.Submit(context.Background(), nil, "maria", "92981234567", "Centro"); !domain.IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestSubmitPartialFailureStopsAtFirstError(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Nomes",
		[]string{"Área"},
		[]string{"Tenda A"},
		[]string{"Tenda B"},
		[]string{"Tenda C"},
	)
	store.addSheet("Tenda B", append([]string{}, domain.SheetHeaders...))
	cause := errors.New("backend unavailable")
	store.appendErr["Tenda B"] = cause
	svc := newSubmitService(store)

	_, err := svc.Submit(context.Background(), []string{"Tenda A", "Tenda B", "Tenda C"}, "maria", "92981234567", "Centro")
	if !domain.IsStore(err) {
		t.Fatalf("error = %v, want StoreError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not wrapped: %v", err)
	}

	// Tenda A keeps its row (no rollback); Tenda C is never reached.
	if rows := store.dataRows("Tenda A"); len(rows) != 1 {
		t.Errorf("Tenda A rows = %d, want 1 (no rollback)", len(rows))
	}
	if _, ok := store.rows["Tenda C"]; ok {
		t.Errorf("Tenda C was touched after the failure")
	}
}

func TestSubmitResolvesSheetAndFallsBack(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Nomes",
		[]string{"Área", "Aba"},
		[]string{"Tenda A", "Planilha Tenda A"},
	)
	svc := newSubmitService(store)

	res, err := svc.Submit(context.Background(), []string{"Tenda A", "Improvisada"}, "joão", "92981234567", "Centro")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if len(res.Registrations) != 2 {
		t.Fatalf("got %d registrations", len(res.Registrations))
	}
	if rows := store.dataRows("Planilha Tenda A"); len(rows) != 1 {
		t.Errorf("mapped sheet not used: %v", store.rows)
	}
	// Unknown area writes to a sheet named after itself.
	if rows := store.dataRows("Improvisada"); len(rows) != 1 {
		t.Errorf("fallback sheet not used: %v", store.rows)
	}
}
