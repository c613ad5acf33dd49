package domain

// Destination is one row of the "Nomes" directory sheet: a service area
// with its own sheet and independent senha sequence.
type Destination struct {
	Area  string `json:"area"`
	Sheet string `json:"sheet"`
	Ativa bool   `json:"ativa"`
}

// Registration is the row persisted on a destination sheet. Senha is
// assigned by the allocator; AtendidoEm stays empty at creation and is
// only ever filled by hand on the spreadsheet.
type Registration struct {
	Senha        string `json:"senha"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Bairro       string `json:"bairro"`
	RegistradoEm string `json:"registrado_em"`
	AtendidoEm   string `json:"atendido_em"`
}

// RegistrationResult pairs a destination with the senha it assigned.
type RegistrationResult struct {
	Area  string `json:"area"`
	Senha int    `json:"senha"`
}

// Ticket carries everything one printed ticket page needs. Derived,
// never persisted.
type Ticket struct {
	Area         string
	Senha        string
	Nome         string
	Telefone     string
	Bairro       string
	RegistradoEm string
}

// SheetHeaders is the fixed 6-column header of every destination sheet,
// in persisted order.
var SheetHeaders = []string{
	"Senha",
	"Nome",
	"Telefone",
	"Bairro",
	"Data e Hora de Registro",
	"Data e Hora de Atendimento",
}
