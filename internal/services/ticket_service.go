package services

import (
	"bytes"
	"fmt"
	"image/png"

	"backend/internal/domain"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Ticket page geometry, in mm. The stock is 80x120 thermal-style paper.
const (
	ticketWidth  = 80.0
	ticketHeight = 120.0
	ticketMargin = 6.0
	qrSide       = 30.0
	barcodeWidth = 50.0
)

// TicketService renders the printable multi-page ticket document: one
// fixed-size page per (area, senha) pair, in input order. Pure CPU
// work; no I/O beyond the returned buffer.
type TicketService struct{}

// Render builds one PDF covering every ticket. Fails only when the QR
// or barcode payload of an individual ticket cannot be encoded.
func (TicketService) Render(tickets []domain.Ticket) ([]byte, error) {
	if len(tickets) == 0 {
		return nil, domain.ValidationError{Field: "tickets", Msg: "nenhuma senha para imprimir"}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: ticketWidth, Ht: ticketHeight},
	})
	pdf.SetTitle("Distribuidor de Senhas", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, tk := range tickets {
		qrPNG, err := qrPayloadPNG(tk)
		if err != nil {
			return nil, err
		}
		barPNG, err := senhaBarcodePNG(tk.Senha)
		if err != nil {
			return nil, err
		}

		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		qrName := fmt.Sprintf("qr-%d", i)
		barName := fmt.Sprintf("bar-%d", i)
		pdf.RegisterImageOptionsReader(qrName, opt, bytes.NewReader(qrPNG))
		pdf.RegisterImageOptionsReader(barName, opt, bytes.NewReader(barPNG))

		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 8, tr("Distribuidor de Senhas"), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 6, tr(tk.Area), "", 1, "C", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 40)
		pdf.CellFormat(0, 18, tk.Senha, "", 1, "C", false, 0, "")
		pdf.Ln(1)

		x, y := pdf.GetXY()
		pdf.ImageOptions(barName, x+10, y, barcodeWidth, 0, false, opt, 0, "")
		pdf.Ln(16)
		pdf.ImageOptions(qrName, (ticketWidth-qrSide)/2, pdf.GetY()+2, qrSide, 0, false, opt, 0, "")
		pdf.Ln(34)

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr("Nome: "+tk.Nome), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr("Telefone: "+tk.Telefone), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr("Bairro: "+tk.Bairro), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr("Registro: "+tk.RegistradoEm), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, tr("Guarde este ticket até o atendimento."), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// qrPayloadPNG encodes "area|senha|nome". Pipes inside the fields are
// not escaped; the scanner side splits on the first two pipes.
func qrPayloadPNG(tk domain.Ticket) ([]byte, error) {
	payload := fmt.Sprintf("%s|%s|%s", tk.Area, tk.Senha, tk.Nome)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}

// senhaBarcodePNG renders the senha string as Code128.
func senhaBarcodePNG(senha string) ([]byte, error) {
	bc, err := code128.Encode(senha)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(bc, 500, 120)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
