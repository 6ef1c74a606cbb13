package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"cucisepatu/internal/domain/models"
	"cucisepatu/internal/repositories"
	"cucisepatu/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog"
)

// DocsService menghasilkan PDF nota untuk satu order.
type DocsService struct {
	Store     repositories.OrderStore
	Logger    zerolog.Logger
	RequestID string
	Loader    func(context.Context, int64) (models.ServiceOrder, error)
	Now       func() time.Time
}

func (s DocsService) GenerateReceipt(ctx context.Context, orderID int64) ([]byte, string, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.Logger, s.RequestID, "docs", "generate_receipt", fmt.Sprintf("order_id=%d", orderID))
	return buildReceiptPDF(order, s.now())
}

func (s DocsService) load(ctx context.Context, id int64) (models.ServiceOrder, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Store.GetByID(ctx, id)
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildReceiptPDF(o models.ServiceOrder, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Nota Cuci Sepatu", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "NOTA CUCI SEPATU")
	pdf.Ln(12)

	selesai := "-"
	if o.TanggalSelesai != nil {
		selesai = safe(utils.DateOnly(*o.TanggalSelesai), "-")
	}

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("No Nota         : CS-%06d", o.ID),
		fmt.Sprintf("Nama            : %s", safe(o.Nama, "-")),
		fmt.Sprintf("Status          : %s", safe(o.Status, "-")),
		fmt.Sprintf("Tanggal Masuk   : %s", safe(utils.DateOnly(o.TanggalMasuk), "-")),
		fmt.Sprintf("Tanggal Selesai : %s", selesai),
		fmt.Sprintf("Dicetak         : %s", utils.FormatDateTime(printedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Simpan nota ini dan tunjukkan saat pengambilan sepatu.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("NOTA_%d_%s.pdf", o.ID, utils.SafeFilenamePart(o.Nama))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
