package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/domain/models"
	"cucisepatu/internal/repositories"

	"github.com/rs/zerolog"
)

func TestDocsServiceGenerateReceipt(t *testing.T) {
	selesai := "2024-01-03"
	loader := func(_ context.Context, id int64) (models.ServiceOrder, error) {
		return models.ServiceOrder{
			ID:             id,
			Nama:           "Sneaker A",
			Status:         domain.StatusSelesai,
			TanggalMasuk:   "2024-01-01",
			TanggalSelesai: &selesai,
		}, nil
	}

	svc := DocsService{
		Loader: loader,
		Logger: zerolog.Nop(),
		Now:    func() time.Time { return time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local) },
	}

	pdf, filename, err := svc.GenerateReceipt(context.Background(), 12)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("GenerateReceipt returned invalid pdf data")
	}
	if filename != "NOTA_12_Sneaker_A.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceUnknownOrder(t *testing.T) {
	svc := DocsService{Store: repositories.NewMemoryStore(), Logger: zerolog.Nop()}

	_, _, err := svc.GenerateReceipt(context.Background(), 404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
