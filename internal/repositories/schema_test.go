package repositories

import (
	"context"
	"regexp"
	"testing"

	"cucisepatu/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrderRepositoryPingChecksItemsTable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo, err := NewOrderRepository(db, DriverPgx)
	if err != nil {
		t.Fatalf("NewOrderRepository: %v", err)
	}

	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE table_schema = current_schema()")).
		WithArgs("items").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("items"))

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}

	mock.ExpectPing()
	mock.ExpectQuery("information_schema\\.tables").
		WithArgs("items").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	err = repo.Ping(context.Background())
	if !domain.IsStore(err) {
		t.Fatalf("expected StoreError for missing table, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
