package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/domain/models"
)

// OrderStore is the data store contract the HTTP layer depends on.
// GetByID, Update and Delete return domain.NotFoundError for unknown ids.
type OrderStore interface {
	List(ctx context.Context, filter models.OrderFilter) ([]models.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (models.ServiceOrder, error)
	Create(ctx context.Context, in models.NewServiceOrder) (models.ServiceOrder, error)
	Update(ctx context.Context, id int64, patch models.OrderPatch) (models.ServiceOrder, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

const (
	DriverMySQL  = "mysql"
	DriverPgx    = "pgx"
	DriverMemory = "memory"

	itemsTable = "items"
)

type dialect struct {
	driver    string
	textType  string
	returning bool
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case DriverMySQL:
		return dialect{driver: driver, textType: "CHAR"}, nil
	case DriverPgx:
		return dialect{driver: driver, textType: "TEXT", returning: true}, nil
	default:
		return dialect{}, fmt.Errorf("driver %q tidak didukung", driver)
	}
}

func (d dialect) placeholder(n int) string {
	if d.driver == DriverPgx {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// OrderRepository reads and writes the items table through database/sql.
type OrderRepository struct {
	DB    *sql.DB
	Table string
	d     dialect
}

func NewOrderRepository(db *sql.DB, driver string) (*OrderRepository, error) {
	if db == nil {
		return nil, errors.New("db nil")
	}
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &OrderRepository{DB: db, Table: itemsTable, d: d}, nil
}

func (r *OrderRepository) table() string {
	if r.Table == "" {
		return itemsTable
	}
	return r.Table
}

// dates are read back as text so both drivers hand us YYYY-MM-DD strings
// regardless of the column type.
func (r *OrderRepository) columns() string {
	t := r.d.textType
	return "id, nama, status, " +
		"CAST(tanggal_masuk AS " + t + ") AS tanggal_masuk, " +
		"CAST(tanggal_selesai AS " + t + ") AS tanggal_selesai"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.ServiceOrder, error) {
	var (
		o       models.ServiceOrder
		masuk   sql.NullString
		selesai sql.NullString
	)
	if err := row.Scan(&o.ID, &o.Nama, &o.Status, &masuk, &selesai); err != nil {
		return models.ServiceOrder{}, err
	}
	o.TanggalMasuk = masuk.String
	if selesai.Valid {
		v := selesai.String
		o.TanggalSelesai = &v
	}
	return o, nil
}

func notFound(id int64) error {
	return domain.NotFoundError{Resource: "order", Err: fmt.Errorf("id %d", id)}
}

func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.ServiceOrder, error) {
	query := "SELECT " + r.columns() + " FROM " + r.table()
	args := []any{}
	if filter.Status != "" {
		query += " WHERE status = " + r.d.placeholder(1)
		args = append(args, filter.Status)
	}
	query += " ORDER BY id ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapStore("list", err)
	}
	defer rows.Close()

	// empty slice, not nil, so it serialises as []
	out := make([]models.ServiceOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, domain.WrapStore("list", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapStore("list", err)
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (models.ServiceOrder, error) {
	query := "SELECT " + r.columns() + " FROM " + r.table() + " WHERE id = " + r.d.placeholder(1) + " LIMIT 1"
	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceOrder{}, notFound(id)
	}
	if err != nil {
		return models.ServiceOrder{}, domain.WrapStore("get", err)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, in models.NewServiceOrder) (models.ServiceOrder, error) {
	ph := make([]string, 4)
	for i := range ph {
		ph[i] = r.d.placeholder(i + 1)
	}
	query := "INSERT INTO " + r.table() + " (nama, status, tanggal_masuk, tanggal_selesai) VALUES (" + strings.Join(ph, ", ") + ")"
	args := []any{in.Nama, in.Status, in.TanggalMasuk, nullableString(in.TanggalSelesai)}

	if r.d.returning {
		o, err := scanOrder(r.DB.QueryRowContext(ctx, query+" RETURNING "+r.columns(), args...))
		if err != nil {
			return models.ServiceOrder{}, domain.WrapStore("insert", err)
		}
		return o, nil
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.ServiceOrder{}, domain.WrapStore("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ServiceOrder{}, domain.WrapStore("insert", err)
	}
	return r.GetByID(ctx, id)
}

// Update applies patch in one conditional statement keyed by id. A missing
// row is reported from the statement itself, not from a prior select.
func (r *OrderRepository) Update(ctx context.Context, id int64, patch models.OrderPatch) (models.ServiceOrder, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	sets := []string{}
	args := []any{}
	addSet := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = "+r.d.placeholder(len(args)))
	}
	if patch.Nama != nil {
		addSet("nama", *patch.Nama)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.TanggalMasuk != nil {
		addSet("tanggal_masuk", *patch.TanggalMasuk)
	}
	if patch.SetTanggalSelesai {
		addSet("tanggal_selesai", nullableString(patch.TanggalSelesai))
	}
	args = append(args, id)
	query := "UPDATE " + r.table() + " SET " + strings.Join(sets, ", ") + " WHERE id = " + r.d.placeholder(len(args))

	if r.d.returning {
		o, err := scanOrder(r.DB.QueryRowContext(ctx, query+" RETURNING "+r.columns(), args...))
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceOrder{}, notFound(id)
		}
		if err != nil {
			return models.ServiceOrder{}, domain.WrapStore("update", err)
		}
		return o, nil
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.ServiceOrder{}, domain.WrapStore("update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.ServiceOrder{}, domain.WrapStore("update", err)
	}
	if affected == 0 {
		return models.ServiceOrder{}, notFound(id)
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM " + r.table() + " WHERE id = " + r.d.placeholder(1)
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return domain.WrapStore("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.WrapStore("delete", err)
	}
	if affected == 0 {
		return notFound(id)
	}
	return nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
