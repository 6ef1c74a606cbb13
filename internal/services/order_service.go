package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/domain/models"
	"cucisepatu/internal/repositories"
	"cucisepatu/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	MsgRequiredFields = "name and intake date are required"
	MsgInvalidDate    = "must be a date in YYYY-MM-DD format"
	MsgInvalidPayload = "invalid payload"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateOrderInput is the POST /items body.
type CreateOrderInput struct {
	Nama           string  `json:"nama"`
	Status         string  `json:"status"`
	TanggalMasuk   string  `json:"tanggal_masuk" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string `json:"tanggal_selesai" validate:"omitempty,datetime=2006-01-02"`
}

// OrderService holds the request-level rules on top of an OrderStore.
type OrderService struct {
	Store     repositories.OrderStore
	Logger    zerolog.Logger
	RequestID string
}

func (s OrderService) List(ctx context.Context, status string) ([]models.ServiceOrder, error) {
	return s.Store.List(ctx, models.OrderFilter{Status: status})
}

func (s OrderService) Get(ctx context.Context, id int64) (models.ServiceOrder, error) {
	return s.Store.GetByID(ctx, id)
}

// Create validates in, fills defaults and inserts the order.
func (s OrderService) Create(ctx context.Context, in CreateOrderInput) (models.ServiceOrder, error) {
	in.Nama = strings.TrimSpace(in.Nama)
	in.Status = strings.TrimSpace(in.Status)
	in.TanggalMasuk = strings.TrimSpace(in.TanggalMasuk)
	in.TanggalSelesai = blankToNil(in.TanggalSelesai)

	if in.Nama == "" || in.TanggalMasuk == "" {
		return models.ServiceOrder{}, domain.ValidationError{Msg: MsgRequiredFields}
	}
	if err := validate.Struct(in); err != nil {
		return models.ServiceOrder{}, validationFrom(err)
	}

	row := models.NewServiceOrder{
		Nama:           in.Nama,
		Status:         in.Status,
		TanggalMasuk:   in.TanggalMasuk,
		TanggalSelesai: in.TanggalSelesai,
	}
	if row.Status == "" {
		row.Status = domain.StatusSedangDicuci
	}

	created, err := s.Store.Create(ctx, row)
	if err != nil {
		return models.ServiceOrder{}, err
	}
	utils.LogEvent(s.Logger, s.RequestID, "orders", "create", fmt.Sprintf("order_id=%d status=%s", created.ID, created.Status))
	return created, nil
}

// Update applies the keys present in rawJSON to order id.
func (s OrderService) Update(ctx context.Context, id int64, rawJSON []byte) (models.ServiceOrder, error) {
	patch, err := BuildOrderPatch(rawJSON)
	if err != nil {
		return models.ServiceOrder{}, err
	}
	updated, err := s.Store.Update(ctx, id, patch)
	if err != nil {
		return models.ServiceOrder{}, err
	}
	utils.LogEvent(s.Logger, s.RequestID, "orders", "update", fmt.Sprintf("order_id=%d status=%s", updated.ID, updated.Status))
	return updated, nil
}

func (s OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.Logger, s.RequestID, "orders", "delete", fmt.Sprintf("order_id=%d", id))
	return nil
}

// BuildOrderPatch reads a PUT body by key presence.
//
// nama, status and tanggal_masuk change only when present with a non-blank
// string; blank values never overwrite. tanggal_selesai changes whenever
// the key is present: null or "" clears it.
func BuildOrderPatch(rawJSON []byte) (models.OrderPatch, error) {
	var patch models.OrderPatch

	rawJSON = bytes.TrimSpace(rawJSON)
	if len(rawJSON) == 0 {
		return patch, nil
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rawJSON, &payload); err != nil {
		return patch, domain.ValidationError{Msg: MsgInvalidPayload, Err: err}
	}

	var err error
	if patch.Nama, err = nonBlankField(payload, "nama"); err != nil {
		return patch, err
	}
	if patch.Status, err = nonBlankField(payload, "status"); err != nil {
		return patch, err
	}
	if patch.TanggalMasuk, err = nonBlankField(payload, "tanggal_masuk"); err != nil {
		return patch, err
	}
	if patch.TanggalMasuk != nil {
		if err := checkDate("tanggal_masuk", *patch.TanggalMasuk); err != nil {
			return patch, err
		}
	}

	if raw, ok := payload["tanggal_selesai"]; ok {
		v, err := stringOrNull("tanggal_selesai", raw)
		if err != nil {
			return patch, err
		}
		v = blankToNil(v)
		if v != nil {
			if err := checkDate("tanggal_selesai", *v); err != nil {
				return patch, err
			}
		}
		patch.TanggalSelesai = v
		patch.SetTanggalSelesai = true
	}
	return patch, nil
}

func nonBlankField(payload map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := payload[key]
	if !ok {
		return nil, nil
	}
	v, err := stringOrNull(key, raw)
	if err != nil {
		return nil, err
	}
	return blankToNil(v), nil
}

func stringOrNull(field string, raw json.RawMessage) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, domain.ValidationError{Field: field, Msg: "must be a string", Err: err}
	}
	return &s, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func checkDate(field, value string) error {
	if _, err := utils.ParseDate(value); err != nil {
		return domain.ValidationError{Field: field, Msg: MsgInvalidDate, Err: err}
	}
	return nil
}

func validationFrom(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := MsgInvalidPayload
		if fe.Tag() == "datetime" {
			msg = MsgInvalidDate
		}
		return domain.ValidationError{Field: fe.Field(), Msg: msg, Err: err}
	}
	return domain.ValidationError{Msg: MsgInvalidPayload, Err: err}
}
