package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapStoreKeepsStoreText(t *testing.T) {
	err := WrapStore("list", errors.New(`relation "items" does not exist`))
	if !IsStore(err) {
		t.Fatalf("expected StoreError, got %T", err)
	}
	if err.Error() != `relation "items" does not exist` {
		t.Fatalf("store text changed: %q", err.Error())
	}
}

func TestWrapStorePassesDomainErrorsThrough(t *testing.T) {
	nf := fmt.Errorf("lookup: %w", NotFoundError{Resource: "order"})
	if got := WrapStore("get", nf); got != nf {
		t.Fatalf("not found error should pass through, got %v", got)
	}
	if WrapStore("get", nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (NotFoundError{Resource: "order"}).Error(); got != "order not found" {
		t.Fatalf("NotFoundError = %q", got)
	}
	if got := (ValidationError{Field: "tanggal_masuk", Msg: "must be a date"}).Error(); got != "tanggal_masuk: must be a date" {
		t.Fatalf("ValidationError = %q", got)
	}
	if got := (ValidationError{Msg: "name and intake date are required"}).Error(); got != "name and intake date are required" {
		t.Fatalf("ValidationError = %q", got)
	}
	if !IsValidation(fmt.Errorf("wrap: %w", ValidationError{})) {
		t.Fatalf("IsValidation should see through wrapping")
	}
}
