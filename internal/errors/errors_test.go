package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorMessageIncludesTypeAndCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Catalog("failed to load", cause)

	msg := err.Error()
	if !strings.Contains(msg, "CATALOG_ERROR") || !strings.Contains(msg, "boom") {
		t.Errorf("Error() = %q", msg)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should unwrap")
	}
}

func TestIsType(t *testing.T) {
	if !IsType(Order("bad order", nil), TypeOrder) {
		t.Error("order error should match TypeOrder")
	}
	if IsType(Order("bad order", nil), TypeCatalog) {
		t.Error("order error must not match TypeCatalog")
	}
	if IsType(stderrors.New("plain"), TypeOrder) {
		t.Error("plain errors have no type")
	}
}

func TestWithContext(t *testing.T) {
	err := Newf(TypeCatalog, "duplicate part %q", "EX-100").WithContext("file", "catalog.hcl")
	if err.Context["file"] != "catalog.hcl" {
		t.Errorf("context = %v", err.Context)
	}
	if !strings.Contains(err.Error(), "EX-100") {
		t.Errorf("Error() = %q", err.Error())
	}
}
