package request

import (
	"errors"
	"testing"
)

func TestChequeForm_ResolveValor(t *testing.T) {
	f := ChequeForm{Valor: "150,75"}
	v, err := f.ResolveValor()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "150.75" {
		t.Fatalf("expected 150.75, got %s", v)
	}

	f2 := ChequeForm{Valor: " 80.50 "}
	v, err = f2.ResolveValor()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "80.5" {
		t.Fatalf("expected 80.5, got %s", v)
	}

	f3 := ChequeForm{Valor: "   "}
	if _, err := f3.ResolveValor(); !errors.Is(err, ErrValorInvalido) {
		t.Fatalf("expected ErrValorInvalido, got %v", err)
	}

	f4 := ChequeForm{Valor: "abc"}
	if _, err := f4.ResolveValor(); !errors.Is(err, ErrValorInvalido) {
		t.Fatalf("expected ErrValorInvalido, got %v", err)
	}
}
