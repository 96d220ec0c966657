package regreport

import "testing"

func TestMoneyZeroIsCanonical(t *testing.T) {
	// A sum that cancels out must be the same value as a sum over nothing.
	sum := eur(0).Add(eur(70)).Sub(eur(70))
	if !sum.IsZero() {
		t.Fatalf("sum = %s, want zero", sum.Decimal())
	}
	if got := sum.Decimal().String(); got != "0" {
		t.Errorf("canonical zero renders as %q, want %q", got, "0")
	}
	if neg := eur(0).Neg(); neg.Decimal().String() != "0" {
		t.Errorf("negated zero renders as %q, want %q", neg.Decimal().String(), "0")
	}
	if !sum.Equal(eur(0)) {
		t.Errorf("cancelled sum is not equal to the plain zero")
	}
}

func TestMoneyWeakEmptyCurrency(t *testing.T) {
	got := M(0, "").Add(eur(5))
	if got.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", got.Currency())
	}
	if !got.Equal(eur(5)) {
		t.Errorf("value = %s, want 5", got.Decimal())
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("adding EUR to USD did not panic")
		}
	}()
	_ = eur(1).Add(M(1, "USD"))
}
