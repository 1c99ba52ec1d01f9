package payments

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func TestRailRegistry_ListPreservesEnumerationOrder(t *testing.T) {
	fc := newFakeChain()
	fc.asPayee = []RailSummary{
		{ID: big.NewInt(7), EndEpoch: big.NewInt(0)},
		{ID: big.NewInt(3), EndEpoch: big.NewInt(0)},
		{ID: big.NewInt(12), Terminated: true, EndEpoch: big.NewInt(5000)},
	}
	reg := NewRailRegistry(fc, testToken)

	got, err := reg.ListAsPayee(context.Background(), testPayee)
	if err != nil {
		t.Fatalf("ListAsPayee: %v", err)
	}
	want := []int64{7, 3, 12}
	if len(got) != len(want) {
		t.Fatalf("got %d rails, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID.Int64() != id {
			t.Errorf("rail[%d] = %s, want %d", i, got[i].ID, id)
		}
	}
}

func TestRailRegistry_Get(t *testing.T) {
	fc := newFakeChain()
	fc.addRail(7, testToken.Address, false)
	reg := NewRailRegistry(fc, testToken)

	rail, err := reg.Get(context.Background(), big.NewInt(7))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rail.Payer != testPayer || rail.Payee != testPayee {
		t.Errorf("unexpected parties: payer=%s payee=%s", rail.Payer.Hex(), rail.Payee.Hex())
	}
	if rail.Terminated() {
		t.Error("zero end epoch must classify as active")
	}
	if rail.Status() != "active" {
		t.Errorf("Status = %q, want active", rail.Status())
	}
}

func TestRailRegistry_Get_Terminated(t *testing.T) {
	fc := newFakeChain()
	fc.addRail(9, testToken.Address, true)
	reg := NewRailRegistry(fc, testToken)

	rail, err := reg.Get(context.Background(), big.NewInt(9))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !rail.Terminated() {
		t.Error("nonzero end epoch must classify as terminated")
	}
}

func TestRailRegistry_Get_TokenMismatchIsNotFound(t *testing.T) {
	fc := newFakeChain()
	fc.addRail(4, otherToken, false)
	reg := NewRailRegistry(fc, testToken)

	_, err := reg.Get(context.Background(), big.NewInt(4))
	if !errors.Is(err, ErrRailNotFound) {
		t.Fatalf("Get with mismatched token: got %v, want ErrRailNotFound", err)
	}
}

func TestRailRegistry_Get_Missing(t *testing.T) {
	reg := NewRailRegistry(newFakeChain(), testToken)
	_, err := reg.Get(context.Background(), big.NewInt(999))
	if !errors.Is(err, ErrRailNotFound) {
		t.Fatalf("Get missing rail: got %v, want ErrRailNotFound", err)
	}
}

func TestRail_Roles(t *testing.T) {
	fc := newFakeChain()
	rail := fc.addRail(1, testToken.Address, false)
	if rail.HasOperator() || rail.HasValidator() {
		t.Error("zero addresses must report no operator/validator")
	}
	rail.Operator = testPayee
	if !rail.HasOperator() {
		t.Error("nonzero operator must report present")
	}
}
