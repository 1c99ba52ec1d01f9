package history

import (
	"context"
	"math/big"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/filpay/filpay/internal/settler"
)

var testPayee = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func makeReport(netAmount int64) *settler.Report {
	return &settler.Report{
		Payee: testPayee,
		Settled: []settler.SettledRail{{
			RailID: big.NewInt(1),
			Payer:  common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"),
			Amount: big.NewInt(netAmount),
			Fee:    big.NewInt(0),
		}},
		Skipped:     []settler.SkippedRail{},
		Failed:      []settler.FailedRail{},
		TotalAmount: big.NewInt(netAmount),
		TotalFees:   big.NewInt(0),
		TotalNet:    big.NewInt(netAmount),
	}
}

func TestStore_AppendAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, net := range []int64{100, 200, 300} {
		if err := store.Append(ctx, makeReport(net)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := store.Recent(ctx, testPayee, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// Newest first.
	want := []int64{300, 200, 100}
	for i, w := range want {
		if got := entries[i].Report.TotalNet.Int64(); got != w {
			t.Errorf("entry[%d].TotalNet = %d, want %d", i, got, w)
		}
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("entries must carry a timestamp")
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		if err := store.Append(ctx, makeReport(i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	entries, err := store.Recent(ctx, testPayee, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Report.TotalNet.Int64() != 5 || entries[1].Report.TotalNet.Int64() != 4 {
		t.Errorf("got %d, %d; want newest two (5, 4)",
			entries[0].Report.TotalNet.Int64(), entries[1].Report.TotalNet.Int64())
	}
}

func TestStore_TrimsToMaxEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := int64(0); i < maxEntries+20; i++ {
		if err := store.Append(ctx, makeReport(i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	entries, err := store.Recent(ctx, testPayee, maxEntries*2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != maxEntries {
		t.Fatalf("entries = %d, want %d after trim", len(entries), maxEntries)
	}
	// The oldest surviving entry is the 21st appended.
	if got := entries[len(entries)-1].Report.TotalNet.Int64(); got != 20 {
		t.Errorf("oldest entry TotalNet = %d, want 20", got)
	}
}

func TestStore_RoundTripsFailureKinds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := makeReport(100)
	report.Failed = []settler.FailedRail{{
		RailID: big.NewInt(9),
		Kind:   settler.FailureAlreadySettled,
		Err:    "rail inactive or already settled",
	}}
	if err := store.Append(ctx, report); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := store.Recent(ctx, testPayee, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if got := entries[0].Report.Failed[0].Kind; got != settler.FailureAlreadySettled {
		t.Errorf("Kind = %s, want %s", got, settler.FailureAlreadySettled)
	}
}

func TestStore_RecentEmptyForUnknownPayee(t *testing.T) {
	store := newTestStore(t)
	entries, err := store.Recent(context.Background(), common.HexToAddress("0x1"), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestStore_JournalsPerPayee(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	other := common.HexToAddress("0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC")
	if err := store.Append(ctx, makeReport(100)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	otherReport := makeReport(999)
	otherReport.Payee = other
	if err := store.Append(ctx, otherReport); err != nil {
		t.Fatalf("Append: %v", err)
	}

	for payee, want := range map[common.Address]int64{testPayee: 100, other: 999} {
		entries, err := store.Recent(ctx, payee, 10)
		if err != nil {
			t.Fatalf("Recent(%s): %v", payee.Hex(), err)
		}
		if len(entries) != 1 {
			t.Fatalf("Recent(%s) = %d entries, want 1", payee.Hex(), len(entries))
		}
		if got := entries[0].Report.TotalNet.Int64(); got != want {
			t.Errorf("Recent(%s).TotalNet = %d, want %d", payee.Hex(), got, want)
		}
	}
}
