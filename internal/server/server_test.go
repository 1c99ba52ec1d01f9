package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/history"
	"github.com/filpay/filpay/internal/payments"
	"github.com/filpay/filpay/internal/settler"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var (
	testToken = payments.Token{
		Address:  common.HexToAddress("0x80B98d3aa09ffff255c3ba4A241111Ff1262F045"),
		Symbol:   "USDFC",
		Decimals: 18,
	}
	testPayer = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	testPayee = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
)

type fakeChain struct {
	account payments.Account
	balance *big.Int
	rails   map[string]payments.Rail
	asPayee []payments.RailSummary
	asPayer []payments.RailSummary
	amounts payments.SettlementAmounts
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		balance: new(big.Int),
		rails:   map[string]payments.Rail{},
	}
}

func (f *fakeChain) AccountInfo(ctx context.Context, owner common.Address) (payments.Account, error) {
	return f.account, nil
}

func (f *fakeChain) TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeChain) RailsAsPayer(ctx context.Context, payer common.Address) ([]payments.RailSummary, error) {
	return f.asPayer, nil
}

func (f *fakeChain) RailsAsPayee(ctx context.Context, payee common.Address) ([]payments.RailSummary, error) {
	return f.asPayee, nil
}

func (f *fakeChain) Rail(ctx context.Context, id *big.Int) (payments.Rail, error) {
	rail, ok := f.rails[id.String()]
	if !ok {
		return payments.Rail{}, fmt.Errorf("rail %s: %w", id, payments.ErrRailNotFound)
	}
	return rail, nil
}

func (f *fakeChain) SettlementAmounts(ctx context.Context, payer, payee common.Address) (payments.SettlementAmounts, error) {
	return f.amounts, nil
}

func newTestServer(t *testing.T, f *fakeChain, hist *history.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := New(
		payments.NewAccountService(f, testToken),
		payments.NewRailRegistry(f, testToken),
		payments.NewCalculator(f),
		hist,
		zap.NewNop(),
	)
	return srv.Router()
}

func get(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s: bad json: %v", path, err)
		}
	}
	return w, body
}

// ── routes ────────────────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGetAccount(t *testing.T) {
	f := newFakeChain()
	f.account = payments.Account{
		Owner:             testPayer,
		FundedUntilEpoch:  big.NewInt(9000),
		CurrentFunds:      big.NewInt(1000),
		AvailableFunds:    big.NewInt(400),
		CurrentLockupRate: big.NewInt(3),
	}
	router := newTestServer(t, f, nil)

	w, body := get(t, router, "/api/account/"+testPayer.Hex())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["lockedAmount"] != "600" {
		t.Errorf("lockedAmount = %v, want 600", body["lockedAmount"])
	}
	if body["fundedUntilEpoch"] != "9000" {
		t.Errorf("fundedUntilEpoch = %v, want 9000", body["fundedUntilEpoch"])
	}
	if body["fullyWithdrawable"] != false {
		t.Errorf("fullyWithdrawable = %v, want false", body["fullyWithdrawable"])
	}
}

func TestGetAccount_InvalidAddress(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/api/account/xyz")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetRail(t *testing.T) {
	f := newFakeChain()
	f.rails["7"] = payments.Rail{
		ID:           big.NewInt(7),
		Token:        testToken.Address,
		Payer:        testPayer,
		Payee:        testPayee,
		PaymentRate:  big.NewInt(100),
		LockupPeriod: big.NewInt(2880),
		SettledUpTo:  big.NewInt(1000),
		EndEpoch:     big.NewInt(0),
	}
	router := newTestServer(t, f, nil)

	w, body := get(t, router, "/api/rails/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "active" {
		t.Errorf("status = %v, want active", body["status"])
	}
	if body["payer"] != testPayer.Hex() {
		t.Errorf("payer = %v, want %s", body["payer"], testPayer.Hex())
	}
}

func TestGetRail_NotFound(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/api/rails/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetRail_BadID(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/api/rails/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListRails(t *testing.T) {
	f := newFakeChain()
	f.asPayee = []payments.RailSummary{
		{ID: big.NewInt(7), EndEpoch: big.NewInt(0)},
		{ID: big.NewInt(3), Terminated: true, EndEpoch: big.NewInt(5000)},
	}
	router := newTestServer(t, f, nil)

	w, body := get(t, router, "/api/rails?address="+testPayee.Hex())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	rails, ok := body["rails"].([]any)
	if !ok || len(rails) != 2 {
		t.Fatalf("rails = %v, want 2 entries", body["rails"])
	}
	first := rails[0].(map[string]any)
	if first["railId"] != "7" {
		t.Errorf("rails[0].railId = %v, want 7", first["railId"])
	}
}

func TestListRails_BadRole(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/api/rails?address="+testPayee.Hex()+"&role=observer")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPreviewSettlement(t *testing.T) {
	f := newFakeChain()
	f.amounts = payments.SettlementAmounts{
		PaymentAmount: big.NewInt(1000),
		SettlementFee: big.NewInt(10),
	}
	router := newTestServer(t, f, nil)

	path := fmt.Sprintf("/api/settlement/preview?payer=%s&payee=%s", testPayer.Hex(), testPayee.Hex())
	w, body := get(t, router, path)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["netAmount"] != "990" {
		t.Errorf("netAmount = %v, want 990", body["netAmount"])
	}
}

func TestRecentSettlements_NotConfigured(t *testing.T) {
	router := newTestServer(t, newFakeChain(), nil)
	w, _ := get(t, router, "/api/settlements/"+testPayee.Hex())
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 without a journal", w.Code)
	}
}

func TestRecentSettlements(t *testing.T) {
	mr := miniredis.RunT(t)
	hist := history.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	report := &settler.Report{
		Payee:       testPayee,
		Settled:     []settler.SettledRail{},
		Skipped:     []settler.SkippedRail{},
		Failed:      []settler.FailedRail{},
		TotalAmount: big.NewInt(100),
		TotalFees:   big.NewInt(1),
		TotalNet:    big.NewInt(99),
	}
	if err := hist.Append(context.Background(), report); err != nil {
		t.Fatalf("Append: %v", err)
	}

	router := newTestServer(t, newFakeChain(), hist)
	w, body := get(t, router, "/api/settlements/"+testPayee.Hex())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	entries, ok := body["entries"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("entries = %v, want 1", body["entries"])
	}
}
