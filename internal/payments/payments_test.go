package payments

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// ── shared fixtures ───────────────────────────────────────────────────────────

var (
	testToken = Token{
		Address:  common.HexToAddress("0x80B98d3aa09ffff255c3ba4A241111Ff1262F045"),
		Symbol:   "USDFC",
		Decimals: 18,
	}
	otherToken = common.HexToAddress("0x2222222222222222222222222222222222222222")

	testPayer = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	testPayee = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
)

// fakeChain is an in-memory stand-in for the chain gateway's read side.
type fakeChain struct {
	accounts map[common.Address]Account
	balances map[common.Address]*big.Int
	rails    map[string]Rail
	asPayer  []RailSummary
	asPayee  []RailSummary
	amounts  SettlementAmounts

	err error // when set, every call fails with it
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		accounts: map[common.Address]Account{},
		balances: map[common.Address]*big.Int{},
		rails:    map[string]Rail{},
	}
}

func (f *fakeChain) AccountInfo(ctx context.Context, owner common.Address) (Account, error) {
	if f.err != nil {
		return Account{}, f.err
	}
	acct, ok := f.accounts[owner]
	if !ok {
		return Account{}, fmt.Errorf("no account for %s", owner.Hex())
	}
	return acct, nil
}

func (f *fakeChain) TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	bal, ok := f.balances[owner]
	if !ok {
		return new(big.Int), nil
	}
	return bal, nil
}

func (f *fakeChain) RailsAsPayer(ctx context.Context, payer common.Address) ([]RailSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.asPayer, nil
}

func (f *fakeChain) RailsAsPayee(ctx context.Context, payee common.Address) ([]RailSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.asPayee, nil
}

func (f *fakeChain) Rail(ctx context.Context, id *big.Int) (Rail, error) {
	if f.err != nil {
		return Rail{}, f.err
	}
	rail, ok := f.rails[id.String()]
	if !ok {
		return Rail{}, fmt.Errorf("rail %s: %w", id, ErrRailNotFound)
	}
	return rail, nil
}

func (f *fakeChain) SettlementAmounts(ctx context.Context, payer, payee common.Address) (SettlementAmounts, error) {
	if f.err != nil {
		return SettlementAmounts{}, f.err
	}
	return f.amounts, nil
}

func (f *fakeChain) addRail(id int64, token common.Address, terminated bool) Rail {
	endEpoch := big.NewInt(0)
	if terminated {
		endEpoch = big.NewInt(5000)
	}
	rail := Rail{
		ID:           big.NewInt(id),
		Token:        token,
		Payer:        testPayer,
		Payee:        testPayee,
		PaymentRate:  big.NewInt(100),
		LockupPeriod: big.NewInt(2880),
		SettledUpTo:  big.NewInt(1000),
		EndEpoch:     endEpoch,
	}
	f.rails[rail.ID.String()] = rail
	return rail
}

func unbounded() *big.Int { return new(big.Int).Set(math.MaxBig256) }
