// Package payments holds the FilecoinPay domain model and the read-side
// services built on top of the chain gateway: account balances, rail
// enumeration, and settlement previews.
package payments

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Token identifies the fungible token a command operates on. It is resolved
// once from configuration; downstream code never re-parses a symbol.
type Token struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
}

// Account is the settled view of a party's funds held by the payments
// contract for one token. All values come from a single contract read.
type Account struct {
	Owner             common.Address
	FundedUntilEpoch  *big.Int
	CurrentFunds      *big.Int
	AvailableFunds    *big.Int
	CurrentLockupRate *big.Int
}

// LockedAmount is the portion of CurrentFunds reserved against rail
// obligations.
func (a Account) LockedAmount() *big.Int {
	return new(big.Int).Sub(a.CurrentFunds, a.AvailableFunds)
}

// FullyWithdrawable reports whether no active rail constrains the funds.
func (a Account) FullyWithdrawable() bool {
	return a.CurrentLockupRate.Sign() == 0
}

// LockupUnbounded reports whether FundedUntilEpoch carries the contract's
// max-uint256 sentinel, meaning no lockup horizon applies.
func (a Account) LockupUnbounded() bool {
	return a.FundedUntilEpoch.Cmp(math.MaxBig256) == 0
}

// RailSummary is one entry of a rail enumeration. Enumeration order is the
// contract's; it carries no meaning but is preserved per invocation.
type RailSummary struct {
	ID         *big.Int
	Terminated bool
	EndEpoch   *big.Int
}

// Rail is the full on-chain record of one payment stream. The engine only
// reads rails; EndEpoch is advanced by external actors.
type Rail struct {
	ID           *big.Int
	Token        common.Address
	Payer        common.Address
	Payee        common.Address
	Operator     common.Address
	Validator    common.Address
	PaymentRate  *big.Int
	LockupPeriod *big.Int
	SettledUpTo  *big.Int
	EndEpoch     *big.Int
}

// Terminated reports whether the rail has been ended. A zero EndEpoch means
// the rail is still open.
func (r Rail) Terminated() bool { return r.EndEpoch.Sign() != 0 }

func (r Rail) Status() string {
	if r.Terminated() {
		return "terminated"
	}
	return "active"
}

// HasOperator reports whether an operator role is set (zero address = none).
func (r Rail) HasOperator() bool { return r.Operator != (common.Address{}) }

// HasValidator reports whether a validator role is set.
func (r Rail) HasValidator() bool { return r.Validator != (common.Address{}) }

// SettlementAmounts is the preview of what one settlement would move.
type SettlementAmounts struct {
	PaymentAmount *big.Int
	SettlementFee *big.Int
}

// Net is what the payee receives: payment minus protocol fee.
func (s SettlementAmounts) Net() *big.Int {
	return new(big.Int).Sub(s.PaymentAmount, s.SettlementFee)
}

// Zero reports whether nothing is currently owed.
func (s SettlementAmounts) Zero() bool { return s.PaymentAmount.Sign() == 0 }
