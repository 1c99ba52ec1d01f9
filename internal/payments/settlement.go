package payments

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// SettlementReader is the slice of the chain gateway the calculator needs.
type SettlementReader interface {
	SettlementAmounts(ctx context.Context, payer, payee common.Address) (SettlementAmounts, error)
}

// Calculator quantifies what a settlement between a payer and payee would
// move right now. It is a pure preview: calling it never advances
// settledUpTo, so repeated calls without an intervening settlement return
// the same amounts. It does not decide whether to execute.
type Calculator struct {
	reader SettlementReader
}

func NewCalculator(reader SettlementReader) *Calculator {
	return &Calculator{reader: reader}
}

// Preview returns the current payment amount and protocol fee for the
// (payer, payee) pair. A zero payment amount means nothing is owed, not an
// error.
func (c *Calculator) Preview(ctx context.Context, payer, payee common.Address) (SettlementAmounts, error) {
	amounts, err := c.reader.SettlementAmounts(ctx, payer, payee)
	if err != nil {
		return SettlementAmounts{}, fmt.Errorf("settlement amounts %s -> %s: %w", payer.Hex(), payee.Hex(), err)
	}
	if amounts.PaymentAmount.Sign() < 0 || amounts.SettlementFee.Sign() < 0 {
		return SettlementAmounts{}, fmt.Errorf("settlement amounts %s -> %s: negative value from contract", payer.Hex(), payee.Hex())
	}
	if amounts.SettlementFee.Cmp(amounts.PaymentAmount) > 0 {
		return SettlementAmounts{}, fmt.Errorf("settlement amounts %s -> %s: fee %s exceeds payment %s",
			payer.Hex(), payee.Hex(), amounts.SettlementFee, amounts.PaymentAmount)
	}
	return amounts, nil
}
