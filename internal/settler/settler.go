// Package settler drives settlement across all of a payee's rails,
// isolating per-rail failures so one bad rail never aborts the batch.
package settler

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/chain"
	"github.com/filpay/filpay/internal/payments"
)

// Submitter is the write side of the chain gateway the settler needs.
type Submitter interface {
	Settle(ctx context.Context, payer common.Address) (*types.Transaction, error)
	Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Event is one per-rail outcome, streamed to the progress callback as it
// happens. Presentation consumes these; the settler itself prints nothing.
type Event struct {
	RailID  *big.Int
	Payer   common.Address
	Outcome Outcome
	Amounts payments.SettlementAmounts
	Receipt *types.Receipt
	Err     error
}

// Outcome is the terminal state of one rail within a batch run.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomePreviewed
	OutcomeSettled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomePreviewed:
		return "previewed"
	case OutcomeSettled:
		return "settled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress receives per-rail events during a batch run. May be nil.
type Progress func(Event)

// Settler is the batch settlement orchestrator for one payee identity.
//
// Rails are processed sequentially: execute-mode settlements are signed by
// the same identity, and the sender's nonce stream must stay serialized.
type Settler struct {
	rails     *payments.RailRegistry
	calc      *payments.Calculator
	submitter Submitter
	payee     common.Address
	log       *zap.Logger
	progress  Progress
}

func New(rails *payments.RailRegistry, calc *payments.Calculator, submitter Submitter, payee common.Address, log *zap.Logger) *Settler {
	return &Settler{
		rails:     rails,
		calc:      calc,
		submitter: submitter,
		payee:     payee,
		log:       log,
	}
}

// OnProgress registers a callback receiving per-rail events.
func (s *Settler) OnProgress(fn Progress) { s.progress = fn }

func (s *Settler) emit(ev Event) {
	if s.progress != nil {
		s.progress(ev)
	}
}

// SettleAll processes every rail where the payee identity is paid. In
// preview mode amounts are computed but the write path is never touched.
//
// The only catastrophic failure is the initial enumeration; after that,
// every error is caught at the rail boundary and recorded in the report.
// Cancellation is honored between rails: an already-submitted settlement is
// still confirmed so no rail is left half-processed.
func (s *Settler) SettleAll(ctx context.Context, preview bool) (*Report, error) {
	summaries, err := s.rails.ListAsPayee(ctx, s.payee)
	if err != nil {
		return nil, fmt.Errorf("enumerate payee rails: %w", err)
	}

	s.log.Info("batch settlement started",
		zap.String("payee", s.payee.Hex()),
		zap.Int("rails", len(summaries)),
		zap.Bool("preview", preview),
	)

	report := newReport(s.payee, preview)
	for _, summary := range summaries {
		if err := ctx.Err(); err != nil {
			report.finalize()
			return report, fmt.Errorf("batch interrupted after %d of %d rails: %w",
				report.Processed(), len(summaries), err)
		}
		s.processRail(ctx, summary.ID, report, preview)
	}
	report.finalize()

	s.log.Info("batch settlement finished",
		zap.Int("settled", len(report.Settled)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
		zap.String("totalNet", report.TotalNet.String()),
	)
	return report, nil
}

// processRail takes one rail from Pending to exactly one of Skipped,
// Previewed, Settled, or Failed.
func (s *Settler) processRail(ctx context.Context, id *big.Int, report *Report, preview bool) {
	// Settlement is keyed by (payer, payee), so the payer has to be
	// recovered from the rail record first.
	rail, err := s.rails.Get(ctx, id)
	if err != nil {
		s.fail(report, id, common.Address{}, err)
		return
	}

	amounts, err := s.calc.Preview(ctx, rail.Payer, s.payee)
	if err != nil {
		s.fail(report, id, rail.Payer, err)
		return
	}

	if amounts.Zero() {
		report.Skipped = append(report.Skipped, SkippedRail{RailID: id, Payer: rail.Payer})
		s.emit(Event{RailID: id, Payer: rail.Payer, Outcome: OutcomeSkipped})
		return
	}

	if preview {
		report.Settled = append(report.Settled, SettledRail{
			RailID: id,
			Payer:  rail.Payer,
			Amount: amounts.PaymentAmount,
			Fee:    amounts.SettlementFee,
		})
		s.emit(Event{RailID: id, Payer: rail.Payer, Outcome: OutcomePreviewed, Amounts: amounts})
		return
	}

	tx, err := s.submitter.Settle(ctx, rail.Payer)
	if err != nil {
		s.fail(report, id, rail.Payer, err)
		return
	}

	// The submission is in flight; let it reach a terminal state even if
	// the batch is being cancelled, then stop before the next rail.
	receipt, err := s.submitter.Confirm(context.WithoutCancel(ctx), tx)
	if err != nil {
		s.fail(report, id, rail.Payer, err)
		return
	}

	report.Settled = append(report.Settled, SettledRail{
		RailID:      id,
		Payer:       rail.Payer,
		Amount:      amounts.PaymentAmount,
		Fee:         amounts.SettlementFee,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	})
	s.emit(Event{RailID: id, Payer: rail.Payer, Outcome: OutcomeSettled, Amounts: amounts, Receipt: receipt})
	s.log.Info("rail settled",
		zap.String("rail", id.String()),
		zap.String("payer", rail.Payer.Hex()),
		zap.String("amount", amounts.PaymentAmount.String()),
		zap.String("tx", tx.Hash().Hex()),
	)
}

// fail records a per-rail failure and keeps the batch going.
func (s *Settler) fail(report *Report, id *big.Int, payer common.Address, err error) {
	kind := classifyFailure(err)
	report.Failed = append(report.Failed, FailedRail{
		RailID: id,
		Payer:  payer,
		Kind:   kind,
		Err:    err.Error(),
	})
	s.emit(Event{RailID: id, Payer: payer, Outcome: OutcomeFailed, Err: err})

	if kind.Benign() {
		s.log.Info("rail already settled", zap.String("rail", id.String()))
		return
	}
	s.log.Warn("rail settlement failed",
		zap.String("rail", id.String()),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
}

func classifyFailure(err error) FailureKind {
	var reverted *chain.RevertError
	switch {
	case errors.Is(err, payments.ErrAlreadySettled):
		return FailureAlreadySettled
	case errors.As(err, &reverted):
		return FailureReverted
	default:
		return FailureChainCall
	}
}
