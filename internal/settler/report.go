package settler

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FailureKind classifies why a rail failed within a batch run.
type FailureKind int

const (
	// FailureChainCall: a read or submission could not complete.
	FailureChainCall FailureKind = iota
	// FailureReverted: the settlement transaction mined with failure
	// status.
	FailureReverted
	// FailureAlreadySettled: another actor already advanced the rail. An
	// expected race, not a defect.
	FailureAlreadySettled
)

func (k FailureKind) String() string {
	switch k {
	case FailureChainCall:
		return "chain_call_failed"
	case FailureReverted:
		return "transaction_reverted"
	case FailureAlreadySettled:
		return "already_settled"
	default:
		return "unknown"
	}
}

func (k FailureKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *FailureKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "chain_call_failed":
		*k = FailureChainCall
	case "transaction_reverted":
		*k = FailureReverted
	case "already_settled":
		*k = FailureAlreadySettled
	default:
		return fmt.Errorf("unknown failure kind %q", s)
	}
	return nil
}

// Benign reports whether the failure is an expected race rather than an
// error worth alerting on.
func (k FailureKind) Benign() bool { return k == FailureAlreadySettled }

// SettledRail is one successfully settled (or, in preview mode,
// settleable) rail. TxHash and BlockNumber are zero in preview mode.
type SettledRail struct {
	RailID      *big.Int       `json:"railId"`
	Payer       common.Address `json:"payer"`
	Amount      *big.Int       `json:"amount"`
	Fee         *big.Int       `json:"fee"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
	GasUsed     uint64         `json:"gasUsed"`
}

// SkippedRail is a rail with nothing currently owed.
type SkippedRail struct {
	RailID *big.Int       `json:"railId"`
	Payer  common.Address `json:"payer"`
}

// FailedRail records a per-rail failure without aborting the batch.
type FailedRail struct {
	RailID *big.Int       `json:"railId"`
	Payer  common.Address `json:"payer"`
	Kind   FailureKind    `json:"kind"`
	Err    string         `json:"error"`
}

// Report is the aggregated outcome of one batch run. Every rail id from the
// payee enumeration lands in exactly one of the three sequences, in
// enumeration order.
type Report struct {
	Payee   common.Address `json:"payee"`
	Preview bool           `json:"preview"`

	Settled []SettledRail `json:"settled"`
	Skipped []SkippedRail `json:"skipped"`
	Failed  []FailedRail  `json:"failed"`

	TotalAmount *big.Int `json:"totalAmount"`
	TotalFees   *big.Int `json:"totalFees"`
	TotalNet    *big.Int `json:"totalNet"`
}

func newReport(payee common.Address, preview bool) *Report {
	return &Report{
		Payee:       payee,
		Preview:     preview,
		Settled:     []SettledRail{},
		Skipped:     []SkippedRail{},
		Failed:      []FailedRail{},
		TotalAmount: new(big.Int),
		TotalFees:   new(big.Int),
		TotalNet:    new(big.Int),
	}
}

// Processed is the number of rails the run classified.
func (r *Report) Processed() int {
	return len(r.Settled) + len(r.Skipped) + len(r.Failed)
}

// finalize computes the aggregate totals from the settled entries.
func (r *Report) finalize() {
	for _, s := range r.Settled {
		r.TotalAmount.Add(r.TotalAmount, s.Amount)
		r.TotalFees.Add(r.TotalFees, s.Fee)
	}
	r.TotalNet.Sub(r.TotalAmount, r.TotalFees)
}
