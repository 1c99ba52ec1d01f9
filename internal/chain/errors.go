package chain

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/filpay/filpay/internal/payments"
)

// CallError wraps a read call or submission that could not complete
// (transport failure, contract rejection without a recognized reason).
type CallError struct {
	Op  string
	Err error
}

func (e *CallError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *CallError) Unwrap() error { return e.Err }

// RevertError reports a transaction that was mined with failure status. It
// carries the confirmation context so callers can still report block and
// gas.
type RevertError struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("transaction %s reverted in block %d", e.TxHash.Hex(), e.BlockNumber)
}

// Custom-error selectors of the FilecoinPay contract. Reverts are matched
// by 4-byte selector from the RPC error data, never by message text.
var (
	selRailInactiveOrSettled = crypto.Keccak256([]byte("RailInactiveOrSettled(uint256)"))[:4]
	selRailNotFound          = crypto.Keccak256([]byte("RailNotFound(uint256)"))[:4]
)

// wrapCallError maps a recognized contract revert onto its domain sentinel
// and wraps everything else as a CallError.
func wrapCallError(op string, err error) error {
	if sel, ok := revertSelector(err); ok {
		switch {
		case bytes.Equal(sel, selRailInactiveOrSettled):
			return fmt.Errorf("%s: %w", op, payments.ErrAlreadySettled)
		case bytes.Equal(sel, selRailNotFound):
			return fmt.Errorf("%s: %w", op, payments.ErrRailNotFound)
		}
	}
	return &CallError{Op: op, Err: err}
}

// revertSelector extracts the 4-byte custom-error selector from an RPC
// error's revert data, if present.
func revertSelector(err error) ([]byte, bool) {
	var de rpc.DataError
	if !errors.As(err, &de) {
		return nil, false
	}
	hexData, ok := de.ErrorData().(string)
	if !ok {
		return nil, false
	}
	data, decodeErr := hexutil.Decode(hexData)
	if decodeErr != nil || len(data) < 4 {
		return nil, false
	}
	return data[:4], true
}
