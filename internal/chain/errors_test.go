package chain

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/filpay/filpay/internal/payments"
)

// fakeDataError mimics the structured error geth's RPC client returns for a
// contract revert carrying custom-error data.
type fakeDataError struct {
	msg  string
	data interface{}
}

func (e *fakeDataError) Error() string          { return e.msg }
func (e *fakeDataError) ErrorData() interface{} { return e.data }

// revertData builds custom-error revert data: 4-byte selector plus one
// abi-encoded uint256 argument.
func revertData(selector []byte, railID int64) string {
	arg := common.LeftPadBytes(big.NewInt(railID).Bytes(), 32)
	return hexutil.Encode(append(append([]byte{}, selector...), arg...))
}

func TestWrapCallError_RailInactiveOrSettled(t *testing.T) {
	cause := &fakeDataError{msg: "execution reverted", data: revertData(selRailInactiveOrSettled, 7)}
	err := wrapCallError("settle", cause)

	if !errors.Is(err, payments.ErrAlreadySettled) {
		t.Fatalf("got %v, want ErrAlreadySettled", err)
	}
	if errors.Is(err, payments.ErrRailNotFound) {
		t.Error("must not also match ErrRailNotFound")
	}
}

func TestWrapCallError_RailNotFound(t *testing.T) {
	cause := &fakeDataError{msg: "execution reverted", data: revertData(selRailNotFound, 7)}
	err := wrapCallError("get rail", cause)

	if !errors.Is(err, payments.ErrRailNotFound) {
		t.Fatalf("got %v, want ErrRailNotFound", err)
	}
}

func TestWrapCallError_WrappedDataError(t *testing.T) {
	cause := fmt.Errorf("call contract: %w",
		&fakeDataError{msg: "execution reverted", data: revertData(selRailInactiveOrSettled, 3)})
	if err := wrapCallError("settle", cause); !errors.Is(err, payments.ErrAlreadySettled) {
		t.Fatalf("selector must be found through wrapping, got %v", err)
	}
}

func TestWrapCallError_UnknownSelector(t *testing.T) {
	cause := &fakeDataError{msg: "execution reverted", data: "0xdeadbeef"}
	err := wrapCallError("settle", cause)

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("unknown selector must wrap as CallError, got %T", err)
	}
	if errors.Is(err, payments.ErrAlreadySettled) || errors.Is(err, payments.ErrRailNotFound) {
		t.Error("unknown selector must not match a domain sentinel")
	}
}

func TestWrapCallError_MessageTextIsIgnored(t *testing.T) {
	// Classification is by selector only; a matching message without revert
	// data must not map to a sentinel.
	cause := errors.New("execution reverted: RailInactiveOrSettled(7)")
	if err := wrapCallError("settle", cause); errors.Is(err, payments.ErrAlreadySettled) {
		t.Fatal("message text must never classify a revert")
	}
}

func TestWrapCallError_MalformedData(t *testing.T) {
	for _, data := range []interface{}{nil, "not-hex", "0x01", 42} {
		cause := &fakeDataError{msg: "execution reverted", data: data}
		err := wrapCallError("settle", cause)
		var callErr *CallError
		if !errors.As(err, &callErr) {
			t.Errorf("data %v: got %T, want CallError", data, err)
		}
	}
}

func TestCallError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapCallError("account info", cause)
	if !errors.Is(err, cause) {
		t.Fatal("CallError must unwrap to its cause")
	}
	if got := err.Error(); got != "account info: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRevertError_Message(t *testing.T) {
	err := &RevertError{
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: 4200,
		GasUsed:     50000,
	}
	var target *RevertError
	if !errors.As(fmt.Errorf("confirm: %w", err), &target) {
		t.Fatal("RevertError must survive wrapping")
	}
	if target.BlockNumber != 4200 {
		t.Errorf("BlockNumber = %d, want 4200", target.BlockNumber)
	}
}
