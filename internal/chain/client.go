// Package chain is the gateway to the FilecoinPay contract: typed read
// calls, signed transaction submission, and confirmation waits over a
// JSON-RPC backend. Contract reverts are classified here, at the boundary.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/filpay/filpay/internal/config"
	"github.com/filpay/filpay/internal/payments"
)

// Client wraps go-ethereum and the generated FilecoinPay binding. A client
// without a signing key serves read-only commands; the write surface then
// fails before anything is submitted.
type Client struct {
	eth     *ethclient.Client
	pay     *FilecoinPay
	token   *erc20
	payAddr common.Address
	tok     payments.Token
	chainID *big.Int
	key     *ecdsa.PrivateKey

	// usePendingNonce orders transactions by the node's pending nonce
	// rather than the last-confirmed one: faster back-to-back submission,
	// at the risk of nonce gaps when a pending transaction fails.
	usePendingNonce bool
}

func NewClient(cfg *config.Config) (*Client, error) {
	eth, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	payAddr := common.HexToAddress(cfg.Chain.ContractAddress)
	pay, err := NewFilecoinPay(payAddr, eth)
	if err != nil {
		return nil, fmt.Errorf("bind payments contract: %w", err)
	}

	tok := cfg.TokenDescriptor()
	token, err := newERC20(tok.Address, eth)
	if err != nil {
		return nil, fmt.Errorf("bind token contract: %w", err)
	}

	c := &Client{
		eth:             eth,
		pay:             pay,
		token:           token,
		payAddr:         payAddr,
		tok:             tok,
		chainID:         big.NewInt(cfg.Chain.ChainID),
		usePendingNonce: cfg.Chain.UsePendingNonce,
	}

	if cfg.Chain.PrivateKey != "" {
		key, err := crypto.HexToECDSA(cfg.Chain.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		c.key = key
	}
	return c, nil
}

// Token returns the token descriptor this client is bound to.
func (c *Client) Token() payments.Token { return c.tok }

// HasSigner reports whether a signing key is configured.
func (c *Client) HasSigner() bool { return c.key != nil }

// Address returns the signing identity's address, or the zero address for a
// read-only client.
func (c *Client) Address() common.Address {
	if c.key == nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(c.key.PublicKey)
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// transactOpts builds *bind.TransactOpts signed by the configured key.
func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, fmt.Errorf("no signing key configured")
	}
	auth, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx
	if c.usePendingNonce {
		nonce, err := c.eth.PendingNonceAt(ctx, c.Address())
		if err != nil {
			return nil, fmt.Errorf("pending nonce: %w", err)
		}
		auth.Nonce = new(big.Int).SetUint64(nonce)
	}
	return auth, nil
}

// AccountInfo reads the settled account view for owner. One view call; the
// returned values are consistent as of the queried chain state.
func (c *Client) AccountInfo(ctx context.Context, owner common.Address) (payments.Account, error) {
	raw, err := c.pay.GetAccountInfoIfSettled(callOpts(ctx), c.tok.Address, owner)
	if err != nil {
		return payments.Account{}, wrapCallError("getAccountInfoIfSettled", err)
	}
	return payments.Account{
		Owner:             owner,
		FundedUntilEpoch:  raw.FundedUntilEpoch,
		CurrentFunds:      raw.CurrentFunds,
		AvailableFunds:    raw.AvailableFunds,
		CurrentLockupRate: raw.CurrentLockupRate,
	}, nil
}

// TokenBalance reads owner's wallet balance of the configured token.
func (c *Client) TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	bal, err := c.token.BalanceOf(callOpts(ctx), owner)
	if err != nil {
		return nil, wrapCallError("balanceOf", err)
	}
	return bal, nil
}

// Allowance reads how much of owner's tokens the payments contract may pull.
func (c *Client) Allowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	allowance, err := c.token.Allowance(callOpts(ctx), owner, c.payAddr)
	if err != nil {
		return nil, wrapCallError("allowance", err)
	}
	return allowance, nil
}

func railSummaries(raw []FilecoinPayRailInfo) []payments.RailSummary {
	out := make([]payments.RailSummary, len(raw))
	for i, r := range raw {
		out[i] = payments.RailSummary{
			ID:         r.RailId,
			Terminated: r.IsTerminated,
			EndEpoch:   r.EndEpoch,
		}
	}
	return out
}

// RailsAsPayer enumerates rails where payer pays, in contract order.
func (c *Client) RailsAsPayer(ctx context.Context, payer common.Address) ([]payments.RailSummary, error) {
	raw, err := c.pay.GetRailsForPayerAndToken(callOpts(ctx), payer, c.tok.Address)
	if err != nil {
		return nil, wrapCallError("getRailsForPayerAndToken", err)
	}
	return railSummaries(raw), nil
}

// RailsAsPayee enumerates rails where payee is paid, in contract order.
func (c *Client) RailsAsPayee(ctx context.Context, payee common.Address) ([]payments.RailSummary, error) {
	raw, err := c.pay.GetRailsForPayeeAndToken(callOpts(ctx), payee, c.tok.Address)
	if err != nil {
		return nil, wrapCallError("getRailsForPayeeAndToken", err)
	}
	return railSummaries(raw), nil
}

// Rail reads the full record for one rail id.
func (c *Client) Rail(ctx context.Context, id *big.Int) (payments.Rail, error) {
	raw, err := c.pay.GetRail(callOpts(ctx), id)
	if err != nil {
		return payments.Rail{}, wrapCallError("getRail", err)
	}
	return payments.Rail{
		ID:           id,
		Token:        raw.Token,
		Payer:        raw.From,
		Payee:        raw.To,
		Operator:     raw.Operator,
		Validator:    raw.Validator,
		PaymentRate:  raw.PaymentRate,
		LockupPeriod: raw.LockupPeriod,
		SettledUpTo:  raw.SettledUpTo,
		EndEpoch:     raw.EndEpoch,
	}, nil
}

// SettlementAmounts previews what settling the (payer, payee) pair would
// move. A view call; settledUpTo does not advance.
func (c *Client) SettlementAmounts(ctx context.Context, payer, payee common.Address) (payments.SettlementAmounts, error) {
	raw, err := c.pay.GetSettlementAmounts(callOpts(ctx), c.tok.Address, payer, payee)
	if err != nil {
		return payments.SettlementAmounts{}, wrapCallError("getSettlementAmounts", err)
	}
	return payments.SettlementAmounts{
		PaymentAmount: raw.PaymentAmount,
		SettlementFee: raw.SettlementFee,
	}, nil
}

// Settle submits a settlement transaction for payer's rails toward the
// signing identity. The caller confirms separately.
func (c *Client) Settle(ctx context.Context, payer common.Address) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	tx, err := c.pay.Settle(opts, c.tok.Address, payer)
	if err != nil {
		return nil, wrapCallError("settle", err)
	}
	return tx, nil
}

// Deposit submits a deposit of amount into the payments contract for the
// signing identity.
func (c *Client) Deposit(ctx context.Context, amount *big.Int) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	tx, err := c.pay.Deposit(opts, c.tok.Address, c.Address(), amount)
	if err != nil {
		return nil, wrapCallError("deposit", err)
	}
	return tx, nil
}

// Withdraw submits a withdrawal of amount to the signing identity.
func (c *Client) Withdraw(ctx context.Context, amount *big.Int) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	tx, err := c.pay.Withdraw(opts, c.tok.Address, amount)
	if err != nil {
		return nil, wrapCallError("withdraw", err)
	}
	return tx, nil
}

// WithdrawTo submits a withdrawal of amount to another recipient.
func (c *Client) WithdrawTo(ctx context.Context, to common.Address, amount *big.Int) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	tx, err := c.pay.WithdrawTo(opts, c.tok.Address, to, amount)
	if err != nil {
		return nil, wrapCallError("withdrawTo", err)
	}
	return tx, nil
}

// Approve submits an ERC-20 approval letting the payments contract pull
// amount from the signing identity's wallet.
func (c *Client) Approve(ctx context.Context, amount *big.Int) (*types.Transaction, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}
	tx, err := c.token.Approve(opts, c.payAddr, amount)
	if err != nil {
		return nil, wrapCallError("approve", err)
	}
	return tx, nil
}

// Confirm waits for tx to be mined. A transaction mined with failure status
// returns the receipt together with a *RevertError so callers keep the
// block and gas context.
func (c *Client) Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, &CallError{Op: "wait mined", Err: err}
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, &RevertError{
			TxHash:      tx.Hash(),
			BlockNumber: receipt.BlockNumber.Uint64(),
			GasUsed:     receipt.GasUsed,
		}
	}
	return receipt, nil
}
