package payments

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// FundingGateway is the slice of the chain gateway the funding flows need:
// reads for the pre-checks, plus the deposit/withdraw/approve write path.
type FundingGateway interface {
	AccountInfo(ctx context.Context, owner common.Address) (Account, error)
	TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner common.Address) (*big.Int, error)
	Approve(ctx context.Context, amount *big.Int) (*types.Transaction, error)
	Deposit(ctx context.Context, amount *big.Int) (*types.Transaction, error)
	Withdraw(ctx context.Context, amount *big.Int) (*types.Transaction, error)
	WithdrawTo(ctx context.Context, to common.Address, amount *big.Int) (*types.Transaction, error)
	Confirm(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// FundingService moves tokens into and out of the payments contract for the
// signing identity. Pre-checks fail fast before anything is submitted.
type FundingService struct {
	gw    FundingGateway
	owner common.Address
	log   *zap.Logger
}

func NewFundingService(gw FundingGateway, owner common.Address, log *zap.Logger) *FundingService {
	return &FundingService{gw: gw, owner: owner, log: log}
}

// DepositResult reports the transactions a deposit produced. Approval is
// nil when the existing allowance already covered the amount.
type DepositResult struct {
	Approval *types.Receipt
	Deposit  *types.Receipt
}

// Deposit moves amount from the wallet into the payments contract. The
// wallet balance is checked first; an approve is submitted and confirmed
// only if the current allowance falls short.
func (s *FundingService) Deposit(ctx context.Context, amount *big.Int) (*DepositResult, error) {
	balance, err := s.gw.TokenBalance(ctx, s.owner)
	if err != nil {
		return nil, fmt.Errorf("wallet balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return nil, fmt.Errorf("wallet balance %s below deposit %s: %w", balance, amount, ErrInsufficientFunds)
	}

	result := &DepositResult{}

	allowance, err := s.gw.Allowance(ctx, s.owner)
	if err != nil {
		return nil, fmt.Errorf("allowance: %w", err)
	}
	if allowance.Cmp(amount) < 0 {
		s.log.Info("allowance below deposit, approving",
			zap.String("allowance", allowance.String()),
			zap.String("amount", amount.String()),
		)
		tx, err := s.gw.Approve(ctx, amount)
		if err != nil {
			return nil, fmt.Errorf("approve: %w", err)
		}
		receipt, err := s.gw.Confirm(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("approve %s: %w", tx.Hash().Hex(), err)
		}
		result.Approval = receipt
	}

	tx, err := s.gw.Deposit(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	receipt, err := s.gw.Confirm(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("deposit %s: %w", tx.Hash().Hex(), err)
	}
	result.Deposit = receipt

	s.log.Info("deposit confirmed",
		zap.String("tx", tx.Hash().Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)
	return result, nil
}

// Withdraw moves amount of available funds out of the contract, to the
// signing identity or, when to is non-nil, to another recipient. Available
// funds are checked against the settled account view first.
func (s *FundingService) Withdraw(ctx context.Context, amount *big.Int, to *common.Address) (*types.Receipt, error) {
	acct, err := s.gw.AccountInfo(ctx, s.owner)
	if err != nil {
		return nil, fmt.Errorf("account info: %w", err)
	}
	if acct.AvailableFunds.Cmp(amount) < 0 {
		return nil, fmt.Errorf("available funds %s below withdrawal %s: %w", acct.AvailableFunds, amount, ErrInsufficientFunds)
	}

	var tx *types.Transaction
	if to != nil {
		tx, err = s.gw.WithdrawTo(ctx, *to, amount)
	} else {
		tx, err = s.gw.Withdraw(ctx, amount)
	}
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	receipt, err := s.gw.Confirm(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("withdraw %s: %w", tx.Hash().Hex(), err)
	}
	s.log.Info("withdrawal confirmed",
		zap.String("tx", tx.Hash().Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)
	return receipt, nil
}
