package payments

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AccountReader is the slice of the chain gateway the balance tracker needs.
type AccountReader interface {
	AccountInfo(ctx context.Context, owner common.Address) (Account, error)
	TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error)
}

// AccountService resolves funded/locked/available balances for a party
// under the payments contract. Reads are single view calls; nothing is
// cached or retried.
type AccountService struct {
	reader AccountReader
	token  Token
}

func NewAccountService(reader AccountReader, token Token) *AccountService {
	return &AccountService{reader: reader, token: token}
}

func (s *AccountService) Token() Token { return s.token }

// Info returns the settled account view for owner.
func (s *AccountService) Info(ctx context.Context, owner common.Address) (Account, error) {
	acct, err := s.reader.AccountInfo(ctx, owner)
	if err != nil {
		return Account{}, fmt.Errorf("account info for %s: %w", owner.Hex(), err)
	}
	return acct, nil
}

// WalletBalance returns owner's plain token balance outside the contract.
func (s *AccountService) WalletBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	bal, err := s.reader.TokenBalance(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("token balance for %s: %w", owner.Hex(), err)
	}
	return bal, nil
}

// AccountDetail combines the contract account view with the wallet balance
// for the detailed balance display.
type AccountDetail struct {
	Account
	WalletBalance *big.Int
}

// Total is wallet balance plus funds held by the contract.
func (d AccountDetail) Total() *big.Int {
	return new(big.Int).Add(d.WalletBalance, d.CurrentFunds)
}

// Detail fetches the account view and the wallet balance. The two values
// are separate reads and are only combined for display.
func (s *AccountService) Detail(ctx context.Context, owner common.Address) (AccountDetail, error) {
	acct, err := s.Info(ctx, owner)
	if err != nil {
		return AccountDetail{}, err
	}
	bal, err := s.WalletBalance(ctx, owner)
	if err != nil {
		return AccountDetail{}, err
	}
	return AccountDetail{Account: acct, WalletBalance: bal}, nil
}
