package payments

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RailReader is the slice of the chain gateway the registry needs.
type RailReader interface {
	RailsAsPayer(ctx context.Context, payer common.Address) ([]RailSummary, error)
	RailsAsPayee(ctx context.Context, payee common.Address) ([]RailSummary, error)
	Rail(ctx context.Context, id *big.Int) (Rail, error)
}

// RailRegistry enumerates a party's rails and fetches full rail records.
// Classification (active vs terminated) is purely a function of the fetched
// record; no state is tracked here.
type RailRegistry struct {
	reader RailReader
	token  Token
}

func NewRailRegistry(reader RailReader, token Token) *RailRegistry {
	return &RailRegistry{reader: reader, token: token}
}

// ListAsPayer returns the ids of rails where addr pays, in the contract's
// enumeration order.
func (r *RailRegistry) ListAsPayer(ctx context.Context, addr common.Address) ([]RailSummary, error) {
	rails, err := r.reader.RailsAsPayer(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("list rails as payer: %w", err)
	}
	return rails, nil
}

// ListAsPayee returns the ids of rails where addr is paid, in the
// contract's enumeration order.
func (r *RailRegistry) ListAsPayee(ctx context.Context, addr common.Address) ([]RailSummary, error) {
	rails, err := r.reader.RailsAsPayee(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("list rails as payee: %w", err)
	}
	return rails, nil
}

// Get fetches the full record for one rail id. Rails are keyed globally by
// id on chain; a rail recorded against a different token than the
// configured one does not exist as far as this registry is concerned.
func (r *RailRegistry) Get(ctx context.Context, id *big.Int) (Rail, error) {
	rail, err := r.reader.Rail(ctx, id)
	if err != nil {
		return Rail{}, fmt.Errorf("rail %s: %w", id, err)
	}
	if rail.Token != r.token.Address {
		return Rail{}, fmt.Errorf("rail %s: token %s: %w", id, rail.Token.Hex(), ErrRailNotFound)
	}
	return rail, nil
}
