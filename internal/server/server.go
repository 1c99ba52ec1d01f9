// Package server exposes the read side of the rails engine over HTTP:
// account balances, rail enumeration, settlement previews, and the journal
// of past batch runs. Nothing here submits transactions.
package server

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/history"
	"github.com/filpay/filpay/internal/payments"
)

type Server struct {
	accounts *payments.AccountService
	rails    *payments.RailRegistry
	calc     *payments.Calculator
	hist     *history.Store // nil when redis is not configured
	log      *zap.Logger
}

func New(accounts *payments.AccountService, rails *payments.RailRegistry, calc *payments.Calculator, hist *history.Store, log *zap.Logger) *Server {
	return &Server{accounts: accounts, rails: rails, calc: calc, hist: hist, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	s.Register(r.Group("/api"))
	return r
}

// Register attaches the API routes to a router group.
func (s *Server) Register(r gin.IRouter) {
	r.GET("/account/:address", s.getAccount)
	r.GET("/account/:address/wallet", s.getWalletBalance)
	r.GET("/rails", s.listRails)
	r.GET("/rails/:id", s.getRail)
	r.GET("/settlement/preview", s.previewSettlement)
	r.GET("/settlements/:address", s.recentSettlements)
}

func parseAddress(c *gin.Context, raw string) (common.Address, bool) {
	if !common.IsHexAddress(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address: " + raw})
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

func (s *Server) chainError(c *gin.Context, err error) {
	if errors.Is(err, payments.ErrRailNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("chain read failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (s *Server) getAccount(c *gin.Context) {
	addr, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}
	acct, err := s.accounts.Info(c.Request.Context(), addr)
	if err != nil {
		s.chainError(c, err)
		return
	}

	token := s.accounts.Token()
	fundedUntil := acct.FundedUntilEpoch.String()
	if acct.LockupUnbounded() {
		fundedUntil = "unbounded"
	}
	c.JSON(http.StatusOK, gin.H{
		"address":                    addr.Hex(),
		"token":                      token.Address.Hex(),
		"symbol":                     token.Symbol,
		"fundedUntilEpoch":           fundedUntil,
		"currentFunds":               acct.CurrentFunds.String(),
		"currentFundsFormatted":      token.Format(acct.CurrentFunds),
		"availableFunds":             acct.AvailableFunds.String(),
		"availableFundsFormatted":    token.Format(acct.AvailableFunds),
		"lockedAmount":               acct.LockedAmount().String(),
		"lockedAmountFormatted":      token.Format(acct.LockedAmount()),
		"currentLockupRate":          acct.CurrentLockupRate.String(),
		"currentLockupRateFormatted": token.Format(acct.CurrentLockupRate),
		"fullyWithdrawable":          acct.FullyWithdrawable(),
	})
}

func (s *Server) getWalletBalance(c *gin.Context) {
	addr, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}
	balance, err := s.accounts.WalletBalance(c.Request.Context(), addr)
	if err != nil {
		s.chainError(c, err)
		return
	}
	token := s.accounts.Token()
	c.JSON(http.StatusOK, gin.H{
		"address":          addr.Hex(),
		"token":            token.Address.Hex(),
		"symbol":           token.Symbol,
		"balance":          balance.String(),
		"balanceFormatted": token.Format(balance),
	})
}

func (s *Server) listRails(c *gin.Context) {
	addr, ok := parseAddress(c, c.Query("address"))
	if !ok {
		return
	}

	var (
		summaries []payments.RailSummary
		err       error
	)
	role := c.DefaultQuery("role", "payee")
	switch role {
	case "payer":
		summaries, err = s.rails.ListAsPayer(c.Request.Context(), addr)
	case "payee":
		summaries, err = s.rails.ListAsPayee(c.Request.Context(), addr)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be payer or payee"})
		return
	}
	if err != nil {
		s.chainError(c, err)
		return
	}

	out := make([]gin.H, len(summaries))
	for i, sum := range summaries {
		out[i] = gin.H{
			"railId":     sum.ID.String(),
			"terminated": sum.Terminated,
			"endEpoch":   sum.EndEpoch.String(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"address": addr.Hex(), "role": role, "rails": out})
}

func (s *Server) getRail(c *gin.Context) {
	id, ok := new(big.Int).SetString(c.Param("id"), 10)
	if !ok || id.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rail id: " + c.Param("id")})
		return
	}
	rail, err := s.rails.Get(c.Request.Context(), id)
	if err != nil {
		s.chainError(c, err)
		return
	}
	token := s.accounts.Token()
	c.JSON(http.StatusOK, gin.H{
		"railId":               rail.ID.String(),
		"payer":                rail.Payer.Hex(),
		"payee":                rail.Payee.Hex(),
		"operator":             rail.Operator.Hex(),
		"validator":            rail.Validator.Hex(),
		"paymentRate":          rail.PaymentRate.String(),
		"paymentRateFormatted": token.Format(rail.PaymentRate),
		"lockupPeriod":         rail.LockupPeriod.String(),
		"settledUpTo":          rail.SettledUpTo.String(),
		"endEpoch":             rail.EndEpoch.String(),
		"status":               rail.Status(),
	})
}

func (s *Server) previewSettlement(c *gin.Context) {
	payer, ok := parseAddress(c, c.Query("payer"))
	if !ok {
		return
	}
	payee, ok := parseAddress(c, c.Query("payee"))
	if !ok {
		return
	}
	amounts, err := s.calc.Preview(c.Request.Context(), payer, payee)
	if err != nil {
		s.chainError(c, err)
		return
	}
	token := s.accounts.Token()
	c.JSON(http.StatusOK, gin.H{
		"payer":                  payer.Hex(),
		"payee":                  payee.Hex(),
		"paymentAmount":          amounts.PaymentAmount.String(),
		"paymentAmountFormatted": token.Format(amounts.PaymentAmount),
		"settlementFee":          amounts.SettlementFee.String(),
		"settlementFeeFormatted": token.Format(amounts.SettlementFee),
		"netAmount":              amounts.Net().String(),
		"netAmountFormatted":     token.Format(amounts.Net()),
	})
}

func (s *Server) recentSettlements(c *gin.Context) {
	if s.hist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "settlement history not configured"})
		return
	}
	addr, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}
	entries, err := s.hist.Recent(c.Request.Context(), addr, 20)
	if err != nil {
		s.log.Error("history read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payee": addr.Hex(), "entries": entries})
}
