package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/filpay/filpay/internal/payments"
)

func balanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "check an account's funds under the payments contract",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "account", Usage: "account address", Required: true},
			&cli.BoolFlag{Name: "detailed", Usage: "include wallet balance and locked amount"},
			&cli.BoolFlag{Name: "json", Usage: "output as JSON"},
		},
		Action: runBalance,
	}
}

func runBalance(c *cli.Context) error {
	if !common.IsHexAddress(c.String("account")) {
		return fmt.Errorf("invalid account address: %q", c.String("account"))
	}
	addr := common.HexToAddress(c.String("account"))

	client, _, err := newClient(c, false)
	if err != nil {
		return err
	}
	token := client.Token()
	accounts := payments.NewAccountService(client, token)

	acct, err := accounts.Info(c.Context, addr)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		out := map[string]any{
			"address":                    addr.Hex(),
			"token":                      token.Address.Hex(),
			"fundedUntilEpoch":           acct.FundedUntilEpoch.String(),
			"currentFunds":               acct.CurrentFunds.String(),
			"currentFundsFormatted":      token.Format(acct.CurrentFunds),
			"availableFunds":             acct.AvailableFunds.String(),
			"availableFundsFormatted":    token.Format(acct.AvailableFunds),
			"currentLockupRate":          acct.CurrentLockupRate.String(),
			"currentLockupRateFormatted": token.Format(acct.CurrentLockupRate),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(bright("\nAccount Balance\n"))
	fmt.Println(dim("Address: " + addr.Hex()))
	fmt.Println(dim(fmt.Sprintf("Token: %s (%s)\n", token.Symbol, token.Address.Hex())))

	fundedUntil := "epoch " + acct.FundedUntilEpoch.String()
	if acct.LockupUnbounded() {
		fundedUntil = "unbounded (no active lockup)"
	}
	fmt.Printf("Funded Until:     %s\n", info(fundedUntil))
	fmt.Printf("Current Funds:    %s %s\n", bright(token.Format(acct.CurrentFunds)), token.Symbol)
	fmt.Printf("Available:        %s %s\n", success(token.Format(acct.AvailableFunds)), token.Symbol)
	fmt.Printf("Lockup Rate:      %s %s/epoch\n", dim(token.Format(acct.CurrentLockupRate)), token.Symbol)

	if c.Bool("detailed") {
		detail, err := accounts.Detail(c.Context, addr)
		if err != nil {
			return err
		}
		fmt.Println(bright("\n=== Detailed Information ==="))
		fmt.Printf("Wallet Balance:   %s %s\n", success(token.Format(detail.WalletBalance)), token.Symbol)
		fmt.Printf("Locked Amount:    %s %s\n", warn(token.Format(acct.LockedAmount())), token.Symbol)
		fmt.Printf("Total (Wallet + Contract): %s %s\n", bright(token.Format(detail.Total())), token.Symbol)
	}

	if acct.FullyWithdrawable() {
		fmt.Println(success("\nNo active payment rails - all funds available for withdrawal"))
	}
	return nil
}

func walletBalanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "wallet-balance",
		Usage: "check a wallet's token balance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "account", Usage: "account address (defaults to the signing identity)"},
		},
		Action: runWalletBalance,
	}
}

func runWalletBalance(c *cli.Context) error {
	client, cfg, err := newClient(c, false)
	if err != nil {
		return err
	}

	var addr common.Address
	switch {
	case c.String("account") != "":
		if !common.IsHexAddress(c.String("account")) {
			return fmt.Errorf("invalid account address: %q", c.String("account"))
		}
		addr = common.HexToAddress(c.String("account"))
	case client.HasSigner():
		addr = client.Address()
	default:
		return fmt.Errorf("either --account or --key is required")
	}

	token := client.Token()
	accounts := payments.NewAccountService(client, token)

	balance, err := accounts.WalletBalance(c.Context, addr)
	if err != nil {
		return err
	}

	fmt.Println(bright("\nWallet Balance\n"))
	fmt.Println(dim("Address: " + addr.Hex() + "\n"))
	fmt.Printf("%s Balance: %s %s\n", token.Symbol, success(token.Format(balance)), token.Symbol)

	// With a signing key, also show funds held by the contract.
	if cfg.Chain.PrivateKey != "" && addr == client.Address() {
		acct, err := accounts.Info(c.Context, addr)
		if err != nil {
			return err
		}
		fmt.Println(bright("\nFilecoinPay Contract:"))
		fmt.Printf("  Total Funds:  %s %s\n", bright(token.Format(acct.CurrentFunds)), token.Symbol)
		fmt.Printf("  Available:    %s %s\n", success(token.Format(acct.AvailableFunds)), token.Symbol)
	}
	return nil
}

func depositCommand() *cli.Command {
	return &cli.Command{
		Name:      "deposit",
		Usage:     "deposit tokens into the payments contract",
		ArgsUsage: "<amount>",
		Action:    runDeposit,
	}
}

func runDeposit(c *cli.Context) error {
	amountStr := c.Args().Get(0)
	if amountStr == "" {
		return fmt.Errorf("amount is required for deposit")
	}

	client, _, err := newClient(c, true)
	if err != nil {
		return err
	}
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	token := client.Token()
	amount, err := token.Parse(amountStr)
	if err != nil {
		return err
	}

	fmt.Println(bright("\nDeposit " + token.Symbol + "\n"))
	fmt.Println(dim("From: " + client.Address().Hex()))
	fmt.Printf("Amount: %s %s\n\n", bright(amountStr), token.Symbol)

	funding := payments.NewFundingService(client, client.Address(), log)
	result, err := funding.Deposit(c.Context, amount)
	if err != nil {
		return err
	}

	if result.Approval != nil {
		fmt.Println(success("Approved " + amountStr + " " + token.Symbol))
		fmt.Println(dim("  approval tx: " + result.Approval.TxHash.Hex()))
	}
	fmt.Println(success(fmt.Sprintf("\nDeposit confirmed in block %d", result.Deposit.BlockNumber.Uint64())))
	fmt.Println(dim("  tx: " + result.Deposit.TxHash.Hex()))
	fmt.Println(dim(fmt.Sprintf("  gas used: %d", result.Deposit.GasUsed)))
	return nil
}

func withdrawCommand() *cli.Command {
	return &cli.Command{
		Name:      "withdraw",
		Usage:     "withdraw available funds from the payments contract",
		ArgsUsage: "<amount>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "recipient address (defaults to the signing identity)"},
		},
		Action: runWithdraw,
	}
}

func runWithdraw(c *cli.Context) error {
	amountStr := c.Args().Get(0)
	if amountStr == "" {
		return fmt.Errorf("amount is required for withdraw")
	}

	client, _, err := newClient(c, true)
	if err != nil {
		return err
	}
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	token := client.Token()
	amount, err := token.Parse(amountStr)
	if err != nil {
		return err
	}

	var to *common.Address
	if raw := c.String("to"); raw != "" {
		if !common.IsHexAddress(raw) {
			return fmt.Errorf("invalid recipient address: %q", raw)
		}
		addr := common.HexToAddress(raw)
		to = &addr
	}

	fmt.Println(bright("\nWithdraw " + token.Symbol + "\n"))
	fmt.Println(dim("From: " + client.Address().Hex()))
	fmt.Printf("Amount: %s %s\n", bright(amountStr), token.Symbol)
	if to != nil {
		fmt.Println(info("To: " + to.Hex()))
	}

	funding := payments.NewFundingService(client, client.Address(), log)
	receipt, err := funding.Withdraw(c.Context, amount, to)
	if err != nil {
		return err
	}

	fmt.Println(success(fmt.Sprintf("\nWithdrawal confirmed in block %d", receipt.BlockNumber.Uint64())))
	fmt.Println(dim("  tx: " + receipt.TxHash.Hex()))
	fmt.Println(dim(fmt.Sprintf("  gas used: %d", receipt.GasUsed)))
	return nil
}
