package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/history"
	"github.com/filpay/filpay/internal/payments"
	"github.com/filpay/filpay/internal/settler"
)

func railsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rails",
		Usage: "inspect and settle payment rails",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list all rails for the signing identity",
				Action: runRailsList,
			},
			{
				Name:      "info",
				Usage:     "show one rail in detail",
				ArgsUsage: "<railId>",
				Action:    runRailInfo,
			},
			{
				Name:      "settle",
				Usage:     "settle the rails from one payer",
				ArgsUsage: "<payer>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
				},
				Action: runRailSettle,
			},
			{
				Name:  "settle-all",
				Usage: "settle every rail where you are the payee",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "preview", Usage: "compute amounts without submitting transactions"},
					&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
				},
				Action: runRailSettleAll,
			},
		},
	}
}

// settleCommand is a top-level shortcut for "rails settle".
func settleCommand() *cli.Command {
	return &cli.Command{
		Name:      "settle",
		Usage:     "settle the rails from one payer (shortcut for rails settle)",
		ArgsUsage: "<payer>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
		},
		Action: runRailSettle,
	}
}

func runRailsList(c *cli.Context) error {
	client, _, err := newClient(c, true)
	if err != nil {
		return err
	}
	token := client.Token()
	registry := payments.NewRailRegistry(client, token)
	addr := client.Address()

	fmt.Println(bright("\nPayment Rails\n"))
	fmt.Println(dim("Address: " + addr.Hex()))
	fmt.Println(dim("\nFetching rails...\n"))

	asPayer, err := registry.ListAsPayer(c.Context, addr)
	if err != nil {
		return err
	}
	asPayee, err := registry.ListAsPayee(c.Context, addr)
	if err != nil {
		return err
	}

	printRailSection(c, registry, token, fmt.Sprintf("=== Rails as Payer (%d) ===", len(asPayer)), asPayer, true)
	printRailSection(c, registry, token, fmt.Sprintf("\n=== Rails as Payee (%d) ===", len(asPayee)), asPayee, false)

	fmt.Println(bright(fmt.Sprintf("\nTotal: %d rails", len(asPayer)+len(asPayee))))
	return nil
}

func printRailSection(c *cli.Context, registry *payments.RailRegistry, token payments.Token, header string, summaries []payments.RailSummary, asPayer bool) {
	fmt.Println(bright(header))
	if len(summaries) == 0 {
		fmt.Println(dim("  (none)"))
		return
	}
	for i, summary := range summaries {
		rail, err := registry.Get(c.Context, summary.ID)
		if err != nil {
			fmt.Printf("  %s %s\n", info(fmt.Sprintf("%d. Rail #%s", i+1, summary.ID)), errorText(err.Error()))
			continue
		}
		counterparty := rail.Payee
		arrow := "->"
		if !asPayer {
			counterparty = rail.Payer
			arrow = "<-"
		}
		status := success("active")
		if rail.Terminated() {
			status = dim("terminated")
		}
		fmt.Printf("  %s %s %s\n", info(fmt.Sprintf("%d. Rail #%s", i+1, summary.ID)), arrow, dim(counterparty.Hex()))
		fmt.Printf("     Rate: %s %s/epoch\n", bright(token.Format(rail.PaymentRate)), token.Symbol)
		fmt.Printf("     Status: %s\n", status)
	}
}

func runRailInfo(c *cli.Context) error {
	idStr := c.Args().Get(0)
	id, ok := new(big.Int).SetString(idStr, 10)
	if !ok || id.Sign() < 0 {
		return fmt.Errorf("invalid rail id: %q", idStr)
	}

	client, _, err := newClient(c, false)
	if err != nil {
		return err
	}
	token := client.Token()
	registry := payments.NewRailRegistry(client, token)

	fmt.Println(dim(fmt.Sprintf("\nFetching rail #%s...\n", id)))
	rail, err := registry.Get(c.Context, id)
	if err != nil {
		return err
	}

	fmt.Println(bright("Rail #" + id.String()))
	fmt.Println(bright("======================================="))
	fmt.Printf("Payer:           %s\n", info(rail.Payer.Hex()))
	fmt.Printf("Payee:           %s\n", info(rail.Payee.Hex()))
	fmt.Printf("Payment Rate:    %s %s/epoch\n", bright(token.Format(rail.PaymentRate)), token.Symbol)
	fmt.Printf("Lockup Period:   %s epochs\n", dim(rail.LockupPeriod.String()))
	fmt.Printf("Settled Up To:   %s\n", dim("epoch "+rail.SettledUpTo.String()))
	if rail.Terminated() {
		fmt.Printf("Status:          %s\n", dim("terminated"))
		fmt.Printf("End Epoch:       %s\n", dim(rail.EndEpoch.String()))
	} else {
		fmt.Printf("Status:          %s\n", success("active"))
	}
	printRole := func(label string, set bool, addr common.Address) {
		if set {
			fmt.Printf("%s        %s\n", label, dim(addr.Hex()))
		} else {
			fmt.Printf("%s        %s\n", label, dim("none"))
		}
	}
	printRole("Operator:", rail.HasOperator(), rail.Operator)
	printRole("Validator:", rail.HasValidator(), rail.Validator)
	return nil
}

func runRailSettle(c *cli.Context) error {
	payerStr := c.Args().Get(0)
	if !common.IsHexAddress(payerStr) {
		return fmt.Errorf("invalid payer address: %q", payerStr)
	}
	payer := common.HexToAddress(payerStr)

	client, _, err := newClient(c, true)
	if err != nil {
		return err
	}
	token := client.Token()
	payee := client.Address()
	calc := payments.NewCalculator(client)

	fmt.Println(bright("\nSettle Payment Rail\n"))
	fmt.Println(dim("Payer: " + payer.Hex()))
	fmt.Println(dim("Payee: " + payee.Hex() + "\n"))

	fmt.Println(dim("Calculating settlement amounts..."))
	amounts, err := calc.Preview(c.Context, payer, payee)
	if err != nil {
		return err
	}

	fmt.Printf("Payment amount:  %s %s\n", bright(token.Format(amounts.PaymentAmount)), token.Symbol)
	fmt.Printf("Settlement fee:  %s %s\n", dim(token.Format(amounts.SettlementFee)), token.Symbol)
	fmt.Printf("Net to payee:    %s %s\n", success(token.Format(amounts.Net())), token.Symbol)

	if amounts.Zero() {
		fmt.Println(warn("\nNo payment to settle (amount is 0)"))
		return nil
	}

	if !c.Bool("yes") && !confirm("\nProceed with settlement?") {
		fmt.Println(dim("Cancelled"))
		return nil
	}

	fmt.Println(info("\nSending settlement transaction..."))
	tx, err := client.Settle(c.Context, payer)
	if err != nil {
		return err
	}
	fmt.Println(dim("Transaction hash: " + tx.Hash().Hex()))

	fmt.Println(dim("Waiting for confirmation..."))
	receipt, err := client.Confirm(c.Context, tx)
	if err != nil {
		return err
	}

	fmt.Println(success(fmt.Sprintf("\nSettlement confirmed in block %d", receipt.BlockNumber.Uint64())))
	fmt.Println(dim(fmt.Sprintf("Gas used: %d", receipt.GasUsed)))
	return nil
}

func runRailSettleAll(c *cli.Context) error {
	client, cfg, err := newClient(c, true)
	if err != nil {
		return err
	}
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	preview := c.Bool("preview")
	token := client.Token()
	payee := client.Address()

	title := "Settle All Rails"
	if preview {
		title = "Preview: Settle All Rails"
	}
	fmt.Println(bright("\n" + title + "\n"))
	fmt.Println(dim("Address: " + payee.Hex() + "\n"))

	if !preview && !c.Bool("yes") && !confirm("Settle every rail with payment due?") {
		fmt.Println(dim("Cancelled"))
		return nil
	}

	registry := payments.NewRailRegistry(client, token)
	calc := payments.NewCalculator(client)
	batch := settler.New(registry, calc, client, payee, log)
	batch.OnProgress(func(ev settler.Event) { printProgress(token, ev) })

	report, err := batch.SettleAll(c.Context, preview)
	if err != nil {
		return err
	}
	printReport(token, report)

	// Executed runs are journaled when redis is configured; per-rail
	// failures are already in the report and never fail the command.
	if !preview && cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := history.New(rdb).Append(c.Context, report); err != nil {
			log.Warn("journal settlement report failed", zap.Error(err))
		}
	}
	return nil
}

func settlementPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "settlement-preview",
		Usage:     "preview what settling a payer's rails would move",
		ArgsUsage: "<payer>",
		Action:    runSettlementPreview,
	}
}

func runSettlementPreview(c *cli.Context) error {
	payerStr := c.Args().Get(0)
	if !common.IsHexAddress(payerStr) {
		return fmt.Errorf("invalid payer address: %q", payerStr)
	}
	payer := common.HexToAddress(payerStr)

	client, _, err := newClient(c, true)
	if err != nil {
		return err
	}
	token := client.Token()
	payee := client.Address()
	calc := payments.NewCalculator(client)

	fmt.Println(bright("\nSettlement Preview\n"))
	fmt.Println(dim("Payer:  " + payer.Hex()))
	fmt.Println(dim("Payee:  " + payee.Hex() + "\n"))

	amounts, err := calc.Preview(c.Context, payer, payee)
	if err != nil {
		return err
	}

	fmt.Printf("Payment Amount:     %s %s\n", bright(token.Format(amounts.PaymentAmount)), token.Symbol)
	fmt.Printf("Settlement Fee:     %s %s\n", dim(token.Format(amounts.SettlementFee)), token.Symbol)
	fmt.Println(dim("================================================="))
	fmt.Printf("Net to Payee:       %s %s\n", success(token.Format(amounts.Net())), token.Symbol)

	if amounts.Zero() {
		fmt.Println(warn("\nNo payment to settle"))
	} else {
		fmt.Println(success("\nReady to settle"))
		fmt.Println(dim("\nTo settle, run: filpay settle " + payer.Hex() + " --key YOUR_KEY"))
	}
	return nil
}
