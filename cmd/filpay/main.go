// filpay is a CLI for the FilecoinPay payments contract: inspect account
// funds, enumerate payment rails, and preview or execute settlements.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/filpay/filpay/internal/chain"
	"github.com/filpay/filpay/internal/config"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorText("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "filpay",
		Usage: "inspect and settle FilecoinPay payment rails",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rpc",
				Usage: "JSON-RPC endpoint (overrides config)",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "hex private key for signing transactions (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable structured logging",
			},
		},
		Commands: []*cli.Command{
			balanceCommand(),
			walletBalanceCommand(),
			depositCommand(),
			withdrawCommand(),
			railsCommand(),
			settleCommand(),
			settlementPreviewCommand(),
			serveCommand(),
		},
	}
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if rpc := c.String("rpc"); rpc != "" {
		cfg.Chain.RPCURL = rpc
	}
	if key := c.String("key"); key != "" {
		cfg.Chain.PrivateKey = key
	}
	return cfg, nil
}

// newLogger builds the CLI logger. One-shot commands stay quiet unless
// --verbose is set, so styled output isn't interleaved with log lines.
func newLogger(c *cli.Context) (*zap.Logger, error) {
	if !c.Bool("verbose") {
		return zap.NewNop(), nil
	}
	return zap.NewProduction()
}

// newClient dials the chain. Commands that submit transactions require a
// signing key and fail fast before anything is sent.
func newClient(c *cli.Context, requireKey bool) (*chain.Client, *config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	if requireKey && cfg.Chain.PrivateKey == "" {
		return nil, nil, fmt.Errorf("--key flag (or FILPAY_PRIVATE_KEY) is required for %s", c.Command.Name)
	}
	client, err := chain.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// confirm prompts on stdin and returns whether the user answered yes.
func confirm(prompt string) bool {
	fmt.Print(warn(prompt + " [y/N]: "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}
