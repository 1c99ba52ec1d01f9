package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ethereum/go-ethereum/common"

	"github.com/filpay/filpay/internal/payments"
	"github.com/filpay/filpay/internal/settler"
)

// Pure formatting helpers over the data model. The engine packages never
// print; everything user-facing goes through here.

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleBright  = lipgloss.NewStyle().Bold(true)
)

func success(s string) string   { return styleSuccess.Render(s) }
func errorText(s string) string { return styleError.Render(s) }
func info(s string) string      { return styleInfo.Render(s) }
func warn(s string) string      { return styleWarn.Render(s) }
func dim(s string) string       { return styleDim.Render(s) }
func bright(s string) string    { return styleBright.Render(s) }

// shortAddr renders the first bytes of an address for compact listings.
func shortAddr(a common.Address) string {
	return a.Hex()[:10] + "..."
}

// printProgress renders one per-rail settlement event as it happens.
func printProgress(token payments.Token, ev settler.Event) {
	id := ev.RailID.String()
	switch ev.Outcome {
	case settler.OutcomeSkipped:
		fmt.Println(dim(fmt.Sprintf("- rail #%s (%s): no payment due", id, shortAddr(ev.Payer))))
	case settler.OutcomePreviewed:
		fmt.Println(info(fmt.Sprintf("> rail #%s (%s)", id, shortAddr(ev.Payer))))
		fmt.Println(dim(fmt.Sprintf("    payment:  %s %s", token.Format(ev.Amounts.PaymentAmount), token.Symbol)))
		fmt.Println(dim(fmt.Sprintf("    fee:      %s %s", token.Format(ev.Amounts.SettlementFee), token.Symbol)))
		fmt.Println(success(fmt.Sprintf("    net:      %s %s", token.Format(ev.Amounts.Net()), token.Symbol)))
	case settler.OutcomeSettled:
		fmt.Println(info(fmt.Sprintf("> rail #%s (%s): settled %s %s", id, shortAddr(ev.Payer),
			token.Format(ev.Amounts.PaymentAmount), token.Symbol)))
		fmt.Println(success(fmt.Sprintf("    confirmed in block %d", ev.Receipt.BlockNumber.Uint64())))
	case settler.OutcomeFailed:
		fmt.Println(errorText(fmt.Sprintf("x rail #%s: %s", id, ev.Err)))
	}
}

// printReport renders the batch summary after the run.
func printReport(token payments.Token, report *settler.Report) {
	fmt.Println(bright("\n==================================="))
	if report.Preview {
		fmt.Println(info(fmt.Sprintf("> would settle: %d", len(report.Settled))))
		fmt.Println(dim(fmt.Sprintf("- would skip:   %d", len(report.Skipped))))
		if len(report.Failed) > 0 {
			fmt.Println(errorText(fmt.Sprintf("x failed:       %d", len(report.Failed))))
		}
	} else {
		fmt.Println(success(fmt.Sprintf("settled: %d", len(report.Settled))))
		fmt.Println(dim(fmt.Sprintf("skipped: %d", len(report.Skipped))))
		fmt.Println(errorText(fmt.Sprintf("failed:  %d", len(report.Failed))))
	}

	if len(report.Settled) > 0 {
		fmt.Println(bright("\nSettlement totals:"))
		fmt.Println(dim(fmt.Sprintf("  total payment:  %s %s", token.Format(report.TotalAmount), token.Symbol)))
		fmt.Println(dim(fmt.Sprintf("  total fees:     %s %s", token.Format(report.TotalFees), token.Symbol)))
		fmt.Println(success(fmt.Sprintf("  net to you:     %s %s", token.Format(report.TotalNet), token.Symbol)))
	}
	if report.Preview && len(report.Settled) > 0 {
		fmt.Println(warn("\nRun without --preview to execute settlements"))
	}

	for _, f := range report.Failed {
		if f.Kind.Benign() {
			fmt.Println(dim(fmt.Sprintf("  rail #%s was already settled by another party", f.RailID)))
		}
	}
}
