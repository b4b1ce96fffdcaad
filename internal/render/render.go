// Package render turns computed statements into markdown, optionally
// styled for the terminal.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/tallybook-dev/tallybook/internal/report"
	"github.com/tallybook-dev/tallybook/internal/voucher"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"money": FormatMoney,
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
}

type pnlView struct {
	report.ProfitLossAccount
	Base string
}

type balanceSheetView struct {
	report.BalanceSheet
	Base string
}

type journalView struct {
	Entries []report.JournalEntry
	Base    string
}

type ledgersView struct {
	Accounts []report.LedgerAccount
	Base     string
}

type trialBalanceView struct {
	Balances []voucher.LedgerBalance
	Period   string
	Base     string
}

// ProfitAndLoss renders a profit & loss statement as markdown.
func ProfitAndLoss(p report.ProfitLossAccount, base string) string {
	return renderTemplate("pnl.md", pnlView{ProfitLossAccount: p, Base: base})
}

// BalanceSheet renders a balance sheet as markdown.
func BalanceSheet(bs report.BalanceSheet, base string) string {
	return renderTemplate("balance_sheet.md", balanceSheetView{BalanceSheet: bs, Base: base})
}

// Journal renders the general journal as markdown.
func Journal(entries []report.JournalEntry, base string) string {
	return renderTemplate("journal.md", journalView{Entries: entries, Base: base})
}

// Ledgers renders per-account posting histories as markdown.
func Ledgers(accounts []report.LedgerAccount, base string) string {
	return renderTemplate("ledgers.md", ledgersView{Accounts: accounts, Base: base})
}

// TrialBalance renders voucher ledger balances as markdown.
func TrialBalance(balances []voucher.LedgerBalance, period, base string) string {
	return renderTemplate("trial_balance.md", trialBalanceView{Balances: balances, Period: period, Base: base})
}

// Terminal styles markdown for terminal display. On any rendering error
// the raw markdown is returned so output is never lost.
func Terminal(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(110),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func renderTemplate(file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
