package client

import (
	"fmt"
	"io"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

// RenderDashboard prints the summary totals and the derived balance.
func RenderDashboard(w io.Writer, s transaction.Summary) {
	fmt.Fprintln(w, "── Summary ───────────────────────")
	fmt.Fprintf(w, "  Income:  %12s\n", s.Income.StringFixed(2))
	fmt.Fprintf(w, "  Expense: %12s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(w, "  Balance: %12s\n", s.Balance.StringFixed(2))
}
