package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

// RenderList prints the transaction history, newest first.
func RenderList(w io.Writer, items []transaction.Transaction) {
	fmt.Fprintln(w, "── History ───────────────────────")
	if len(items) == 0 {
		fmt.Fprintln(w, "  no transactions yet")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tMODE\tDESCRIPTION")
	for _, t := range items {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.CreatedAt.Format("2006-01-02"),
			t.Type,
			t.Amount.StringFixed(2),
			t.Category,
			t.PaymentMode,
			t.Description,
		)
	}
	tw.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
