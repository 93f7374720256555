package presentation

import (
	"bytes"
	"context"
	"fmt"
	"text/tabwriter"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TextSummarySink renders a priced quote as a plain-text table, one block
// per section in presentation order.
type TextSummarySink struct{}

var _ interfaces.IPresentationSink = TextSummarySink{}

func NewTextSummarySink() TextSummarySink { return TextSummarySink{} }

func (TextSummarySink) Render(_ context.Context, q entities.PricedQuote) (interfaces.Document, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Quote %s\n", q.ID)
	fmt.Fprintf(&buf, "Generated %s\n", q.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	if q.Customer.Name != "" || q.Customer.CustomerID != "" {
		fmt.Fprintf(&buf, "Customer %s %s\n", q.Customer.Name, q.Customer.Phone)
	}
	if q.AgentID != nil {
		fmt.Fprintf(&buf, "Agent %d\n", *q.AgentID)
	}

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, g := range q.Groups {
		fmt.Fprintf(tw, "\n%s\t\t\t\t\n", g.Section)
		if g.Section == entities.SectionInstallation {
			fmt.Fprintf(tw, "Ground frame\t1\t\t%s\t\n", formatMoney(g.Subtotal))
			continue
		}
		for _, l := range g.Lines {
			fmt.Fprintf(tw, "%s\t%d %s\t%s\t%s\t\n", l.Name, l.Quantity, l.Unit, formatMoney(l.SellPrice), formatMoney(l.Total()))
		}
		fmt.Fprintf(tw, "Subtotal\t%d\t\t%s\t\n", g.Quantity, formatMoney(g.Subtotal))
	}
	fmt.Fprintf(tw, "\nGrand total\t\t\t%s\t\n", formatMoney(q.GrandTotal))
	if err := tw.Flush(); err != nil {
		return interfaces.Document{}, err
	}

	return interfaces.Document{
		ContentType: "text/plain; charset=utf-8",
		FileName:    "quote-" + q.ID + ".txt",
		Body:        buf.Bytes(),
	}, nil
}

// formatMoney prints whole units with comma thousands separators.
func formatMoney(v decimal.Decimal) string {
	return humanize.Comma(v.Round(0).IntPart())
}
