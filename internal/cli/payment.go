package cli

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/api/payment"
)

func (c *CLI) paymentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payment",
		Aliases: []string{"payments"},
		Short:   "Inspect payments",
	}
	cmd.AddCommand(c.paymentListCommand())
	cmd.AddCommand(c.paymentGetCommand())
	cmd.AddCommand(c.paymentBrowseCommand())
	return cmd
}

func (c *CLI) paymentListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := spin(ctx, c.Err, "Fetching payments...", func() (*payment.List, error) {
				return client.Payments().List(ctx)
			})
			if err != nil {
				return err
			}
			if len(l.Data) == 0 {
				printInfo(c.Out, "No payments")
				return nil
			}
			printTable(c.Out, []string{"ID", "Amount", "Created"}, paymentRows(l.Data))
			return nil
		},
	}
}

func (c *CLI) paymentGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a payment and its consignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("payment_id", args[0])
			if err != nil {
				return err
			}
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			return c.showPayment(cmd, client.Payments(), id)
		},
	}
}

func (c *CLI) paymentBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick a payment interactively and show its details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := spin(ctx, c.Err, "Fetching payments...", func() (*payment.List, error) {
				return client.Payments().List(ctx)
			})
			if err != nil {
				return err
			}
			if len(l.Data) == 0 {
				printInfo(c.Out, "No payments")
				return nil
			}

			final, err := tea.NewProgram(NewPaymentListModel(l.Data), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			m, ok := final.(PaymentListModel)
			if !ok || m.Selected == nil {
				return nil
			}
			return c.showPayment(cmd, client.Payments(), int64(m.Selected.ID))
		},
	}
}

func (c *CLI) showPayment(cmd *cobra.Command, p *payment.Client, id int64) error {
	ctx := cmd.Context()
	d, err := spin(ctx, c.Err, "Fetching payment...", func() (*payment.Details, error) {
		return p.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	printInfo(c.Out, "Payment %s", StyleNumber.Render(formatID(int64(d.ID))))
	printKeyValue(c.Out, "Amount", formatAmount(d.Amount.Float64()))
	printKeyValue(c.Out, "Created", d.CreatedAt)
	printKeyValue(c.Out, "Updated", d.UpdatedAt)
	if len(d.Consignments) == 0 {
		printDetail(c.Out, "no consignments")
		return nil
	}
	headers, rows := consignmentTable(d.Consignments)
	printTable(c.Out, headers, rows)
	return nil
}

func paymentRows(ps []payment.Payment) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{formatID(int64(p.ID)), formatAmount(p.Amount.Float64()), orDash(p.CreatedAt)})
	}
	return rows
}

// consignmentTable turns free-form consignment entries into table rows,
// using the union of their keys (sorted) as columns.
func consignmentTable(items []map[string]any) ([]string, [][]string) {
	seen := map[string]bool{}
	var headers []string
	for _, it := range items {
		for k := range it {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		row := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := it[h]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			} else {
				row[i] = "—"
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}
