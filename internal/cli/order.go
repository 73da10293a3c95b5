package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/api/order"
)

func (c *CLI) orderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create orders",
	}
	cmd.AddCommand(c.orderCreateCommand())
	cmd.AddCommand(c.orderBulkCommand())
	return cmd
}

func (c *CLI) orderCreateCommand() *cobra.Command {
	var p order.CreateParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a single order",
		Example: `  steadfast order create --invoice INV-001 --name "John Doe" \
    --phone 01712345678 --address "House 1, Road 2, Dhaka" --cod 1500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			o, err := spin(ctx, c.Err, "Creating order...", func() (*order.Order, error) {
				return client.Orders().Create(ctx, p)
			})
			if err != nil {
				return err
			}
			printSuccess(c.Out, "Created consignment %s", StyleNumber.Render(formatID(int64(o.ConsignmentID))))
			printKeyValue(c.Out, "Invoice", o.Invoice)
			printKeyValue(c.Out, "Tracking code", o.TrackingCode)
			printKeyValue(c.Out, "Status", o.Status)
			printKeyValue(c.Out, "COD amount", formatAmount(o.CODAmount.Float64()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Invoice, "invoice", "", "unique invoice id (letters, digits, - and _)")
	f.StringVar(&p.RecipientName, "name", "", "recipient name")
	f.StringVar(&p.RecipientPhone, "phone", "", "recipient phone (11 digits)")
	f.StringVar(&p.RecipientAddress, "address", "", "recipient address")
	f.Float64Var(&p.CODAmount, "cod", 0, "cash on delivery amount")
	f.IntVar(&p.DeliveryType, "delivery-type", order.HomeDelivery, "0 for home delivery, 1 for point delivery")
	f.StringVar(&p.AlternativePhone, "alt-phone", "", "alternative phone")
	f.StringVar(&p.RecipientEmail, "email", "", "recipient email")
	f.StringVar(&p.Note, "note", "", "delivery note")
	f.StringVar(&p.ItemDescription, "item-description", "", "item description")
	f.IntVar(&p.TotalLot, "total-lot", 0, "number of items")
	for _, name := range []string{"invoice", "name", "phone", "address", "cod"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (c *CLI) orderBulkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk FILE",
		Short: "Create up to 500 orders from a JSON or TOML file",
		Long: `Create orders in one request from FILE.

JSON files hold an array of orders (or {"orders": [...]}); TOML files use
[[orders]] tables. Keys match the API: invoice, recipient_name,
recipient_phone, recipient_address, cod_amount, delivery_type, note, ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := loadBulkFile(args[0])
			if err != nil {
				return err
			}
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			resp, err := spin(ctx, c.Err, fmt.Sprintf("Submitting %d orders...", len(orders)), func() (*order.BulkResponse, error) {
				return client.Orders().CreateBulk(ctx, orders)
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Submitted %d orders", len(orders)))

			rows := make([][]string, 0, len(resp.Results))
			for _, r := range resp.Results {
				rows = append(rows, []string{
					r.Invoice, r.Status, formatID(int64(r.ConsignmentID)), orDash(r.TrackingCode), orDash(r.Error),
				})
			}
			printTable(c.Out, []string{"Invoice", "Status", "Consignment", "Tracking", "Error"}, rows)

			ok, failed := resp.Counts()
			if failed > 0 {
				printWarning(c.Out, "%d created, %d failed", ok, failed)
				return nil
			}
			printSuccess(c.Out, "%d orders created", ok)
			return nil
		},
	}
}

// loadBulkFile reads orders from a .toml file or a JSON file.
func loadBulkFile(path string) ([]order.CreateParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Orders []order.CreateParams `json:"orders" toml:"orders"`
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return file.Orders, nil
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &file.Orders); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return file.Orders, nil
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Orders, nil
}
