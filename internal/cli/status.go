package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/api/tracking"
	"github.com/matzehuels/steadfast/pkg/errors"
)

func (c *CLI) statusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"track"},
		Short:   "Show the delivery status of a consignment",
	}

	lookup := func(use, short string, fn func(cmd *cobra.Command, t *tracking.Client, value string) (*tracking.OrderStatus, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := c.client(cmd)
				if err != nil {
					return err
				}
				s, err := spin(cmd.Context(), c.Err, "Looking up status...", func() (*tracking.OrderStatus, error) {
					return fn(cmd, client.Tracking(), args[0])
				})
				if err != nil {
					return err
				}
				printStatus(c, args[0], s)
				return nil
			},
		}
	}

	cmd.AddCommand(lookup("cid ID", "Look up by consignment id", func(cmd *cobra.Command, t *tracking.Client, v string) (*tracking.OrderStatus, error) {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Validation("consignment_id", "Consignment ID must be a positive integer")
		}
		return t.ByConsignmentID(cmd.Context(), id)
	}))
	cmd.AddCommand(lookup("invoice INVOICE", "Look up by invoice", func(cmd *cobra.Command, t *tracking.Client, v string) (*tracking.OrderStatus, error) {
		return t.ByInvoice(cmd.Context(), v)
	}))
	cmd.AddCommand(lookup("code TRACKING_CODE", "Look up by tracking code", func(cmd *cobra.Command, t *tracking.Client, v string) (*tracking.OrderStatus, error) {
		return t.ByTrackingCode(cmd.Context(), v)
	}))
	return cmd
}

func printStatus(c *CLI, ref string, s *tracking.OrderStatus) {
	switch s.DeliveryStatus {
	case tracking.StatusDelivered, tracking.StatusPartialDelivered:
		printSuccess(c.Out, "%s: %s", ref, s.DeliveryStatus)
	case tracking.StatusCancelled, tracking.StatusHold:
		printWarning(c.Out, "%s: %s", ref, s.DeliveryStatus)
	default:
		printInfo(c.Out, "%s: %s", ref, s.DeliveryStatus)
	}
}
