package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/api/returns"
	"github.com/matzehuels/steadfast/pkg/validate"
)

func (c *CLI) returnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return",
		Short: "Manage return requests",
	}
	cmd.AddCommand(c.returnCreateCommand())
	cmd.AddCommand(c.returnGetCommand())
	cmd.AddCommand(c.returnListCommand())
	return cmd
}

func (c *CLI) returnCreateCommand() *cobra.Command {
	var (
		kind   string
		reason string
	)
	cmd := &cobra.Command{
		Use:   "create IDENTIFIER",
		Short: "Request a return for a consignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p := returns.CreateParams{
				Identifier:     args[0],
				IdentifierType: validate.IdentifierType(kind),
				Reason:         reason,
			}
			r, err := spin(ctx, c.Err, "Creating return request...", func() (*returns.ReturnRequest, error) {
				return client.Returns().Create(ctx, p)
			})
			if err != nil {
				return err
			}
			printSuccess(c.Out, "Created return request %s", StyleNumber.Render(formatID(int64(r.ID))))
			printReturn(c, r)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(validate.ByConsignmentID), "identifier type: consignment_id, invoice or tracking_code")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the return")
	return cmd
}

func (c *CLI) returnGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a return request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("return_request_id", args[0])
			if err != nil {
				return err
			}
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			r, err := spin(ctx, c.Err, "Fetching return request...", func() (*returns.ReturnRequest, error) {
				return client.Returns().Get(ctx, id)
			})
			if err != nil {
				return err
			}
			printInfo(c.Out, "Return request %s", StyleNumber.Render(formatID(int64(r.ID))))
			printReturn(c, r)
			return nil
		},
	}
}

func (c *CLI) returnListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List return requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := spin(ctx, c.Err, "Fetching return requests...", func() (*returns.List, error) {
				return client.Returns().List(ctx)
			})
			if err != nil {
				return err
			}
			if len(l.Data) == 0 {
				printInfo(c.Out, "No return requests")
				return nil
			}
			rows := make([][]string, 0, len(l.Data))
			for _, r := range l.Data {
				rows = append(rows, []string{
					formatID(int64(r.ID)), formatID(int64(r.ConsignmentID)), r.Status, orDash(r.Reason), orDash(r.CreatedAt),
				})
			}
			printTable(c.Out, []string{"ID", "Consignment", "Status", "Reason", "Created"}, rows)
			return nil
		},
	}
}

func printReturn(c *CLI, r *returns.ReturnRequest) {
	printKeyValue(c.Out, "Consignment", formatID(int64(r.ConsignmentID)))
	printKeyValue(c.Out, "Status", r.Status)
	printKeyValue(c.Out, "Reason", r.Reason)
	printKeyValue(c.Out, "Created", r.CreatedAt)
	printKeyValue(c.Out, "Updated", r.UpdatedAt)
}

// parseID parses a numeric command argument, reporting failures as a
// validation error on field.
func parseID(field, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return validate.PositiveID(field, 0)
	}
	return validate.PositiveID(field, id)
}
