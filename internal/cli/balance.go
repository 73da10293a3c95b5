package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/api/balance"
	"github.com/matzehuels/steadfast/pkg/api/location"
)

func (c *CLI) balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			b, err := spin(ctx, c.Err, "Fetching balance...", func() (*balance.Balance, error) {
				return client.Balance().Current(ctx)
			})
			if err != nil {
				return err
			}
			printSuccess(c.Out, "Current balance: %s", StyleNumber.Render(formatAmount(b.CurrentBalance.Float64())))
			return nil
		},
	}
}

func (c *CLI) locationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "locations",
		Aliases: []string{"police-stations"},
		Short:   "List police stations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := spin(ctx, c.Err, "Fetching police stations...", func() (*location.PoliceStationList, error) {
				return client.Locations().PoliceStations(ctx)
			})
			if err != nil {
				return err
			}
			if len(l.Data) == 0 {
				printInfo(c.Out, "No police stations found")
				return nil
			}
			rows := make([][]string, 0, len(l.Data))
			for _, s := range l.Data {
				rows = append(rows, []string{formatID(int64(s.ID)), s.Name, orDash(s.Location)})
			}
			printTable(c.Out, []string{"ID", "Name", "Location"}, rows)
			return nil
		},
	}
}
