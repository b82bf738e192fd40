package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/spf13/cobra"
)

// shortDate renders an RFC 3339 wire timestamp as a calendar date.
func shortDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format(common.DateLayout)
}

func printReadings(w io.Writer, rs []*pb.Reading) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "No readings")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tAPT\tNAME\tCOLD\tHOT\tAMOUNT\tPAID")
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%t\n",
			r.GetId(), shortDate(r.GetDate()), r.GetApartmentNumber(), r.GetUserName(),
			r.GetColdWater(), r.GetHotWater(), r.GetAmount(), r.GetIsPaid())
	}
	_ = tw.Flush()
}

func readingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readings",
		Short: "List, add and delete meter readings",
	}
	cmd.AddCommand(readingsListCmd(app), readingsAddCmd(app), readingsDeleteCmd(app))
	return cmd
}

func readingsListCmd(app *App) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List readings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			rs, err := app.backend.ListReadings(ctx, from, to)
			if err != nil {
				return err
			}
			printReadings(cmd.OutOrStdout(), rs)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD), inclusive")
	return cmd
}

func readingsAddCmd(app *App) *cobra.Command {
	var req pb.CreateReadingRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a meter reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			rd, err := app.backend.CreateReading(ctx, &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reading %s saved, amount %.2f\n", rd.GetId(), rd.GetAmount())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.ApartmentNumber, "apartment", "", "apartment number")
	f.StringVar(&req.Date, "date", "", "reading date (YYYY-MM-DD)")
	f.Float64Var(&req.ColdWater, "cold", 0, "cold water volume")
	f.Float64Var(&req.HotWater, "hot", 0, "hot water volume")
	_ = cmd.MarkFlagRequired("apartment")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func readingsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			if err := app.backend.DeleteReading(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reading deleted")
			return nil
		},
	}
}
