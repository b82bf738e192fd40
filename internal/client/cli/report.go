package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func reportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Billing reports",
	}
	cmd.AddCommand(reportAnnualCmd(app))
	return cmd
}

func reportAnnualCmd(app *App) *cobra.Command {
	var (
		year     int
		export   bool
		download string
	)
	cmd := &cobra.Command{
		Use:   "annual",
		Short: "Annual consumption and payment summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var y *int
			if cmd.Flags().Changed("year") {
				y = &year
			}
			if download != "" {
				export = true
			}

			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			out := cmd.OutOrStdout()

			if !export {
				rep, err := app.backend.AnnualReport(ctx, y)
				if err != nil {
					return err
				}
				s := rep.GetSummary()
				fmt.Fprintf(out, "Year %d: %d readings\n", rep.GetYear(), s.GetTotalReadings())
				fmt.Fprintf(out, "Cold water: %s\nHot water: %s\n", s.GetTotalColdWater(), s.GetTotalHotWater())
				fmt.Fprintf(out, "Total: %s (paid %s, unpaid %s)\n", s.GetTotalAmount(), s.GetPaidAmount(), s.GetUnpaidAmount())
				return nil
			}

			res, err := app.backend.ExportAnnualReport(ctx, y)
			if err != nil {
				return err
			}
			if download == "" {
				fmt.Fprintf(out, "Report %d archived as %s\n%s\n", res.GetYear(), res.GetKey(), res.GetUrl())
				return nil
			}

			f, err := os.Create(download)
			if err != nil {
				return err
			}
			n, err := app.download(ctx, res.GetUrl(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(download)
				return err
			}
			fmt.Fprintf(out, "Report %d saved to %s (%d bytes)\n", res.GetYear(), download, n)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	cmd.Flags().BoolVar(&export, "export", false, "archive the report as CSV and print a download link")
	cmd.Flags().StringVar(&download, "download", "", "export and save the CSV to this file")
	return cmd
}
