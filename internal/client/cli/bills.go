package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func billsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Unpaid bills, payment state and reminders",
	}
	cmd.AddCommand(
		billsUnpaidCmd(app),
		billsSetPaidCmd(app, "pay", true),
		billsSetPaidCmd(app, "unpay", false),
		billsRemindCmd(app),
		billsRemindAllCmd(app),
	)
	return cmd
}

func billsUnpaidCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unpaid",
		Short: "List unpaid bills and their total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			res, err := app.backend.UnpaidBills(ctx)
			if err != nil {
				return err
			}
			printReadings(cmd.OutOrStdout(), res.GetBills())
			fmt.Fprintf(cmd.OutOrStdout(), "Unpaid: %d, total %s\n", res.GetCount(), res.GetTotalAmount())
			return nil
		},
	}
}

func billsSetPaidCmd(app *App, use string, paid bool) *cobra.Command {
	short := "Mark a bill as unpaid (admin)"
	if paid {
		short = "Mark a bill as paid (admin)"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			rd, err := app.backend.SetPaid(ctx, args[0], paid)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bill %s paid=%t\n", rd.GetId(), rd.GetIsPaid())
			return nil
		},
	}
}

func billsRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind <id>",
		Short: "Email a payment reminder for one bill (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			res, err := app.backend.SendReminder(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.GetMessage(), res.GetRecipient())
			return nil
		},
	}
}

func billsRemindAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind-all",
		Short: "Email reminders for every unpaid bill (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			res, err := app.backend.SendAllReminders(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.GetMessage())
			if len(res.GetDetails()) == 0 {
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "READING\tAPT\tEMAIL\tSTATUS\tREASON")
			for _, d := range res.GetDetails() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.GetReadingId(), d.GetApartmentNumber(), d.GetEmail(), d.GetStatus(), d.GetReason())
			}
			return tw.Flush()
		},
	}
}
