package cli

import (
	"fmt"

	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/spf13/cobra"
)

func (a *App) promptIfEmpty(cmd *cobra.Command, value *string, prompt string) error {
	if *value != "" {
		return nil
	}
	v, err := GetSimpleText(a.reader, prompt, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	*value = v
	return nil
}

func loginCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.promptIfEmpty(cmd, &email, "Enter email"); err != nil {
				return err
			}
			password, err := GetPassword(cmd.OutOrStdout(), "Enter password")
			if err != nil {
				return err
			}

			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			u, err := app.backend.Login(ctx, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", u.GetEmail(), u.GetRole())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.backend.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func registerCmd(app *App) *cobra.Command {
	var req pb.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a resident account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.promptIfEmpty(cmd, &req.Email, "Enter email"); err != nil {
				return err
			}
			if err := app.promptIfEmpty(cmd, &req.Name, "Enter name"); err != nil {
				return err
			}
			password, err := GetPassword(cmd.OutOrStdout(), "Choose password")
			if err != nil {
				return err
			}
			confirm, err := GetPassword(cmd.OutOrStdout(), "Repeat password")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}
			req.Password = password

			ctx, cancel := app.timeout(cmd.Context())
			defer cancel()
			res, err := app.backend.Register(ctx, &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.GetMessage(), res.GetUser().GetEmail())
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "full name")
	cmd.Flags().StringVar(&req.ApartmentNumber, "apartment", "", "apartment number")
	return cmd
}
