package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (c *cli) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend",
		Long: `Sign in with a staff account. Without --password the password is read from
the terminal, or from the first line of stdin when it is not a terminal.`,
		Example: `  temco-admin login -u admin
  echo "$PASSWORD" | temco-admin login -u admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			res, err := app.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s (%s)\n", res.User.FullName, res.User.Role)
			if res.MustChangePassword {
				fmt.Fprintln(out, "Your password must be changed: run `temco-admin password`")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when empty)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// readPassword reads without echo from a terminal, otherwise a line from the command's input.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			app.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			s := app.Session()
			if !s.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			if sync {
				if _, err := app.SyncProfile(cmd.Context()); err != nil {
					return c.loginHint(err)
				}
			}

			user := s.CurrentUser()
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "User:\t%s (%s)\n", user.FullName, services.Initials(user.FullName))
			fmt.Fprintf(w, "Username:\t%s\n", user.Username)
			fmt.Fprintf(w, "Email:\t%s\n", user.Email)
			fmt.Fprintf(w, "Role:\t%s\n", user.Role)
			fmt.Fprintf(w, "Permissions:\t%s\n", strings.Join(user.Permissions, ", "))
			if link := s.Snapshot().Impersonation; link != nil {
				fmt.Fprintf(w, "Impersonated by:\t%s (%s)\n", link.FullName, link.Username)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&sync, "sync", false, "refresh the profile from the backend first")
	return cmd
}

func (c *cli) passwordCmd() *cobra.Command {
	var req services.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the signed-in user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			if err := app.Services().Auth.ChangePassword(cmd.Context(), req); err != nil {
				return c.loginHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.OldPassword, "old", "", "current password")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "new password")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm", "", "new password again")
	return cmd
}
