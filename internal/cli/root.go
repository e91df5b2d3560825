// Package cli holds the cobra commands of the admin console.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/jrsteele09/temco-admin/console"
	"github.com/jrsteele09/temco-admin/fallback"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

// AppFactory builds the console app the first time a command needs it.
type AppFactory func() (*console.App, error)

type cli struct {
	newApp AppFactory
	app    *console.App
}

func (c *cli) App() (*console.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	app, err := c.newApp()
	if err != nil {
		return nil, err
	}
	c.app = app
	return app, nil
}

// NewRootCmd builds the command tree on top of the app returned by newApp.
func NewRootCmd(newApp AppFactory) *cobra.Command {
	c := &cli{newApp: newApp}

	root := &cobra.Command{
		Use:   "temco-admin",
		Short: "TEMCO Bank administration console",
		Long: `temco-admin manages staff users, roles and audit logs of the TEMCO Bank
backend, looks up members and opens the customer portal as a member.

The session is kept in the data folder (FOLDER, default ./data) between runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.passwordCmd(),
		c.usersCmd(),
		c.rolesCmd(),
		c.auditCmd(),
		c.membersCmd(),
		c.impersonateCmd(),
		c.emailCmd(),
		c.customersCmd(),
		c.dashboardCmd(),
	)
	return root
}

// loginHint turns "the session is gone" into something the user can act on.
func (c *cli) loginHint(err error) error {
	if c.app != nil && c.app.LoginRequired() {
		return fmt.Errorf("%w (session expired, run `temco-admin login`)", err)
	}
	return err
}

func addListFlags(cmd *cobra.Command, p *services.ListParams) {
	cmd.Flags().IntVar(&p.Page, "page", services.DefaultPage, "page number, starting at 0")
	cmd.Flags().IntVar(&p.Size, "size", services.DefaultPageSize, "page size")
	cmd.Flags().StringVarP(&p.Search, "search", "s", "", "search term")
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printFallbackBanner[T any](w io.Writer, res fallback.Result[T]) {
	if res.Fallback {
		fmt.Fprintf(w, "Backend unavailable (%v), showing fallback data\n\n", res.Err)
	}
}

func printPageFooter[T any](w io.Writer, page *services.Page[T]) {
	fmt.Fprintf(w, "\nPage %d of %d, %d total\n", page.Page+1, max(page.TotalPages, 1), page.TotalElements)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
