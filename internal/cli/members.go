package cli

import (
	"fmt"

	"github.com/jrsteele09/temco-admin/internal/utils"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

func (c *cli) membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Bank members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var params services.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List and search members",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			res, err := app.Members(cmd.Context(), params)
			if err != nil {
				return c.loginHint(err)
			}

			out := cmd.OutOrStdout()
			printFallbackBanner(out, res)
			w := newTable(out)
			fmt.Fprintln(w, "ID\tMEMBER NO\tNAME\tEMAIL\tNIC\tACTIVE")
			for _, m := range res.Data.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.MembershipNo, m.DisplayName(),
					orDash(utils.Value(m.Email)), orDash(utils.Value(m.NIC)), yesNo(m.IsActive))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			printPageFooter(out, res.Data)
			return nil
		},
	}
	addListFlags(list, &params)

	cmd.AddCommand(list)
	return cmd
}

func (c *cli) impersonateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impersonate <memberID>",
		Short: "Act as a member in the customer portal",
		Long: `Switch the session to a member and print the customer portal URL that opens
the member's dashboard. Run "temco-admin impersonate stop" to return to your account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := c.App()
			if err != nil {
				return err
			}
			member, fromFallback, err := app.FindMember(cmd.Context(), id)
			if err != nil {
				return c.loginHint(err)
			}
			portal, err := app.ImpersonateMember(*member)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if fromFallback {
				fmt.Fprintln(out, "Backend unavailable, member taken from fallback data")
			}
			fmt.Fprintf(out, "Now impersonating %s (%s)\n", member.DisplayName(), member.MembershipNo)
			fmt.Fprintf(out, "Portal: %s\n", portal)
			return nil
		},
	}

	stop := &cobra.Command{
		Use:   "stop",
		Short: "Return to the operator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			user, err := app.StopImpersonation()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Back as %s (%s)\n", user.FullName, user.Username)
			return nil
		},
	}

	cmd.AddCommand(stop)
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
