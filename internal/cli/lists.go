package cli

import (
	"fmt"

	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Staff users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var params services.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List staff users",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			res, err := app.Users(cmd.Context(), params)
			if err != nil {
				return c.loginHint(err)
			}

			out := cmd.OutOrStdout()
			printFallbackBanner(out, res)
			w := newTable(out)
			fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE\tACTIVE\tLAST LOGIN")
			for _, u := range res.Data.Content {
				lastLogin := "-"
				if u.LastLoginAt != nil {
					lastLogin = *u.LastLoginAt
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.DisplayName(), u.RoleName, yesNo(u.IsActive), lastLogin)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			printPageFooter(out, res.Data)
			return nil
		},
	}
	addListFlags(list, &params)
	list.Flags().StringVar(&params.Status, "status", services.FilterAll, "active, inactive or all")

	cmd.AddCommand(list)
	return cmd
}

func (c *cli) auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var activityParams services.ListParams
	activity := &cobra.Command{
		Use:   "activity",
		Short: "List login and session activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			res, err := app.ActivityLogs(cmd.Context(), activityParams)
			if err != nil {
				return c.loginHint(err)
			}
			out := cmd.OutOrStdout()
			printFallbackBanner(out, res)
			return printLogs(cmd, res.Data)
		},
	}
	addListFlags(activity, &activityParams)
	activity.Flags().StringVar(&activityParams.Action, "action", services.FilterAll, "LOGIN, LOGOUT, CREATE, UPDATE, DELETE or all")

	var changeParams services.ListParams
	changes := &cobra.Command{
		Use:   "changes",
		Short: "List data changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			page, err := app.Services().Audit.DataChangeLogs(cmd.Context(), changeParams)
			if err != nil {
				return c.loginHint(err)
			}
			return printLogs(cmd, page)
		},
	}
	addListFlags(changes, &changeParams)

	cmd.AddCommand(activity, changes)
	return cmd
}

func printLogs(cmd *cobra.Command, page *services.Page[services.ActivityLog]) error {
	out := cmd.OutOrStdout()
	w := newTable(out)
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tSTATUS\tIP\tDETAILS")
	for _, l := range page.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Timestamp, l.Username, l.Action, l.Status, l.IPAddress, l.Details)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPageFooter(out, page)
	return nil
}
