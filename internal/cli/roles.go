package cli

import (
	"fmt"

	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

func (c *cli) rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var params services.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			res, err := app.Roles(cmd.Context(), params)
			if err != nil {
				return c.loginHint(err)
			}

			out := cmd.OutOrStdout()
			printFallbackBanner(out, res)
			w := newTable(out)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tUSERS\tPERMISSIONS\tACTIVE")
			for _, r := range res.Data.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n", r.ID, r.RoleCode, r.RoleName, r.UserCount, r.PermissionCount, yesNo(r.IsActive))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			printPageFooter(out, res.Data)
			return nil
		},
	}
	addListFlags(list, &params)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := c.App()
			if err != nil {
				return err
			}
			role, err := app.Services().Roles.Get(cmd.Context(), id)
			if err != nil {
				return c.loginHint(err)
			}
			return printRole(cmd, role)
		},
	}

	var req services.RoleRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			role, err := app.Services().Roles.Create(cmd.Context(), req)
			if err != nil {
				return c.loginHint(err)
			}
			return printRole(cmd, role)
		},
	}
	create.Flags().StringVar(&req.RoleCode, "code", "", "role code, e.g. LOAN_OFFICER")
	create.Flags().StringVar(&req.RoleName, "name", "", "role name")
	create.Flags().StringVar(&req.Description, "description", "", "description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := c.App()
			if err != nil {
				return err
			}
			if err := app.Services().Roles.Delete(cmd.Context(), id); err != nil {
				return c.loginHint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Role %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, create, del)
	return cmd
}

func printRole(cmd *cobra.Command, r *services.Role) error {
	w := newTable(cmd.OutOrStdout())
	fmt.Fprintf(w, "ID:\t%d\n", r.ID)
	fmt.Fprintf(w, "Code:\t%s\n", r.RoleCode)
	fmt.Fprintf(w, "Name:\t%s\n", r.RoleName)
	fmt.Fprintf(w, "Description:\t%s\n", r.Description)
	fmt.Fprintf(w, "Users:\t%d\n", r.UserCount)
	fmt.Fprintf(w, "Permissions:\t%d\n", r.PermissionCount)
	fmt.Fprintf(w, "Active:\t%s\n", yesNo(r.IsActive))
	return w.Flush()
}
