package cli

import (
	"fmt"

	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

func (c *cli) customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var params services.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			page, err := app.Services().Customers.List(cmd.Context(), params)
			if err != nil {
				return c.loginHint(err)
			}

			out := cmd.OutOrStdout()
			w := newTable(out)
			fmt.Fprintln(w, "ID\tSTUDENT ID\tNAME\tEMAIL\tSTATUS\tDUES")
			for _, cu := range page.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", cu.ID, cu.StudentID, cu.FullName, cu.Email, cu.CustomerStatus, cu.OutstandingDueCount)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			printPageFooter(out, page)
			return nil
		},
	}
	addListFlags(list, &params)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one customer",
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
			cu, err := app.Services().Customers.Get(cmd.Context(), id)
			if err != nil {
				return c.loginHint(err)
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Name:\t%s\n", cu.FullName)
			fmt.Fprintf(w, "Student ID:\t%s\n", cu.StudentID)
			fmt.Fprintf(w, "NIC:\t%s\n", cu.NIC)
			fmt.Fprintf(w, "Email:\t%s\n", cu.Email)
			fmt.Fprintf(w, "Mobile:\t%s\n", cu.MobileNo)
			fmt.Fprintf(w, "Date of birth:\t%s\n", cu.DateOfBirth)
			fmt.Fprintf(w, "Bank:\t%s\n", cu.BankName)
			fmt.Fprintf(w, "Status:\t%s\n", cu.CustomerStatus)
			fmt.Fprintf(w, "Registered:\t%s\n", cu.RegistrationDate)
			fmt.Fprintf(w, "Enrollments:\t%d\n", cu.EnrollmentCount)
			fmt.Fprintf(w, "Outstanding dues:\t%d\n", cu.OutstandingDueCount)
			return w.Flush()
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
