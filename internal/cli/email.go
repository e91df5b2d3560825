package cli

import (
	"fmt"

	"github.com/jrsteele09/temco-admin/services"
	"github.com/spf13/cobra"
)

func (c *cli) emailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Compose email to members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	templates := &cobra.Command{
		Use:   "templates",
		Short: "List email templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			list, err := app.Services().Email.Templates(cmd.Context())
			if err != nil {
				return c.loginHint(err)
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tSUBJECT")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.Subject)
			}
			return w.Flush()
		},
	}

	var req services.EmailRequest
	send := &cobra.Command{
		Use:   "send",
		Short: "Send an email to selected members or to all of them",
		Example: `  temco-admin email send --to 1 --to 4 --subject "Notice" --body "..."
  temco-admin email send --all --template welcome --subject "Welcome" --body "..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			res, err := app.Services().Email.Send(cmd.Context(), req)
			if err != nil {
				return c.loginHint(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Message)
			if res.SuccessCount > 0 || res.FailCount > 0 {
				fmt.Fprintf(out, "Sent: %d, failed: %d\n", res.SuccessCount, res.FailCount)
			}
			for _, f := range res.Failures {
				fmt.Fprintf(out, "  %s\n", f)
			}
			if !res.Success {
				return fmt.Errorf("email not sent")
			}
			return nil
		},
	}
	send.Flags().Int64SliceVar(&req.MemberIDs, "to", nil, "member id (repeatable)")
	send.Flags().BoolVar(&req.SendToAll, "all", false, "send to every member with an email")
	send.Flags().StringVar(&req.Subject, "subject", "", "subject")
	send.Flags().StringVar(&req.Body, "body", "", "body")
	send.Flags().StringVar(&req.TemplateID, "template", "", "template id")

	cmd.AddCommand(templates, send)
	return cmd
}

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.App()
			if err != nil {
				return err
			}
			s, err := app.Services().Dashboard.Summary(cmd.Context())
			if err != nil {
				return c.loginHint(err)
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Customers:\t%d\n", s.TotalCustomers)
			fmt.Fprintf(w, "Active enrollments:\t%d\n", s.ActiveEnrollments)
			fmt.Fprintf(w, "Pending payments:\t%d\n", s.PendingPayments)
			fmt.Fprintf(w, "Overdue payments:\t%d\n", s.OverduePayments)
			fmt.Fprintf(w, "Collections today:\t%d\n", s.TodayCollections)
			fmt.Fprintf(w, "Collections this month:\t%d\n", s.MonthlyCollections)
			return w.Flush()
		},
	}
}
