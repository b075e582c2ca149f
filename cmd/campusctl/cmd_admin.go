package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/inframe/campus-portal/internal/models"
	"github.com/inframe/campus-portal/internal/storage"
	"github.com/inframe/campus-portal/pkg/client"
)

// enquiriesCmd is the parent command for enquiry administration
var enquiriesCmd = &cobra.Command{
	Use:   "enquiries",
	Short: "Manage admission enquiries",
	Long: `List admission enquiries and move them through their workflow.

Available subcommands:
  list   - List all enquiries
  stats  - Show enquiry counts per status
  status - Update the status of an enquiry`,
}

var enquiriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all enquiries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		enquiries, err := newClient().ListEnquiries(ctx)
		if err != nil {
			return err
		}
		renderEnquiries(cmd.OutOrStdout(), enquiries)
		return nil
	},
}

var enquiriesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show enquiry counts per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		stats, err := newClient().EnquiryStats(ctx)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Status", "Count"})
		table.Append([]string{client.EnquiryNew, strconv.Itoa(stats.New)})
		table.Append([]string{client.EnquiryContacted, strconv.Itoa(stats.Contacted)})
		table.Append([]string{client.EnquiryEnrolled, strconv.Itoa(stats.Enrolled)})
		table.Append([]string{client.EnquiryNotInterested, strconv.Itoa(stats.NotInterested)})
		table.SetFooter([]string{"Total", strconv.Itoa(stats.Total)})
		table.Render()
		return nil
	},
}

var statusNotes string

var enquiriesStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update the status of an enquiry",
	Long: `Update the status of an enquiry.

Valid statuses: new, contacted, enrolled, not-interested`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		enquiry, err := newClient().UpdateEnquiryStatus(ctx, args[0], args[1], statusNotes)
		if err != nil {
			return err
		}
		color.Green("Enquiry %s is now %s", enquiry.ID, enquiry.Status)
		return nil
	},
}

var (
	submissionsDSN   string
	submissionsKind  string
	submissionsLimit int
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List recorded form submissions from the portal database",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := models.SubmissionKind(submissionsKind)
		if kind != "" && !kind.Valid() {
			return fmt.Errorf("unknown submission kind %q", submissionsKind)
		}
		if submissionsDSN == "" {
			return fmt.Errorf("--dsn or DATABASE_DSN is required")
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		repo, err := storage.NewPostgresRepository(ctx, storage.PostgresConfig{DSN: submissionsDSN, MaxOpenConns: 2})
		if err != nil {
			return err
		}
		defer repo.Close()

		return listSubmissions(ctx, cmd.OutOrStdout(), repo, kind, submissionsLimit)
	},
}

func init() {
	enquiriesStatusCmd.Flags().StringVar(&statusNotes, "notes", "", "notes stored with the status change")
	enquiriesCmd.AddCommand(enquiriesListCmd, enquiriesStatsCmd, enquiriesStatusCmd)

	submissionsCmd.Flags().StringVar(&submissionsDSN, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN")
	submissionsCmd.Flags().StringVar(&submissionsKind, "kind", "", "filter by kind (enquiry, contact, job-application)")
	submissionsCmd.Flags().IntVar(&submissionsLimit, "limit", 20, "maximum rows")
}

func renderEnquiries(w io.Writer, enquiries []client.Enquiry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Course", "Status", "Created"})
	for _, e := range enquiries {
		table.Append([]string{e.ID, e.Name, e.Email, e.Course, e.Status, e.CreatedAt})
	}
	table.Render()
}

func listSubmissions(ctx context.Context, w io.Writer, repo storage.Repository, kind models.SubmissionKind, limit int) error {
	subs, err := repo.ListSubmissions(ctx, kind, limit, 0)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Kind", "Success", "Status", "Created"})
	for _, s := range subs {
		table.Append([]string{
			s.ID.String(),
			string(s.Kind),
			strconv.FormatBool(s.Success),
			strconv.Itoa(s.StatusCode),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	return nil
}
