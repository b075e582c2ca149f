// Command campusctl is an operator CLI for the campus backend and the
// portal's submission log.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/inframe/campus-portal/pkg/client"
)

var (
	backendURL string
	token      string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Inspect the campus backend from the command line",
	Long: `campusctl queries the campus REST backend and the portal submission log.

Read commands need no credentials. Enquiry administration needs a token,
passed with --token or CAMPUS_TOKEN.`,
	SilenceUsage: true,
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", envOr("BACKEND_URL", client.DefaultBackendURL), "backend root URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("CAMPUS_TOKEN"), "bearer token for admin commands")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests")

	rootCmd.AddCommand(healthCmd, coursesCmd, blogCmd, partnersCmd, careersCmd, enquiriesCmd, submissionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newClient builds a backend client from the persistent flags
func newClient() *client.Client {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return client.NewClient(backendURL, backendURL+"/api/v1",
		client.WithTimeout(timeout),
		client.WithSession(client.NewMemorySession(token)),
		client.WithLogger(logger),
	)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend health",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		doc, err := newClient().Health(ctx)
		if err != nil {
			color.Red("backend unavailable")
			return err
		}
		color.Green("backend healthy")
		printDoc(cmd.OutOrStdout(), doc)
		return nil
	},
}

func printDoc(w io.Writer, doc map[string]any) {
	for k, v := range doc {
		fmt.Fprintf(w, "  %s: %v\n", k, v)
	}
}
