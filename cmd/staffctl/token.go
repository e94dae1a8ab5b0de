package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/staffhq/staff-bot/internal/service"
)

// TokenOptions holds flags for the token command.
type TokenOptions struct {
	*RootOptions
	Subject string
	TTL     time.Duration
	JSON    bool
}

// NewTokenCommand issues a bearer token for the /query routes.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a query:read bearer token",
		Long: `Issue a signed token for the HTTP query routes.

Example:
  staffctl token --subject dashboard --ttl 24h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			issued, err := service.NewAuthService(opts.cfg.Auth).IssueQueryToken(opts.Subject, opts.TTL)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.JSON {
				return json.NewEncoder(out).Encode(issued)
			}
			_, err = out.Write([]byte(issued.Token + "\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "who the token is issued to")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 0, "token lifetime (defaults to AUTH_TOKEN_TTL_MINUTES)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print token, subject and expiry as JSON")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
