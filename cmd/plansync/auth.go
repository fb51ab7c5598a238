package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"plansync/config"
	"plansync/pkg/gcalendar"
)

func authCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access and save the token",
		Long: `Run once with OAuth desktop app credentials. Open the printed URL, sign in,
then paste the authorization code. The token is saved to the configured
token path and refreshed automatically afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentialsPath == "" || tokenPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if credentialsPath == "" {
					credentialsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if tokenPath == "" {
					tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}
			oauthCfg, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth desktop app credentials file?)", err, credentialsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("plansync", oauth2.AccessTypeOffline, oauth2.ApprovalForce))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth client credentials file (default from config)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to save the token (default from config)")
	return cmd
}
