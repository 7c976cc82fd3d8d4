package main

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/config"
)

func seedCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample records into an empty SQLite store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cfg.Store.Backend != config.BackendSQLite {
				return errors.New("seed needs store.backend sqlite; the memory store is seeded at startup")
			}
			cfg.Store.Seed = true

			logger, closeLog := newLogger(cfg)
			defer closeLog()

			a, report, err := buildApp(cmd.Context(), cfg, logger, time.Now())
			if err != nil {
				return err
			}
			defer a.Close()

			kinds := make([]string, 0, len(report))
			for kind := range report {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				status := "already populated"
				if report[kind] {
					status = "seeded"
				}
				fmt.Fprintf(out, "%-12s %s\n", kind, status)
			}
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for an admin password",
		Long: `Print a bcrypt hash for auth.admins[].password_hash or
BIZDESK_ADMIN_PASSWORD_HASH. Without an argument the password is read
from the first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password is empty")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bizdesk %s\n", version)
		},
	}
}
