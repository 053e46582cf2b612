// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-open-banking/internal/client"
	"github.com/MKhiriev/go-open-banking/internal/config"
	"github.com/MKhiriev/go-open-banking/internal/logger"
	"github.com/MKhiriev/go-open-banking/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	rootCmd := &cobra.Command{
		Use:     "banking",
		Short:   "Interactive REPL for the Investec Open Banking API",
		Version: info.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(cmd.Flags())
			if err != nil {
				return err
			}

			log := logger.NewClientLogger("banking-cli", cfg.Log.Path)

			app, err := client.NewApp(cfg, info, cmd.InOrStdin(), cmd.OutOrStdout(), log)
			if err != nil {
				log.Error().Err(err).Msg("init client app error")
				return err
			}

			return app.Run(cmd.Context())
		},
	}

	config.RegisterFlags(rootCmd.Flags())

	return rootCmd
}
