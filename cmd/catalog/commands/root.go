// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"log/slog"

	"github.com/l3montree-dev/catalog/config"
	"github.com/l3montree-dev/catalog/shared"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Product and project catalog",
	Long:  `catalog serves the REST API of the product and project catalog and manages its database schema.`,
	// serving is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage: true,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig reads the .env file and the environment and initializes the logger.
func loadConfig() (config.Config, error) {
	if err := shared.LoadConfig(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg, err := config.Load(config.NewViper())
	if err != nil {
		return config.Config{}, err
	}
	shared.InitLogger(shared.ParseLogLevel(cfg.LogLevel))
	return cfg, nil
}
