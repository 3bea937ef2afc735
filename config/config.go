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

package config

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/catalog/database"
	"github.com/l3montree-dev/catalog/storage"
	"github.com/spf13/viper"
)

const (
	LogoStorageFilesystem = "fs"
	LogoStorageS3         = "s3"
)

type Config struct {
	Port               int
	LogLevel           string
	CORSAllowedOrigins []string
	ErrorTrackingDSN   string
	Environment        string
	DisableAutomigrate bool

	LogoStorage string
	MediaRoot   string
	MediaURL    string
	S3          storage.S3Config

	Database database.PoolConfig
}

// NewViper returns a viper instance reading the environment on top of the
// defaults below.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("DISABLE_AUTOMIGRATE", false)

	v.SetDefault("LOGO_STORAGE", LogoStorageFilesystem)
	v.SetDefault("MEDIA_ROOT", "media")
	v.SetDefault("MEDIA_URL", "/media/")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "catalog")
	v.SetDefault("POSTGRES_PASSWORD", "catalog")
	v.SetDefault("POSTGRES_DB", "catalog")
	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:               v.GetInt("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ErrorTrackingDSN:   v.GetString("ERROR_TRACKING_DSN"),
		Environment:        v.GetString("ENVIRONMENT"),
		DisableAutomigrate: v.GetBool("DISABLE_AUTOMIGRATE"),

		LogoStorage: strings.ToLower(v.GetString("LOGO_STORAGE")),
		MediaRoot:   v.GetString("MEDIA_ROOT"),
		MediaURL:    v.GetString("MEDIA_URL"),
		S3: storage.S3Config{
			Bucket:    v.GetString("S3_BUCKET"),
			Region:    v.GetString("S3_REGION"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
			PublicURL: v.GetString("S3_PUBLIC_URL"),
		},

		Database: database.GetPoolConfig(v),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	switch cfg.LogoStorage {
	case LogoStorageFilesystem:
		if cfg.MediaRoot == "" {
			return cfg, fmt.Errorf("MEDIA_ROOT must be set when LOGO_STORAGE is %q", LogoStorageFilesystem)
		}
	case LogoStorageS3:
		if cfg.S3.Bucket == "" {
			return cfg, fmt.Errorf("S3_BUCKET must be set when LOGO_STORAGE is %q", LogoStorageS3)
		}
	default:
		return cfg, fmt.Errorf("unknown LOGO_STORAGE %q, expected %q or %q", cfg.LogoStorage, LogoStorageFilesystem, LogoStorageS3)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
