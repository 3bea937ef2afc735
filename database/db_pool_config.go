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

package database

import (
	"time"

	"github.com/spf13/viper"
)

// PoolConfig holds database connection pool configuration
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// GetPoolConfig reads the pool configuration from v. Invalid or missing
// values fall back to the defaults registered in the config package.
//
// Keys:
// - DB_MAX_OPEN_CONNS: Maximum number of open connections (default: 25)
// - DB_MIN_CONNS: Minimum number of idle connections (default: 5)
// - DB_CONN_MAX_LIFETIME: Maximum connection lifetime, e.g. "5m" (default: 4 hours)
// - DB_CONN_MAX_IDLE_TIME: Maximum idle time before closing, e.g. "1m" (default: 15 minutes)
func GetPoolConfig(v *viper.Viper) PoolConfig {
	cfg := PoolConfig{
		MaxOpenConns:    25,
		MinConns:        5,
		ConnMaxLifetime: 4 * time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,

		User:     v.GetString("POSTGRES_USER"),
		Password: v.GetString("POSTGRES_PASSWORD"),
		Host:     v.GetString("POSTGRES_HOST"),
		Port:     v.GetString("POSTGRES_PORT"),
		DBName:   v.GetString("POSTGRES_DB"),
	}

	if val := v.GetInt32("DB_MAX_OPEN_CONNS"); val > 0 {
		cfg.MaxOpenConns = val
	}
	if v.IsSet("DB_MIN_CONNS") {
		if val := v.GetInt32("DB_MIN_CONNS"); val >= 0 {
			cfg.MinConns = val
		}
	}
	if val := v.GetDuration("DB_CONN_MAX_LIFETIME"); val > 0 {
		cfg.ConnMaxLifetime = val
	}
	if val := v.GetDuration("DB_CONN_MAX_IDLE_TIME"); val > 0 {
		cfg.ConnMaxIdleTime = val
	}

	return cfg
}
