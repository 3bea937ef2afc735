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

package router

import "database/sql"

// InfoResponse is the typed response returned by the /api/v1/info/ endpoint.
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"go_version,omitempty"`
	NumGoroutines int      `json:"num_goroutines,omitempty"`
	Mem           MemStats `json:"mem"`
}

// MemStats is a subset of runtime.MemStats
type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heap_alloc"`
}

// PoolInfo never contains credentials.
type PoolInfo struct {
	DBName          string `json:"db_name,omitempty"`
	MaxOpenConns    int32  `json:"max_open_conns,omitempty"`
	ConnMaxLifetime string `json:"conn_max_lifetime,omitempty"`
	ConnMaxIdleTime string `json:"conn_max_idle_time,omitempty"`

	TotalConns    int `json:"total_conns,omitempty"`
	IdleConns     int `json:"idle_conns,omitempty"`
	AcquiredConns int `json:"acquired_conns,omitempty"`
}

type DatabaseInfo struct {
	sql.DBStats `json:"-"`
	Status      string  `json:"status"`
	Error       *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migration_version,omitempty"`
	MigrationDirty   *bool   `json:"migration_dirty,omitempty"`
	MigrationError   *string `json:"migration_error,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}
