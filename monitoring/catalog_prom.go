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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "catalog_http_requests_total",
	Help: "Number of handled http requests by method, route and status code",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "catalog_http_request_duration_seconds",
	Help:    "Duration of handled http requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

var LogoUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "catalog_logo_uploads_total",
	Help: "Number of logo uploads by entity kind and result",
}, []string{"kind", "result"})

var LogoUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_logo_upload_bytes",
	Help:    "Size of accepted logo uploads in bytes",
	Buckets: prometheus.ExponentialBuckets(1024, 4, 7),
})
