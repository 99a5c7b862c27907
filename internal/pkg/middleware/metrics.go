// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedPath 没有命中路由的请求统一记成一个 path
const unmatchedPath = "unmatched"

// MetricsBuilder 同一个进程里的 web 和 admin 服务共用一组指标，用 server 区分
type MetricsBuilder struct {
	summaryVec  *prometheus.SummaryVec
	counterVec  *prometheus.CounterVec
	inFlightVec *prometheus.GaugeVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"server", "method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "emall",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emall",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		inFlightVec: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "emall",
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests being served",
		}, []string{"server"}),
	}
}

func (a *MetricsBuilder) Build(server string) gin.HandlerFunc {
	inFlight := a.inFlightVec.WithLabelValues(server)
	return func(ctx *gin.Context) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		values := []string{server, ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		a.summaryVec.WithLabelValues(values...).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(values...).Inc()
	}
}
