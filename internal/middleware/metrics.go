package middleware

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Talts01/SocialPizza/internal/metrics"
)

// Metrics records per-request counters and latencies. Unmatched routes are
// collapsed under a single label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.ObserveHTTP(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
