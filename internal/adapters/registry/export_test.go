// export_test.go exports private functions for white-box testing.
package registry

import (
	"net/http"
	"time"

	"go.trai.ch/modup/internal/core/ports"
)

// NewClientWithHTTP exports newClientWithHTTP for testing.
func NewClientWithHTTP(logger ports.Logger, cacheDir string, client *http.Client) *Client {
	return newClientWithHTTP(logger, cacheDir, client)
}

// SetNow overrides the clock used for cache expiry.
func (c *Client) SetNow(now func() time.Time) {
	c.now = now
}

// WithRetry exports withRetry for testing.
var WithRetry = withRetry
