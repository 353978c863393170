package rdapexpiry

import (
	"time"

	"go.uber.org/zap"
)

type Option func(*Client)

func WithHTTPDoer(d Doer) Option         { return func(c *Client) { c.hc = d } }
func WithUserAgent(ua string) Option     { return func(c *Client) { c.ua = ua } }
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }
func WithBootstrapURL(u string) Option   { return func(c *Client) { c.bootstrapURL = u } }
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
