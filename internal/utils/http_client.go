package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. When hc is non-nil resty
// sends requests through it, which lets tests route calls to an
// httptest.Server.
//
// No client-wide timeout is set: long-lived streaming responses share the
// client, so deadlines come from request contexts.
func NewHTTPClient(hc *http.Client) *HTTPClient {
	if hc == nil {
		return &HTTPClient{Client: resty.New()}
	}
	return &HTTPClient{Client: resty.NewWithClient(hc)}
}
