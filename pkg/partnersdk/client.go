package partnersdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the partner hub API. It serves the unauthenticated
// operations and creates Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes a Session refuse calls its access token has no scope
	// for before sending them. Tests turn it off to exercise server checks.
	CheckScopes bool
}

// NewClient returns a client with a 10 second timeout and scope checking on.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		CheckScopes: true,
	}
}
