package httpx

import "net/http"

// Client abstracts the HTTP transport so callers can be exercised against a
// mock in tests. *http.Client satisfies it.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
