package wallpaper

import (
	"net/http"
	"net/url"
)

// UserAgentTransport wraps an http.RoundTripper and adds a User-Agent header.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent header.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	return t.base().RoundTrip(clonedReq)
}

func (t *UserAgentTransport) base() http.RoundTripper {
	if t.RoundTripper == nil {
		return http.DefaultTransport
	}
	return t.RoundTripper
}

// NewHTTPClient returns the client used for every request the application
// makes. It keeps the transport's default timeouts. file:// URLs are served
// from wallpaperDir, so a provider can hand out images already on disk and
// the pipeline fetches them like any other URL.
func NewHTTPClient(userAgent, wallpaperDir string) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.RegisterProtocol("file", http.NewFileTransport(http.Dir(wallpaperDir)))

	return &http.Client{
		Transport: &UserAgentTransport{RoundTripper: base, UserAgent: userAgent},
	}
}

// FileURL returns the file:// URL NewHTTPClient resolves to name inside the
// wallpaper directory.
func FileURL(name string) string {
	return (&url.URL{Scheme: "file", Path: "/" + name}).String()
}
