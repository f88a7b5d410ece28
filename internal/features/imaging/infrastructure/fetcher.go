package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
)

const userAgent = "fashion-advisor/1.0 (+image-resolver)"

// ErrForbiddenHost is returned when a page resolves to a loopback, private,
// link-local or otherwise non-public address.
var ErrForbiddenHost = errors.New("host is not publicly routable")

// PageFetcher downloads a page body as text.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

type httpPageFetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewHTTPPageFetcher creates a PageFetcher bounded by timeout. Bodies longer
// than maxBodyBytes are truncated. Unless allowPrivate is set, connections to
// non-public addresses are refused after DNS resolution, redirects included.
func NewHTTPPageFetcher(timeout time.Duration, maxBodyBytes int64, allowPrivate bool) PageFetcher {
	dialer := &net.Dialer{Timeout: timeout}
	if !allowPrivate {
		dialer.Control = publicOnly
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	if !allowPrivate {
		// Requests go straight to the page host.
		transport.Proxy = nil
	}

	return &httpPageFetcher{
		client:       &http.Client{Timeout: timeout, Transport: transport},
		maxBodyBytes: maxBodyBytes,
	}
}

// publicOnly runs before each connect with the resolved address.
func publicOnly(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenHost, address)
	}
	if !isPublic(ap.Addr()) {
		return fmt.Errorf("%w: %s", ErrForbiddenHost, ap.Addr())
	}
	return nil
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast()
}

func (f *httpPageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("bad status fetching %s: %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", pageURL, err)
	}
	return string(body), nil
}
