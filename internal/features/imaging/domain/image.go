package domain

import "errors"

// ErrImageResolution marks any failure to find or fetch an image for a
// product URL.
var ErrImageResolution = errors.New("image resolution failed")

// Source tells which step produced a resolved image.
type Source string

const (
	SourceCache  Source = "cache"
	SourceVendor Source = "vendor"
	SourcePage   Source = "page"
)

// Result is the outcome of resolving one product URL. URL and Source are set
// only when Success is true; Err is set only when it is false.
type Result struct {
	Success bool
	URL     string
	Source  Source
	Err     error
}

// Resolved builds a successful Result.
func Resolved(url string, source Source) Result {
	return Result{Success: true, URL: url, Source: source}
}

// Failed builds a failed Result.
func Failed(err error) Result {
	return Result{Err: err}
}
