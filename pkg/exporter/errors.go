package exporter

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNoEndpoint is returned by New when no endpoint is configured.
var ErrNoEndpoint = errors.New("OTLP exporter endpoint is required")

// HTTPStatusError is returned by Flush when the collector answers with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "unexpected HTTP status: " + status
}
