package version

import (
	"runtime"
	"strings"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
)

// Values injected by the build with -ldflags "-X".
var (
	GITVERSION = "v0.1.0"
	GITCOMMIT  = ""
)

// Get returns the version of the running binary.
func Get() *models.BuildVersionInfo {
	v := &models.BuildVersionInfo{
		GitVersion: GITVERSION,
		GitCommit:  GITCOMMIT,
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}
	parts := strings.SplitN(Release(), ".", 3)
	if len(parts) >= 2 {
		v.Major, v.Minor = parts[0], parts[1]
	}
	return v
}

// Release is GITVERSION without the leading "v", as used for instrumentation scope versions.
func Release() string {
	return strings.TrimPrefix(GITVERSION, "v")
}
