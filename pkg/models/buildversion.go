package models

// BuildVersionInfo is the version of an aip-otel binary.
type BuildVersionInfo struct {
	Major      string `json:"Major,omitempty" example:"0"`
	Minor      string `json:"Minor,omitempty" example:"1"`
	GitVersion string `json:"GitVersion" example:"v0.1.0"`
	GitCommit  string `json:"GitCommit" example:"d612b63108f2b5ce1ab2b9e02444eb1dac1d922d"`
	GOOS       string `json:"GOOS" example:"linux"`
	GOARCH     string `json:"GOARCH" example:"amd64"`
}
