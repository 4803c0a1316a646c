package mcp

import "github.com/1broseidon/glwaffle/internal/probe"

// ProbePlatformInput is the input for the probe_platform tool.
type ProbePlatformInput struct {
	Platform string `json:"platform,omitempty" jsonschema:"Platform name (e.g. x11_egl, surfaceless_egl). Defaults to the configured platform."`
	API      string `json:"api,omitempty" jsonschema:"Context API: gl, gles1, gles2 or gles3. Defaults to the configured api."`
	Version  string `json:"version,omitempty" jsonschema:"Context version as MAJOR.MINOR (e.g. 3.2)"`
	Profile  string `json:"profile,omitempty" jsonschema:"Context profile for desktop GL 3.2 and later: core, compat or none"`
	Display  string `json:"display,omitempty" jsonschema:"Native display name. Empty uses the platform default."`
	Verbose  bool   `json:"verbose,omitempty" jsonschema:"When true, include the extension list"`
}

// ProbePlatformOutput is the output for the probe_platform tool.
type ProbePlatformOutput struct {
	Report probe.Report `json:"report"`
}

// ListPlatformsInput is the input for the list_platforms tool.
type ListPlatformsInput struct {
	AvailableOnly bool `json:"available_only,omitempty" jsonschema:"When true, list only platforms this build can initialize"`
}

// ListPlatformsOutput is the output for the list_platforms tool.
type ListPlatformsOutput struct {
	Platforms []probe.PlatformInfo `json:"platforms"`
}
