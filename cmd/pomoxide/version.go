package main

// version holds the CLI version string, set with
// -ldflags "-X main.version=...". Defaults to "dev" for local builds.
var version = "dev"

// Version returns the current CLI version string.
func Version() string { return "pomoxide " + version }
