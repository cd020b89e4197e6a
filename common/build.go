package common

import (
	"fmt"
	"os"
)

// Build carries compile-time identity, used for the `-v` output, the
// usage message and the config directory name.
var Build = struct {
	Name    string
	Version string
	Summary string
}{
	Name:    "goxwm",
	Version: "dev",
}

func init() {
	Build.Summary = fmt.Sprintf("%s %s", Build.Name, Build.Version)
}

// PrintVersion implements the `-v` CLI flag (§6).
func PrintVersion() {
	fmt.Fprintln(os.Stdout, Build.Summary)
}
