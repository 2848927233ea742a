// ABOUTME: Version information for pcbeep
// ABOUTME: Reported by the --version flag
package version

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the program name
	Product = "pcbeep"
)
