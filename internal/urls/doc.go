// Package urls provides centralized constants for the URLs printed by the
// CLI and the TUI, so they can be updated in one place before release.
//
// Usage:
//
//	import "github.com/muurk/numfield/internal/urls"
//
//	fmt.Printf("Report issues at %s\n", urls.Issues)
package urls
