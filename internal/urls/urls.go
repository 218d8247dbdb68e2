package urls

import "strings"

// Project URLs shown in help text, hints and the TUI header.
// All URLs derive from the module's repository.

// Repository is the project home.
const Repository = "https://github.com/muurk/numfield"

// Issues is where users report formatting bugs, e.g. a locale whose
// symbols render incorrectly.
const Issues = Repository + "/issues"

// Releases lists published binaries.
const Releases = Repository + "/releases"

// Display strips the scheme for places where a URL is shown rather than
// followed.
func Display(url string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(url, scheme); ok && rest != "" {
			return rest
		}
	}
	return url
}
