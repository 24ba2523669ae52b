// Package banner renders the CLI startup banner.
package banner

import "fmt"

const art = `  _
 | |__   _____      __
 | '_ \ / _ \ \ /\ / /
 | |_) | (_) \ V  V /
 |_.__/ \___/ \_/\_/
`

// Banner returns the startup banner with the version appended.
func Banner(version string) string {
	return fmt.Sprintf("%s        %s\n\n", art, version)
}
