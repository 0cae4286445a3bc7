//go:build !linux && !windows && !darwin

package opener

import "fmt"

// launchURL is a fallback for platforms without a known default handler
func launchURL(target string) error {
	return fmt.Errorf("opening links not supported on this platform")
}
