//go:build windows

package opener

import "os/exec"

// launchURL opens the link with the system's default handler
func launchURL(target string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", target).Start()
}
