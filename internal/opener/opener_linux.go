//go:build linux

package opener

import "os/exec"

// launchURL opens the link with the desktop's default handler
func launchURL(target string) error {
	return exec.Command("xdg-open", target).Start()
}
