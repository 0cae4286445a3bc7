//go:build darwin

package opener

import "os/exec"

// launchURL opens the link with the system's default handler
func launchURL(target string) error {
	return exec.Command("open", target).Start()
}
