//go:build windows

package osinfo

import "github.com/StackExchange/wmi"

// Win32_OperatingSystem represents WMI operating system data
type Win32_OperatingSystem struct {
	Caption string
	Version string
}

// osCaption returns the marketed OS name from WMI
func osCaption() (string, error) {
	var results []Win32_OperatingSystem
	err := wmi.Query("SELECT Caption, Version FROM Win32_OperatingSystem", &results)
	if err != nil {
		return "", err
	}

	if len(results) == 0 {
		return "", nil
	}

	return results[0].Caption, nil
}
