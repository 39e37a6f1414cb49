package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cwd returns the working directory of the process, or "" when the
// process is gone or unreadable. Callers treat "" as "hide the widget".
func Cwd(pid int) string {
	if pid <= 0 {
		return ""
	}
	wd, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", pid))
	if err != nil {
		return ""
	}
	return wd
}

// Exe returns the short executable name of the process, or "".
func Exe(pid int) string {
	if pid <= 0 {
		return ""
	}
	if comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid)); err == nil {
		if name := strings.TrimSpace(string(comm)); name != "" {
			return name
		}
	}
	exe, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid))
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
