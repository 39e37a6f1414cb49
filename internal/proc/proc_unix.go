//go:build !windows

package proc

import "golang.org/x/sys/unix"

func IsAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return unix.Kill(pid, 0) == nil
}
