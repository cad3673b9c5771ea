//go:build !windows
// +build !windows

package shell

import "syscall"

// detachedProcAttr starts the child in its own session so it cannot reach /dev/tty.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: false,
	}
}
