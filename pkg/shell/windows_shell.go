//go:build windows
// +build windows

package shell

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedProcAttr keeps console utilities from flashing a window over the desktop host.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
