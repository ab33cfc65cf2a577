//go:build windows

package tracker

import (
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow   = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcID = user32.NewProc("GetWindowThreadProcessId")
)

type windowsSampler struct{}

func newPlatformSampler() Sampler {
	return windowsSampler{}
}

// Poll returns the executable name of the process owning the foreground
// window, e.g. "chrome.exe". Any failure along the way (no foreground
// window, process exited, access denied) yields ok=false.
func (windowsSampler) Poll() (string, bool) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", false
	}

	var pid uint32
	procGetWindowThreadProcID.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return "", false
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(handle)

	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(handle, 0, &buf[0], &size); err != nil {
		return "", false
	}

	exe := filepath.Base(windows.UTF16ToString(buf[:size]))
	if exe == "" || exe == "." {
		return "", false
	}
	return exe, true
}
