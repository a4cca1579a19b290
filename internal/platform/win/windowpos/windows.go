//go:build windows

package windowpos

import (
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	user32            = syscall.NewLazyDLL("user32.dll")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
)

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

const (
	swpNOSIZE     = 0x0001
	swpNOZORDER   = 0x0004
	swpNOACTIVATE = 0x0010
)

// Current returns the top-left corner of the native HWND behind w.
func Current(w fyne.Window) (Position, bool) {
	var p Position
	ok := withNativeHWND(w, func(hwnd uintptr) bool {
		var rect winRect
		ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
		if ret == 0 {
			logCallError("GetWindowRect", err)
			return false
		}
		p = Position{X: int(rect.Left), Y: int(rect.Top)}
		return true
	})
	return p, ok
}

// Move places the native HWND at p without resizing it or changing the
// Z-order.
func Move(w fyne.Window, p Position) bool {
	return withNativeHWND(w, func(hwnd uintptr) bool {
		ret, _, err := procSetWindowPos.Call(hwnd, 0, uintptr(int32(p.X)), uintptr(int32(p.Y)), 0, 0, swpNOSIZE|swpNOZORDER|swpNOACTIVATE)
		if ret == 0 {
			logCallError("SetWindowPos", err)
			return false
		}
		return true
	})
}

func logCallError(proc string, err error) {
	if err != syscall.Errno(0) {
		fyne.LogError(proc+" failed", err)
	}
}

// withNativeHWND runs fn with the HWND of w on the GUI thread and waits for
// its result.
func withNativeHWND(w fyne.Window, fn func(hwnd uintptr) bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}
	var (
		success bool
		wg      sync.WaitGroup
	)
	wg.Add(1)
	nw.RunNative(func(ctx any) {
		defer wg.Done()
		winCtx, ok := ctx.(driver.WindowsWindowContext)
		if !ok || winCtx.HWND == 0 {
			return
		}
		success = fn(winCtx.HWND)
	})
	wg.Wait()
	return success
}
