//go:build !release
// +build !release

// Package debug holds internal consistency checks that are compiled out of
// release builds.
package debug

// Assert panics with info if fn returns false.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}
