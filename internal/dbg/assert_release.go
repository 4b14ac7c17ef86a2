//go:build !debug

package dbg

// True is a no-op unless the binary is built with the 'debug' tag.
func True(cond bool, format string, args ...interface{}) {}

// False is a no-op unless the binary is built with the 'debug' tag.
func False(cond bool, format string, args ...interface{}) {}
