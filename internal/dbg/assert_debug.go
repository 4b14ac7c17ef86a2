//go:build debug

// Package dbg wraps the assertgo debug-assertion library behind a
// project-local name so call sites (halfedge, polylla) don't
// depend on the vendor path directly.
package dbg

import assert "github.com/aurelien-rainone/assertgo"

// True panics with a formatted message if cond is false.
//
// True is only active when the binary is built with the 'debug' tag; in any
// other build it is a no-op.
func True(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

// False panics with a formatted message if cond is true.
func False(cond bool, format string, args ...interface{}) {
	assert.False(cond, format, args...)
}
