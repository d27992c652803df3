//go:build !debug

package debug

// Debug is true only when the "debug" build tag is set.
const Debug = false

// Assert does nothing unless the "debug" build tag is set, in which
// case it panics if the condition is false.
func Assert(condition bool, message ...string) {}
