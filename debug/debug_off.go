//go:build !debug

package debug

// Debug reports whether the debug build tag is set. When set, stack traces
// keep full paths and machinery frames.
const Debug = false
