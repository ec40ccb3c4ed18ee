//go:build !verbose

package engine

// Verbose gates the tracef progress lines emitted by the rule scans and
// search passes. Build with -tags verbose to enable them (the equivalent
// of -DDO_PRINT_INFO=1 in the C original).
const Verbose = false

func tracef(format string, args ...any) {}
