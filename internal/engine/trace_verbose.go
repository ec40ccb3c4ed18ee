//go:build verbose

package engine

import (
	"fmt"
	"os"
)

const Verbose = true

func tracef(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
