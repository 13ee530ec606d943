package usedrag

import (
	"fmt"
	"os"
)

// debugLogf prints a debug line to stderr. Callers check globalDebug first.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[usedrag] "+format+"\n", args...)
}

// debugWarn prints a warning line to stderr.
func debugWarn(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "[usedrag] warning: %s\n", msg)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("usedrag debug: %s on disposed node %q", op, n.Name))
	}
}
