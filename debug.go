package transit

import (
	"fmt"
	"log"
	"os"
)

// defaultLogger writes warnings to stderr with the package prefix. Replace it
// per manager through Config.Logger.
var defaultLogger = log.New(os.Stderr, "[transit] ", log.LstdFlags)

// globalDebug enables trace lines for every transition and panics on tree
// operations involving disposed nodes. Set it with SetDebugMode.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// tree operations panic and every transition start, completion and abort is
// logged.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("transit debug: %s on disposed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// tracef logs only in debug mode.
func tracef(l *log.Logger, format string, args ...any) {
	if globalDebug {
		l.Printf(format, args...)
	}
}
