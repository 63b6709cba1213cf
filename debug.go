package lilt

import (
	"fmt"
	"io"
	"os"
)

// warnOutput receives warnings and debug diagnostics.
var warnOutput io.Writer = os.Stderr

// SetWarningOutput redirects warnings and debug diagnostics. Passing nil
// discards them. Returns the previous writer so callers can restore it.
func SetWarningOutput(w io.Writer) io.Writer {
	prev := warnOutput
	if w == nil {
		w = io.Discard
	}
	warnOutput = w
	return prev
}

// warnf reports a recoverable misconfiguration. lilt never panics or returns
// errors from the per-tick path; this is the only channel for them.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(warnOutput, "[lilt] warning: "+format+"\n", args...)
}

// globalDebug mirrors the most recently set debug flag (Config.Debug or
// Scene.SetDebugMode) so runners, which lack a Scene pointer, can check it
// cheaply.
var globalDebug bool

// runnerStats holds per-tick metrics. Only populated in debug mode.
type runnerStats struct {
	advanced int
	swept    int
	live     int
}

// debugLog prints runner stats to the warning output.
func (r *Runner) debugLog(stats runnerStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(warnOutput,
		"[lilt] advanced: %d | swept: %d | live: %d | float pool: %+v\n",
		stats.advanced, stats.swept, stats.live, FloatPool.Stats())
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("lilt debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}
