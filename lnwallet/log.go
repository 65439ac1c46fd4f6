package lnwallet

import (
	"github.com/btcsuite/btclog"
)

// log is the package-level logger used by the commitment engine's
// trace-level diagnostics. The core itself never logs on its own
// initiative (per §5 it's pure at the function level); this exists so a
// caller that wires a real backend via UseLogger gets one trace line per
// commitment sent (SendCommit) or accepted (ReceiveCommit), the same seam
// the teacher's lnwallet package exposes.
var log btclog.Logger

func init() {
	UseLogger(btclog.Disabled)
}

// UseLogger sets the package-wide logger used by lnwallet. Called by a
// caller wiring up its own btclog backend; until it's called, logging is
// a no-op.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure defers expensive log argument formatting (e.g. spew.Sdump
// of a multi-kilobyte commitment transaction) until the logger actually
// decides to emit the line.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}
