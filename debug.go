package scratchroad

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives warnings and debug diagnostics.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects diagnostics. Passing nil restores os.Stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

// logf writes a prefixed diagnostic line.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[scratchroad] "+format+"\n", args...)
}

// SpawnStats counts spawn scheduler outcomes since the field was created.
type SpawnStats struct {
	Checks          int // interval elapsed, gate rolled
	Attempts        int // gate passed
	Spawned         int
	Despawned       int
	ForcedSide      int // anti-streak rule flipped the side
	RejectedCap     int
	RejectedSpacing int
	PoolEmpty       int
}

// debugStatsInterval is how often Road logs stats in debug mode, in seconds.
const debugStatsInterval = 1.0

// debugLog prints spawn and progress stats to the log output.
func (r *Road) debugLog() {
	if !r.debug {
		return
	}
	st := r.obstacles.Stats()
	logf("spawn: checks %d | attempts %d | spawned %d | despawned %d | forced %d",
		st.Checks, st.Attempts, st.Spawned, st.Despawned, st.ForcedSide)
	logf("reject: cap %d | spacing %d | pool empty %d | active %d",
		st.RejectedCap, st.RejectedSpacing, st.PoolEmpty, r.obstacles.ActiveCount())
	logf("scratch: regions %d/%d | meter %s | lanes %d @ %.2f",
		r.scratch.Regions().CompletedCount(), r.scratch.Regions().Len(), r.meter.Text(),
		r.lanes.VisibleCount(), r.lanes.CurrentSpeed())
}
