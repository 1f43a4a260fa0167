package scratchroad

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script. Coordinates are
// normalized surface positions.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected scratch strokes, progress checks and
// snapshots across ticks for automated testing. Attach to a Road via
// SetTestRunner.
type TestRunner struct {
	steps  []testStep
	cursor int
	idle   int // ticks still to hold after a wait step
	done   bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Road via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "drag", "wait", "check", "snapshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the road. The runner's step method
// is called at the start of Road.Update each tick.
func (r *Road) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (t *TestRunner) Done() bool {
	return t.done
}

// step runs the next script step once the previous one has settled.
// Called from Road.Update.
func (t *TestRunner) step(r *Road) {
	if !t.settled(r.scratch) {
		return
	}
	if t.cursor == len(t.steps) {
		t.done = true
		return
	}
	t.idle = t.exec(r, t.steps[t.cursor])
	t.cursor++
	t.done = t.cursor == len(t.steps) && t.idle == 0 && r.scratch.PendingInput() == 0
}

// settled reports whether the runner may execute a step this tick: the
// injected strokes have been consumed and any wait has elapsed. A held
// tick is used up by the call.
func (t *TestRunner) settled(s *ScratchTracker) bool {
	switch {
	case t.done, s.PendingInput() > 0:
		return false
	case t.idle > 0:
		t.idle--
		return false
	}
	return true
}

// exec performs st and returns how many further ticks to hold before the
// next step. A wait of N frames spends this tick plus N-1 held ticks.
func (t *TestRunner) exec(r *Road, st testStep) int {
	s := r.scratch
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		return max(st.Frames-1, 0)
	case "check":
		s.RequestProgressUpdate()
	case "snapshot":
		r.Snapshot(st.Label)
	}
	return 0
}
