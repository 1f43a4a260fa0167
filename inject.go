package scratchroad

// syntheticPointerEvent represents a single injected pointer event in
// normalized surface coordinates.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
}

// InjectPress queues a pointer press at the given surface position. The
// event is consumed on the next Update.
func (s *ScratchTracker) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a scratch stroke.
func (s *ScratchTracker) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{pos: Vec2{x, y}, pressed: true})
}

// InjectRelease queues a pointer release at the given surface position.
func (s *ScratchTracker) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{pos: Vec2{x, y}, pressed: false})
}

// InjectDrag queues a full stroke: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (s *ScratchTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	s.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (s *ScratchTracker) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through HandlePointer. Returns true if an event was consumed.
func (s *ScratchTracker) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.HandlePointer(evt.pos, evt.pressed)
	return true
}
