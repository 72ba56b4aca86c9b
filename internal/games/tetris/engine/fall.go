package engine

// FrameRate is the number of Timeout events per second of play.
const FrameRate = 60

// LockDelayFrames is how long a landed piece can still be moved before it locks.
const LockDelayFrames = FrameRate / 2

// GravityTicks returns how many frames a piece waits before dropping one row
// at the given level.
func GravityTicks(level int) int {
	switch {
	case level < 0:
		return 48
	case level <= 8:
		return 48 - 5*level
	case level == 9:
		return 6
	case level <= 12:
		return 5
	case level <= 15:
		return 4
	case level <= 18:
		return 3
	case level <= 28:
		return 2
	default:
		return 1
	}
}

// Fall counts frames between gravity steps and implements the lock delay.
type Fall struct {
	frames    int
	lockArmed bool
}

// Tick advances one frame and reports whether a gravity step is due.
// The first tick after LockDelay never fires; it rewinds the counter so that
// LockDelayFrames more ticks are needed.
func (f *Fall) Tick(level int) bool {
	limit := GravityTicks(level)
	if f.lockArmed {
		f.lockArmed = false
		f.frames = limit - LockDelayFrames
		return false
	}
	f.frames++
	if f.frames >= limit {
		f.frames = 0
		return true
	}
	return false
}

// LockDelay arms the grace window for a piece that can no longer fall.
func (f *Fall) LockDelay() {
	f.lockArmed = true
}

// Reset clears the counter and any pending lock delay.
func (f *Fall) Reset() {
	f.frames = 0
	f.lockArmed = false
}

// Frames returns the current frame counter.
func (f *Fall) Frames() int {
	return f.frames
}
