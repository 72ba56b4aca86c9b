package engine

// Playtime is elapsed play time expressed as a frame count.
type Playtime struct {
	frames int
}

// Advance adds one frame. It returns true every 7th frame, which is often
// enough for a centisecond display without redrawing on every frame.
func (p *Playtime) Advance() bool {
	p.frames++
	return p.frames%7 == 0
}

// Frames returns the elapsed frame count.
func (p *Playtime) Frames() int {
	return p.frames
}

// Clock splits the elapsed time into minutes, seconds and centiseconds.
func (p *Playtime) Clock() PlaytimeView {
	return PlaytimeView{
		Minutes:      p.frames / FrameRate / 60,
		Seconds:      p.frames / FrameRate % 60,
		Centiseconds: p.frames % FrameRate * 100 / FrameRate,
	}
}
