package main

// fpsCounter counts frames over one-second windows.
type fpsCounter struct {
	frames int
	start  float64
}

func newFPSCounter(now float64) *fpsCounter {
	return &fpsCounter{start: now}
}

// Tick records a frame at time now (seconds). Once a full second has passed
// it returns the frame count for that window and starts a new one.
func (f *fpsCounter) Tick(now float64) (int, bool) {
	f.frames++
	if now-f.start < 1.0 {
		return 0, false
	}
	rate := f.frames
	f.frames = 0
	f.start = now
	return rate, true
}
