package component

import "math"

// Clip describes a looping or one-shot frame sequence.
type Clip struct {
	Frames int
	FPS    int
	Loop   bool
}

// Animation steps through the frames of named clips on a 60 tick clock.
// It holds no images; renderers map (clip, frame) to whatever they draw.
type Animation struct {
	clips map[string]Clip

	name        string
	clip        Clip
	current     int
	tick        int
	ticksPerFrm int
	playing     bool
}

// NewAnimation creates an animator over clips. FPS defaults to 12.
func NewAnimation(clips map[string]Clip) *Animation {
	return &Animation{clips: clips}
}

// Play switches to clip name and restarts it. Playing the clip that is
// already running keeps its frame. Unknown names fall back to a single
// static frame.
func (a *Animation) Play(name string) {
	if a.playing && a.name == name {
		return
	}
	clip, ok := a.clips[name]
	if !ok {
		clip = Clip{Frames: 1}
	}
	if clip.Frames <= 0 {
		clip.Frames = 1
	}
	fps := clip.FPS
	if fps <= 0 {
		fps = 12
	}

	a.name = name
	a.clip = clip
	a.current = 0
	a.tick = 0
	a.ticksPerFrm = int(math.Max(1, math.Round(60.0/float64(fps))))
	a.playing = true
}

// Stop freezes the current frame.
func (a *Animation) Stop() { a.playing = false }

// Update advances one tick.
func (a *Animation) Update() {
	if !a.playing || a.clip.Frames <= 1 {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= a.clip.Frames {
		if a.clip.Loop {
			a.current = 0
		} else {
			a.current = a.clip.Frames - 1
			a.playing = false
		}
	}
}

// Name returns the clip last passed to Play.
func (a *Animation) Name() string { return a.name }

// Frame returns the current frame index within the clip.
func (a *Animation) Frame() int { return a.current }

func (a *Animation) Playing() bool { return a.playing }
