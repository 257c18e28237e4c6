// Package player is the playback state machine behind the meditation audio player.
// It drives a single media Engine and turns the engine's events into snapshots for
// the progress bar and controls.
package player

import (
	"math"
	"sync"

	"manna/internal/errors"
)

// SkipInterval is how far SkipForward and SkipBackward move, in seconds.
const SkipInterval = 10.0

// maxListenGap is the largest position jump still counted as listening; larger
// jumps between time updates are seeks.
const maxListenGap = 2.0

// Engine is the native media element the player controls.
type Engine interface {
	Load(url string) error
	Play() error
	Pause() error
	Seek(seconds float64) error
	SetVolume(level float64) error
	SetMuted(muted bool) error
}

// Snapshot is the observable state of a Player at one instant.
type Snapshot struct {
	State    State
	Source   string
	Loaded   bool
	Position float64
	Duration float64
	Volume   float64
	Muted    bool
	Err      error
}

// CompletionFunc is called when a track plays to the end with the seconds actually listened.
type CompletionFunc func(source string, listenedSeconds float64)

// Option configures a Player.
type Option func(*Player)

// WithCompletion registers the callback fired when a track ends.
func WithCompletion(fn CompletionFunc) Option {
	return func(p *Player) {
		p.onComplete = fn
	}
}

// Player is safe for concurrent use; engine callbacks may arrive on any goroutine.
type Player struct {
	mu sync.Mutex

	engine     Engine
	onComplete CompletionFunc
	observers  []func(Snapshot)

	state    State
	source   string
	loaded   bool
	position float64
	duration float64
	volume   float64
	muted    bool
	listened float64
	err      error
}

// New returns an idle player at full volume.
func New(engine Engine, opts ...Option) *Player {
	p := &Player{
		engine: engine,
		state:  StateIdle,
		volume: 1,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Subscribe registers fn to receive a snapshot after every change.
func (p *Player) Subscribe(fn func(Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.observers = append(p.observers, fn)
}

// Snapshot returns the current state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshotLocked()
}

// Load binds a new source. The player is Ready only after MetadataLoaded.
func (p *Player) Load(url string) error {
	p.mu.Lock()
	p.source = url
	p.loaded = false
	p.position = 0
	p.duration = 0
	p.listened = 0
	p.err = nil

	if err := p.engine.Load(url); err != nil {
		p.state = StateIdle
		p.err = err
		p.mu.Unlock()
		p.notify()

		return errors.Wrapf(err, "load %s", url)
	}

	p.state = StateLoading
	p.mu.Unlock()
	p.notify()

	return nil
}

// TogglePlayback pauses while playing and plays otherwise. Without a loaded source it does nothing.
func (p *Player) TogglePlayback() error {
	p.mu.Lock()
	if !p.loaded {
		p.mu.Unlock()

		return nil
	}

	if p.state == StatePlaying {
		if err := p.engine.Pause(); err != nil {
			p.mu.Unlock()

			return errors.Wrap(err, "pause")
		}
		p.state = StatePaused
	} else {
		if err := p.engine.Play(); err != nil {
			p.mu.Unlock()

			return errors.Wrap(err, "play")
		}
		p.state = StatePlaying
	}
	p.mu.Unlock()
	p.notify()

	return nil
}

// Seek moves to seconds, clamped to the track. It keeps the play or pause state.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	err := p.seekLocked(seconds)
	p.mu.Unlock()
	p.notify()

	return err
}

// Skip seeks relative to the current position.
func (p *Player) Skip(delta float64) error {
	p.mu.Lock()
	err := p.seekLocked(p.position + delta)
	p.mu.Unlock()
	p.notify()

	return err
}

// SkipForward jumps SkipInterval seconds ahead.
func (p *Player) SkipForward() error {
	return p.Skip(SkipInterval)
}

// SkipBackward jumps SkipInterval seconds back.
func (p *Player) SkipBackward() error {
	return p.Skip(-SkipInterval)
}

func (p *Player) seekLocked(seconds float64) error {
	target := clamp(seconds, 0, p.duration)
	if !p.loaded {
		p.position = target

		return nil
	}

	if err := p.engine.Seek(target); err != nil {
		return errors.Wrap(err, "seek")
	}
	p.position = target

	return nil
}

// SetVolume stores a level in [0, 1]. Zero mutes, anything louder unmutes.
func (p *Player) SetVolume(level float64) error {
	p.mu.Lock()
	level = clamp(level, 0, 1)
	muted := level == 0

	if err := p.engine.SetVolume(level); err != nil {
		p.mu.Unlock()

		return errors.Wrap(err, "set volume")
	}
	if muted != p.muted {
		if err := p.engine.SetMuted(muted); err != nil {
			p.mu.Unlock()

			return errors.Wrap(err, "set muted")
		}
	}
	p.volume = level
	p.muted = muted
	p.mu.Unlock()
	p.notify()

	return nil
}

// ToggleMute flips muting. The stored level is kept so unmuting restores it.
func (p *Player) ToggleMute() error {
	p.mu.Lock()
	if err := p.engine.SetMuted(!p.muted); err != nil {
		p.mu.Unlock()

		return errors.Wrap(err, "toggle mute")
	}
	p.muted = !p.muted
	p.mu.Unlock()
	p.notify()

	return nil
}

// MetadataLoaded is called by the engine once the duration is known.
// Durations that are not finite and non-negative are ignored.
func (p *Player) MetadataLoaded(duration float64) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return
	}

	p.mu.Lock()
	if p.source == "" || p.err != nil {
		p.mu.Unlock()

		return
	}
	p.duration = duration
	p.loaded = true
	if p.state == StateLoading || p.state == StateIdle {
		p.state = StateReady
	}
	p.position = clamp(p.position, 0, duration)
	p.mu.Unlock()
	p.notify()
}

// TimeUpdate is called by the engine as playback advances.
func (p *Player) TimeUpdate(position float64) {
	if math.IsNaN(position) || math.IsInf(position, 0) {
		return
	}

	p.mu.Lock()
	position = math.Max(position, 0)
	if p.duration > 0 {
		position = math.Min(position, p.duration)
	}
	if delta := position - p.position; p.state == StatePlaying && delta > 0 && delta <= maxListenGap {
		p.listened += delta
	}
	p.position = position
	p.mu.Unlock()
	p.notify()
}

// Ended is called by the engine when the track finishes. The player rewinds and
// becomes Ready again, firing the completion callback on the way. When the callback
// moves on to another source or starts playback again the rewind is skipped.
// A failed rewind is kept as the snapshot error.
func (p *Player) Ended() {
	p.mu.Lock()
	if !p.loaded {
		p.mu.Unlock()

		return
	}
	source, listened := p.source, p.listened
	p.state = StateEnded
	p.mu.Unlock()
	p.notify()

	if p.onComplete != nil {
		p.onComplete(source, listened)
	}

	p.mu.Lock()
	if p.source != source || !p.loaded || p.state != StateEnded {
		p.mu.Unlock()

		return
	}
	if err := p.engine.Seek(0); err != nil {
		p.err = errors.Wrap(err, "rewind")
	}
	p.position = 0
	p.listened = 0
	p.state = StateReady
	p.mu.Unlock()
	p.notify()
}

// Failed is called by the engine when the source cannot be played. There is no retry.
func (p *Player) Failed(err error) {
	p.mu.Lock()
	p.loaded = false
	p.err = err
	if p.err == nil {
		p.err = errors.Errorf("media error on %s", p.source)
	}
	p.state = StateIdle
	p.mu.Unlock()
	p.notify()
}

func (p *Player) snapshotLocked() Snapshot {
	return Snapshot{
		State:    p.state,
		Source:   p.source,
		Loaded:   p.loaded,
		Position: p.position,
		Duration: p.duration,
		Volume:   p.volume,
		Muted:    p.muted,
		Err:      p.err,
	}
}

// notify runs observers outside the lock so they may call back into the player.
func (p *Player) notify() {
	p.mu.Lock()
	snapshot := p.snapshotLocked()
	observers := make([]func(Snapshot), len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}

	return math.Max(lo, math.Min(v, hi))
}
