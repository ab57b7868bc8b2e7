// Package anim drives the detail modal: it grows out of the point that was
// tapped and shrinks back before its content is released.
package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/idilsaglam/dailydeck/internal/model"
)

// State is the modal's logical state.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Viewport is the drawable area in the same unit as tap coordinates.
type Viewport struct {
	Width, Height float64
}

// Center returns the viewport midpoint.
func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// Transform is what the view applies to the modal box.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// maxCatchUp bounds how much wall-clock time one Tick may integrate.
const maxCatchUp = 500 * time.Millisecond

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Animator is the open/close state machine for the anchored modal.
// It is driven by the UI loop and is not safe for concurrent use.
type Animator struct {
	cfg      SpringConfig
	spring   harmonica.Spring
	frame    time.Duration
	viewport Viewport

	state    State
	selected *model.RoutineItem

	tx, ty, scale axis
	acc           time.Duration

	onClosed func()
	done     chan struct{}
}

// New returns a closed animator. The viewport centre used for tap offsets is
// taken from vp until SetViewport is called.
func New(vp Viewport, cfg SpringConfig) *Animator {
	return &Animator{
		cfg:      cfg,
		spring:   cfg.spring(),
		frame:    cfg.Frame(),
		viewport: vp,
	}
}

// SetViewport re-measures the viewport. Only future Open calls see it.
func (a *Animator) SetViewport(vp Viewport) { a.viewport = vp }

// Viewport returns the viewport used for the next Open.
func (a *Animator) Viewport() Viewport { return a.viewport }

// State returns the logical state.
func (a *Animator) State() State { return a.state }

// Visible reports whether the modal should be drawn.
func (a *Animator) Visible() bool { return a.state != Closed }

// Selected returns the item shown by the modal, if any.
func (a *Animator) Selected() (model.RoutineItem, bool) {
	if a.selected == nil {
		return model.RoutineItem{}, false
	}
	return *a.selected, true
}

// Transform returns the current visual transform. A closed modal has the
// zero transform.
func (a *Animator) Transform() Transform {
	if a.state == Closed {
		return Transform{}
	}
	return Transform{TranslateX: a.tx.pos, TranslateY: a.ty.pos, Scale: a.scale.pos}
}

// Animating reports whether further ticks would change anything.
func (a *Animator) Animating() bool {
	return a.state == Opening || a.state == Closing
}

// Frame is the integration step; the UI ticks at this rate while animating.
func (a *Animator) Frame() time.Duration { return a.frame }

// Open shows item growing from (x, y). Opening again, from any state,
// restarts from the new point; a pending close is dropped without running
// its callback.
func (a *Animator) Open(item model.RoutineItem, x, y float64) {
	if a.state == Closing {
		a.finishClose(false)
	}
	cx, cy := a.viewport.Center()
	a.tx.set(x-cx, 0)
	a.ty.set(y-cy, 0)
	a.scale.set(0, 1)
	a.acc = 0

	it := item
	a.selected = &it
	a.state = Opening
}

// Close shrinks the modal. When the shrink settles the selection is cleared,
// the state becomes Closed, onComplete runs and the returned channel is
// closed, in that order. Closing a closed or closing modal changes nothing
// and returns the channel of the close already in effect.
func (a *Animator) Close(onComplete func()) <-chan struct{} {
	switch a.state {
	case Closed:
		return closedDone
	case Closing:
		return a.done
	}
	a.scale.target = 0
	a.onClosed = onComplete
	a.done = make(chan struct{})
	a.state = Closing
	return a.done
}

// Tick advances the springs by dt of wall-clock time and reports whether the
// animation is still running.
func (a *Animator) Tick(dt time.Duration) bool {
	if !a.Animating() {
		return false
	}
	if dt > maxCatchUp {
		dt = maxCatchUp
	}
	a.acc += dt
	for a.acc >= a.frame && a.Animating() {
		a.acc -= a.frame
		a.step()
	}
	return a.Animating()
}

// Step advances exactly one frame.
func (a *Animator) Step() bool {
	if !a.Animating() {
		return false
	}
	a.step()
	return a.Animating()
}

func (a *Animator) step() {
	a.tx.step(a.spring)
	a.ty.step(a.spring)
	a.scale.step(a.spring)

	switch a.state {
	case Opening:
		if a.tx.atRest() && a.ty.atRest() && a.scale.atRest() {
			a.state = Open
		}
	case Closing:
		if a.scale.atRest() {
			a.finishClose(true)
		}
	}
}

func (a *Animator) finishClose(complete bool) {
	cb, done := a.onClosed, a.done
	a.onClosed, a.done = nil, nil
	a.acc = 0
	if complete {
		a.selected = nil
		a.state = Closed
		a.scale.set(0, 0)
		a.tx.set(0, 0)
		a.ty.set(0, 0)
		if cb != nil {
			cb()
		}
	}
	if done != nil {
		close(done)
	}
}
