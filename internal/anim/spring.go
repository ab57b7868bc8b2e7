package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a spring the way designers tune it: tension and
// friction, origami style. FPS is the fixed integration rate.
type SpringConfig struct {
	Tension  float64 `yaml:"tension"`
	Friction float64 `yaml:"friction"`
	FPS      int     `yaml:"fps"`
}

// DefaultSpring is the modal spring: snappy with a small overshoot.
func DefaultSpring() SpringConfig {
	return SpringConfig{Tension: 100, Friction: 9, FPS: 60}
}

// Stiffness converts tension to a spring constant for a unit mass.
func (c SpringConfig) Stiffness() float64 { return (c.Tension-30)*3.62 + 194 }

// Damping converts friction to a damping coefficient for a unit mass.
func (c SpringConfig) Damping() float64 { return (c.Friction-8)*3 + 25 }

// AngularFrequency is sqrt(k/m) with m = 1.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(math.Max(c.Stiffness(), 0))
}

// DampingRatio is c / (2*sqrt(k*m)) with m = 1.
func (c SpringConfig) DampingRatio() float64 {
	w := c.AngularFrequency()
	if w == 0 {
		return 1
	}
	return c.Damping() / (2 * w)
}

// Frame is the duration of one integration step.
func (c SpringConfig) Frame() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultSpring().FPS
	}
	return time.Second / time.Duration(fps)
}

func (c SpringConfig) spring() harmonica.Spring {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultSpring().FPS
	}
	return harmonica.NewSpring(harmonica.FPS(fps), c.AngularFrequency(), c.DampingRatio())
}

const restEpsilon = 0.001

// axis is one animated scalar.
type axis struct {
	pos, vel, target float64
}

func (a *axis) set(pos, target float64) {
	a.pos, a.vel, a.target = pos, 0, target
}

func (a *axis) step(s harmonica.Spring) {
	if a.atRest() {
		a.pos, a.vel = a.target, 0
		return
	}
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
}

func (a *axis) atRest() bool {
	return math.Abs(a.pos-a.target) < restEpsilon && math.Abs(a.vel) < restEpsilon
}
