package components

import (
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	blinkFPS = UITicksPerSecond

	// Spring physics parameters
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// Spring position above which the lit frame is shown
	blinkFrameThreshold = 0.3

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// phase is one step of a blink pattern: the spring target and how many ticks it is held
type phase struct {
	target float64
	ticks  int
}

// Pattern is a looping sequence of lit/unlit phases with the glyphs to draw
type Pattern struct {
	phases []phase
	off    string
	on     string
}

// Heartbeat pulses "lub-DUB" and is used for robots that are still connecting
var Heartbeat = Pattern{
	phases: []phase{
		{target: blinkPositionEmpty, ticks: 2},
		{target: blinkPositionFull, ticks: 1},
		{target: blinkPositionEmpty, ticks: 1},
		{target: blinkPositionFull, ticks: 1},
		{target: blinkPositionEmpty, ticks: 3},
	},
	off: "◯",
	on:  "◉",
}

// Recording is a steady once-per-second blink for the REC indicator
var Recording = Pattern{
	phases: []phase{
		{target: blinkPositionFull, ticks: UITicksPerSecond / 2},
		{target: blinkPositionEmpty, ticks: UITicksPerSecond / 2},
	},
	off: " ",
	on:  IconRec,
}

func (p Pattern) length() int {
	total := 0
	for _, ph := range p.phases {
		total += ph.ticks
	}

	return total
}

// Blink animates a Pattern with spring physics so frames ease in and out
type Blink struct {
	pattern   Pattern
	spring    harmonica.Spring
	position  float64
	velocity  float64
	active    bool
	phase     int
	tickCount int
}

// NewBlink creates a stopped animator for the pattern with a random phase offset
func NewBlink(pattern Pattern) *Blink {
	b := &Blink{
		pattern: pattern,
		spring:  harmonica.NewSpring(harmonica.FPS(blinkFPS), blinkAngularFrequency, blinkDampingRatio),
	}

	if n := pattern.length(); n > 0 {
		//nolint:gosec // weak random is fine for UI animation timing
		b.advance(rand.IntN(n))
	}

	return b
}

// Start begins the animation
func (b *Blink) Start() {
	b.active = true
}

// Stop ends the animation and resets to the unlit state
func (b *Blink) Stop() {
	b.active = false
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
	b.phase = 0
	b.tickCount = 0
}

// Update advances the animation by one UI tick
func (b *Blink) Update() {
	if !b.active {
		return
	}

	b.advance(1)
	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.pattern.phases[b.phase].target)
}

func (b *Blink) advance(ticks int) {
	if len(b.pattern.phases) == 0 {
		return
	}

	for i := 0; i < ticks; i++ {
		b.tickCount++

		if b.tickCount >= b.pattern.phases[b.phase].ticks {
			b.phase = (b.phase + 1) % len(b.pattern.phases)
			b.tickCount = 0
		}
	}
}

// Frame returns the glyph for the current spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return b.pattern.off
	}

	return b.pattern.on
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is running
func (b *Blink) IsActive() bool {
	return b.active
}
