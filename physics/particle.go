package physics

import "github.com/lixenwraith/alive/vmath"

// Color is a 0xRRGGBB tag, mapped to real colors by the renderer
type Color uint32

// RGB splits the tag into components
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Particle is plain data in the simulator's arena, addressed by index
type Particle struct {
	ID     int
	Pos    vmath.Vec2F
	Vel    vmath.Vec2F
	Mass   float64
	Radius float64
	Color  Color
	Glyph  rune

	// Spin is a rotation in degrees, advanced by Config.SpinRate
	Spin float64

	// Life counts down in frames under LifecycleExpire
	Life    float64
	MaxLife float64

	Trail Trail
}

// Fade returns remaining life as a fraction in [0,1], 1 for recycled particles
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return vmath.Clamp(p.Life/p.MaxLife, 0, 1)
}

// View is the read-only render copy of a particle
type View struct {
	ID     int
	X, Y   float64
	Color  Color
	Glyph  rune
	Radius float64
	Spin   float64
	Fade   float64
	Trail  []vmath.Vec2F
}
