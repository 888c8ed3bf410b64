package physics

import (
	"math"

	"github.com/lixenwraith/alive/vmath"
)

// ApplyAttraction pulls p toward target with inverse-square magnitude k/d²
// Skipped inside minDist to avoid the singularity. Returns true if a force was applied
func ApplyAttraction(p *Particle, target vmath.Vec2F, k, minDist, dt float64) bool {
	d := vmath.V2FSub(target, p.Pos)
	dist := vmath.V2FMag(d)
	if dist <= minDist || dist == 0 || k == 0 {
		return false
	}
	force := k / (dist * dist)
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	accel := vmath.V2FScale(d, force/(dist*mass))
	p.Vel = vmath.V2FAdd(p.Vel, vmath.V2FScale(accel, dt))
	return true
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(p *Particle, dv vmath.Vec2F) {
	p.Vel = vmath.V2FAdd(p.Vel, dv)
}

// Damp scales velocity by friction per unit step
func Damp(p *Particle, friction, dt float64) {
	if friction >= 1 {
		return
	}
	f := friction
	if dt != 1 {
		f = math.Pow(friction, dt)
	}
	p.Vel = vmath.V2FScale(p.Vel, f)
}

// Integrate advances position by velocity: p = p + v*dt
func Integrate(p *Particle, dt float64) {
	p.Pos = vmath.V2FAdd(p.Pos, vmath.V2FScale(p.Vel, dt))
}

// ReflectBounds keeps the particle's disc inside bounds, reflecting outward
// velocity with restitution. Returns true if any axis collided
func ReflectBounds(p *Particle, bounds vmath.Rect, restitution float64) bool {
	loX, hiX := axisRange(bounds.MinX, bounds.MaxX, p.Radius)
	loY, hiY := axisRange(bounds.MinY, bounds.MaxY, p.Radius)
	rx := vmath.ReflectAxis(&p.Pos.X, &p.Vel.X, loX, hiX, restitution)
	ry := vmath.ReflectAxis(&p.Pos.Y, &p.Vel.Y, loY, hiY, restitution)
	return rx || ry
}

func axisRange(lo, hi, r float64) (float64, float64) {
	a, b := lo+r, hi-r
	if b < a {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return a, b
}
