package physics

import (
	"github.com/lixenwraith/alive/vmath"
)

// Simulator is the single parameterized particle stepper
// Particles live in a fixed arena allocated at construction; stepping never allocates
type Simulator struct {
	cfg    Config
	bounds vmath.Rect
	rng    *vmath.FastRand
	glyphs []rune

	pool   []Particle
	n      int
	nextID int
}

// NewSimulator allocates the arena and trails for cfg.Capacity particles
func NewSimulator(cfg Config, bounds vmath.Rect, rng *vmath.FastRand) *Simulator {
	if cfg.Capacity < cfg.Count {
		cfg.Capacity = cfg.Count
	}
	if cfg.Friction <= 0 || cfg.Friction > 1 {
		cfg.Friction = 1
	}
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	s := &Simulator{
		cfg:    cfg,
		bounds: bounds,
		rng:    rng,
		glyphs: []rune(cfg.Spawn.Glyphs),
		pool:   make([]Particle, cfg.Capacity),
	}
	if len(s.glyphs) == 0 {
		s.glyphs = []rune{'●'}
	}
	for i := range s.pool {
		s.pool[i].Trail = NewTrail(cfg.TrailCap)
	}
	return s
}

// Config returns the simulator parameters
func (s *Simulator) Config() Config { return s.cfg }

// Bounds returns the collision rectangle
func (s *Simulator) Bounds() vmath.Rect { return s.bounds }

// SetBounds updates the collision rectangle, pulling particles back inside
func (s *Simulator) SetBounds(r vmath.Rect) {
	s.bounds = r
	if !s.cfg.Bounce {
		return
	}
	for i := 0; i < s.n; i++ {
		ReflectBounds(&s.pool[i], r, s.cfg.Restitution)
	}
}

// Len returns the live particle count
func (s *Simulator) Len() int { return s.n }

// Capacity returns the arena size
func (s *Simulator) Capacity() int { return len(s.pool) }

// Particle returns the live particle at index i, nil when out of range
func (s *Simulator) Particle(i int) *Particle {
	if i < 0 || i >= s.n {
		return nil
	}
	return &s.pool[i]
}

// Clear removes every particle, keeping the arena
func (s *Simulator) Clear() { s.n = 0 }

// Reseed refills the arena with Config.Count fresh particles
func (s *Simulator) Reseed() {
	s.Seed(s.cfg.Count)
}

// Seed replaces the population with n random particles, capped at capacity
func (s *Simulator) Seed(n int) {
	if n > len(s.pool) {
		n = len(s.pool)
	}
	if n < 0 {
		n = 0
	}
	s.n = 0
	for i := 0; i < n; i++ {
		p := &s.pool[s.n]
		s.n++
		s.spawn(p, s.randomPoint())
	}
}

// Emit spawns one particle at pos, dropping the oldest when the arena is full
func (s *Simulator) Emit(pos vmath.Vec2F) {
	if len(s.pool) == 0 {
		return
	}
	if s.n == len(s.pool) {
		// Rotate the oldest slot to the end so its trail storage is reused
		oldest := s.pool[0]
		copy(s.pool, s.pool[1:s.n])
		s.pool[s.n-1] = oldest
		s.spawn(&s.pool[s.n-1], pos)
		return
	}
	p := &s.pool[s.n]
	s.n++
	s.spawn(p, pos)
}

// MaybeEmit spawns at pos with probability Config.EmitChance
func (s *Simulator) MaybeEmit(pos vmath.Vec2F) bool {
	if !s.rng.Chance(s.cfg.EmitChance) {
		return false
	}
	s.Emit(pos)
	return true
}

// Add inserts a caller-built particle, false when the arena is full
// The particle's trail is replaced by the slot's preallocated one
func (s *Simulator) Add(p Particle) bool {
	if s.n == len(s.pool) {
		return false
	}
	slot := &s.pool[s.n]
	trail := slot.Trail
	trail.Reset()
	*slot = p
	slot.Trail = trail
	s.nextID++
	slot.ID = s.nextID
	s.n++
	return true
}

func (s *Simulator) spawn(p *Particle, pos vmath.Vec2F) {
	sp := s.cfg.Spawn
	trail := p.Trail
	trail.Reset()
	s.nextID++
	*p = Particle{
		ID:      s.nextID,
		Pos:     pos,
		Vel:     vmath.Vec2F{X: s.rng.Range(-sp.Speed, sp.Speed), Y: s.rng.Range(-sp.Speed, sp.Speed)},
		Mass:    s.rng.Range(sp.MassMin, sp.MassMax),
		Radius:  s.rng.Range(sp.RadiusMin, sp.RadiusMax),
		Color:   s.pickColor(),
		Glyph:   s.glyphs[s.rng.Intn(len(s.glyphs))],
		Life:    sp.TTL,
		MaxLife: sp.TTL,
		Trail:   trail,
	}
	if p.Mass <= 0 {
		p.Mass = 1
	}
}

func (s *Simulator) pickColor() Color {
	pal := s.cfg.Spawn.Palette
	if len(pal) == 0 {
		return 0xffffff
	}
	return pal[s.rng.Intn(len(pal))]
}

func (s *Simulator) randomPoint() vmath.Vec2F {
	b := s.bounds
	if b.Empty() {
		return b.Center()
	}
	return vmath.Vec2F{X: s.rng.Range(b.MinX, b.MaxX), Y: s.rng.Range(b.MinY, b.MaxY)}
}

// Step advances every particle by dt frames toward an optional attractor
func (s *Simulator) Step(dt float64, attractor *vmath.Vec2F) {
	dt = vmath.ClampFinite(dt, 0, s.maxDT(), 0)
	if dt == 0 {
		return
	}
	cfg := &s.cfg
	for i := 0; i < s.n; i++ {
		p := &s.pool[i]

		if attractor != nil && cfg.Attraction != 0 {
			ApplyAttraction(p, *attractor, cfg.Attraction, cfg.MinDistance, dt)
		}
		if cfg.Gravity != 0 {
			p.Vel.Y += cfg.Gravity * dt
		}
		Damp(p, cfg.Friction, dt)
		Integrate(p, dt)

		if cfg.Bounce {
			ReflectBounds(p, s.bounds, cfg.Restitution)
		}
		p.Trail.Push(p.Pos)

		if cfg.SpinRate != 0 {
			p.Spin += cfg.SpinRate * dt
			for p.Spin >= 360 {
				p.Spin -= 360
			}
		}
		if cfg.MutateChance > 0 && s.rng.Chance(cfg.MutateChance) {
			p.Glyph = s.glyphs[s.rng.Intn(len(s.glyphs))]
			p.Color = s.pickColor()
		}
		if cfg.Lifecycle == LifecycleExpire {
			p.Life -= dt
		}
	}

	if cfg.Lifecycle == LifecycleExpire {
		s.compact()
	}
}

// compact removes dead particles preserving order of the living
// Slots are swapped rather than copied so each keeps a distinct trail buffer
func (s *Simulator) compact() {
	alive := 0
	for i := 0; i < s.n; i++ {
		if s.pool[i].Life <= 0 {
			continue
		}
		if alive != i {
			s.pool[alive], s.pool[i] = s.pool[i], s.pool[alive]
		}
		alive++
	}
	s.n = alive
}

func (s *Simulator) maxDT() float64 {
	if s.cfg.MaxStepDT <= 0 {
		return 1
	}
	return s.cfg.MaxStepDT
}

// Snapshot appends render views of the live particles to dst
// Trails are copied so views stay valid after further steps
func (s *Simulator) Snapshot(dst []View) []View {
	for i := 0; i < s.n; i++ {
		p := &s.pool[i]
		var trail []vmath.Vec2F
		if p.Trail.Len() > 0 {
			trail = p.Trail.Points(make([]vmath.Vec2F, 0, p.Trail.Len()))
		}
		dst = append(dst, View{
			ID:     p.ID,
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Color:  p.Color,
			Glyph:  p.Glyph,
			Radius: p.Radius,
			Spin:   p.Spin,
			Fade:   p.Fade(),
			Trail:  trail,
		})
	}
	return dst
}
