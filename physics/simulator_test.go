package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/alive/vmath"
)

var box = vmath.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

func bareConfig() Config {
	return Config{
		Lifecycle: LifecycleRecycle,
		Capacity:  4,
		Friction:  1,
		MaxStepDT: 3,
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestStep_BounceAppliesRestitution(t *testing.T) {
	cfg := bareConfig()
	cfg.Bounce = true
	cfg.Restitution = 0.8
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 97, Y: 50}, Vel: vmath.Vec2F{X: 5}, Mass: 1, Radius: 2})

	s.Step(1, nil)

	p := s.Particle(0)
	if !near(p.Vel.X, -4) {
		t.Errorf("expected vx -4 after bounce, got %v", p.Vel.X)
	}
	if p.Pos.X != 98 {
		t.Errorf("expected position clamped to 98, got %v", p.Pos.X)
	}
	if p.Pos.X+p.Radius > box.MaxX {
		t.Errorf("particle disc escaped bounds: %v", p.Pos.X)
	}
}

func TestStep_InverseSquareAttraction(t *testing.T) {
	cfg := bareConfig()
	cfg.Attraction = 500
	cfg.MinDistance = 1
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 10, Y: 50}, Mass: 1})
	s.Add(Particle{Pos: vmath.Vec2F{X: 10, Y: 50}, Mass: 2})

	att := vmath.Vec2F{X: 20, Y: 50}
	s.Step(1, &att)

	// K/d² = 500/100 = 5, divided by mass
	if v := s.Particle(0).Vel.X; !near(v, 5) {
		t.Errorf("expected vx 5 for mass 1, got %v", v)
	}
	if v := s.Particle(1).Vel.X; !near(v, 2.5) {
		t.Errorf("expected vx 2.5 for mass 2, got %v", v)
	}
	if x := s.Particle(0).Pos.X; !near(x, 15) {
		t.Errorf("expected x 15 after integration, got %v", x)
	}
}

func TestStep_AttractorOnParticleSkipped(t *testing.T) {
	cfg := bareConfig()
	cfg.Attraction = 500
	cfg.MinDistance = 1
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 50, Y: 50}, Mass: 1})

	att := vmath.Vec2F{X: 50.5, Y: 50}
	s.Step(1, &att)

	p := s.Particle(0)
	if p.Vel != (vmath.Vec2F{}) {
		t.Errorf("expected no force inside min distance, got %+v", p.Vel)
	}
	if math.IsNaN(p.Pos.X) || math.IsInf(p.Pos.X, 0) {
		t.Errorf("position not finite: %v", p.Pos)
	}
}

func TestStep_NoAttractorNoForce(t *testing.T) {
	cfg := bareConfig()
	cfg.Attraction = 500
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 10, Y: 10}, Vel: vmath.Vec2F{X: 1, Y: 1}, Mass: 1})

	s.Step(1, nil)

	if p := s.Particle(0); p.Pos != (vmath.Vec2F{X: 11, Y: 11}) {
		t.Errorf("expected pure inertia, got %+v", p.Pos)
	}
}

func TestStep_FrictionAndGravity(t *testing.T) {
	cfg := bareConfig()
	cfg.Friction = 0.5
	cfg.Gravity = 1
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 50, Y: 50}, Vel: vmath.Vec2F{X: 4, Y: 0}, Mass: 1})

	s.Step(1, nil)

	p := s.Particle(0)
	if !near(p.Vel.X, 2) || !near(p.Vel.Y, 0.5) {
		t.Errorf("expected velocity (2, 0.5), got %+v", p.Vel)
	}
}

func TestStep_DTClamped(t *testing.T) {
	s := NewSimulator(bareConfig(), box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 10, Y: 10}, Vel: vmath.Vec2F{X: 1}, Mass: 1})

	s.Step(-5, nil)
	if x := s.Particle(0).Pos.X; x != 10 {
		t.Errorf("negative dt moved particle to %v", x)
	}
	s.Step(math.NaN(), nil)
	if x := s.Particle(0).Pos.X; x != 10 {
		t.Errorf("NaN dt moved particle to %v", x)
	}
	s.Step(1000, nil)
	if x := s.Particle(0).Pos.X; !near(x, 13) {
		t.Errorf("expected dt capped at 3, got x %v", x)
	}
}

func TestStep_TrailBounded(t *testing.T) {
	cfg := bareConfig()
	cfg.TrailCap = 20
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 0, Y: 0}, Vel: vmath.Vec2F{X: 1}, Mass: 1})

	for i := 0; i < 30; i++ {
		s.Step(1, nil)
	}

	p := s.Particle(0)
	if p.Trail.Len() != 20 {
		t.Fatalf("expected trail length 20, got %d", p.Trail.Len())
	}
	pts := p.Trail.Points(nil)
	if pts[0].X != 11 || pts[19].X != 30 {
		t.Errorf("expected FIFO window 11..30, got %v..%v", pts[0].X, pts[19].X)
	}
	if last, _ := p.Trail.Last(); last != p.Pos {
		t.Errorf("expected newest point to equal position")
	}
}

func TestStep_ExpireRemovesDead(t *testing.T) {
	cfg := bareConfig()
	cfg.Lifecycle = LifecycleExpire
	cfg.TrailCap = 4
	cfg.Spawn.TTL = 10
	s := NewSimulator(cfg, box, nil)
	for _, life := range []float64{1, 5, 1, 5} {
		s.Add(Particle{Life: life, MaxLife: life, Mass: 1})
	}

	s.Step(1, nil)

	if s.Len() != 2 {
		t.Fatalf("expected 2 survivors, got %d", s.Len())
	}
	if s.Particle(0).ID != 2 || s.Particle(1).ID != 4 {
		t.Errorf("expected survivors 2,4 in order, got %d,%d", s.Particle(0).ID, s.Particle(1).ID)
	}

	// New particle must own its trail storage, not share a survivor's
	s.Emit(vmath.Vec2F{X: 1, Y: 1})
	s.Step(1, nil)
	if got := s.Particle(2).Trail.Len(); got != 1 {
		t.Errorf("expected fresh trail of 1, got %d", got)
	}
	if got := s.Particle(0).Trail.Len(); got != 2 {
		t.Errorf("expected survivor trail of 2, got %d", got)
	}
}

func TestStep_ExpireFadesOut(t *testing.T) {
	cfg := SparksConfig()
	s := NewSimulator(cfg, box, vmath.NewFastRand(7))
	s.Emit(vmath.Vec2F{X: 50, Y: 50})

	s.Step(1, nil)
	fade := s.Particle(0).Fade()
	if !near(fade, 59.0/60.0) {
		t.Errorf("expected fade 59/60, got %v", fade)
	}
	for i := 0; i < 59; i++ {
		s.Step(1, nil)
	}
	if s.Len() != 0 {
		t.Errorf("expected spark gone after ttl, %d left", s.Len())
	}
}

func TestEmit_DropsOldestAtCapacity(t *testing.T) {
	cfg := bareConfig()
	cfg.Lifecycle = LifecycleExpire
	cfg.Capacity = 2
	cfg.Spawn.TTL = 10
	s := NewSimulator(cfg, box, nil)

	for i := 0; i < 3; i++ {
		s.Emit(vmath.Vec2F{X: float64(i)})
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 particles, got %d", s.Len())
	}
	if s.Particle(0).ID != 2 || s.Particle(1).ID != 3 {
		t.Errorf("expected ids 2,3, got %d,%d", s.Particle(0).ID, s.Particle(1).ID)
	}
}

func TestMaybeEmit_RespectsChance(t *testing.T) {
	cfg := SparksConfig()
	cfg.EmitChance = 0
	s := NewSimulator(cfg, box, vmath.NewFastRand(3))
	for i := 0; i < 100; i++ {
		s.MaybeEmit(vmath.Vec2F{X: 1, Y: 1})
	}
	if s.Len() != 0 {
		t.Errorf("expected no emission at chance 0, got %d", s.Len())
	}

	cfg.EmitChance = 1
	s = NewSimulator(cfg, box, vmath.NewFastRand(3))
	s.MaybeEmit(vmath.Vec2F{X: 1, Y: 1})
	if s.Len() != 1 {
		t.Errorf("expected emission at chance 1, got %d", s.Len())
	}
}

func TestSeed_FixedPopulation(t *testing.T) {
	s := NewSimulator(GravityFieldConfig(), box, vmath.NewFastRand(42))
	s.Reseed()
	if s.Len() != 20 {
		t.Fatalf("expected 20 particles, got %d", s.Len())
	}
	s.Seed(500)
	if s.Len() != 20 {
		t.Errorf("expected seed capped at capacity 20, got %d", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		if !box.Contains(p.Pos) {
			t.Errorf("particle %d spawned outside bounds: %+v", i, p.Pos)
		}
		if p.Mass < 1 || p.Mass >= 6 {
			t.Errorf("particle %d mass out of range: %v", i, p.Mass)
		}
	}
}

func TestGravityField_StaysBounded(t *testing.T) {
	s := NewSimulator(GravityFieldConfig(), box, vmath.NewFastRand(9))
	s.Reseed()
	att := box.Center()

	for step := 0; step < 2000; step++ {
		s.Step(1, &att)
	}

	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		if !vmath.IsFinite(p.Pos.X) || !vmath.IsFinite(p.Pos.Y) {
			t.Fatalf("particle %d not finite: %+v", i, p.Pos)
		}
		if p.Pos.X < box.MinX+p.Radius || p.Pos.X > box.MaxX-p.Radius ||
			p.Pos.Y < box.MinY+p.Radius || p.Pos.Y > box.MaxY-p.Radius {
			t.Errorf("particle %d escaped: %+v r=%v", i, p.Pos, p.Radius)
		}
		if p.Trail.Len() > 20 {
			t.Errorf("trail exceeded capacity: %d", p.Trail.Len())
		}
	}
}

func TestSwarm_SpinWrapsAndMutates(t *testing.T) {
	cfg := SwarmConfig()
	cfg.MutateChance = 1
	s := NewSimulator(cfg, box, vmath.NewFastRand(5))
	s.Reseed()

	for i := 0; i < 200; i++ {
		s.Step(1, nil)
	}

	glyphs := []rune(cfg.Spawn.Glyphs)
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		if p.Spin < 0 || p.Spin >= 360 {
			t.Errorf("spin not wrapped: %v", p.Spin)
		}
		found := false
		for _, g := range glyphs {
			if g == p.Glyph {
				found = true
			}
		}
		if !found {
			t.Errorf("mutated to unknown glyph %q", p.Glyph)
		}
	}
}

func TestSnapshot_IndependentCopy(t *testing.T) {
	cfg := bareConfig()
	cfg.TrailCap = 5
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 1, Y: 1}, Vel: vmath.Vec2F{X: 1}, Mass: 1, Glyph: 'x'})
	s.Step(1, nil)

	views := s.Snapshot(nil)
	s.Step(1, nil)

	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].X != 2 || len(views[0].Trail) != 1 {
		t.Errorf("snapshot mutated by later step: %+v", views[0])
	}
	if views[0].Fade != 1 {
		t.Errorf("expected full fade for recycled particle, got %v", views[0].Fade)
	}
}

func TestSetBounds_PullsInside(t *testing.T) {
	cfg := bareConfig()
	cfg.Bounce = true
	cfg.Restitution = 0.8
	s := NewSimulator(cfg, box, nil)
	s.Add(Particle{Pos: vmath.Vec2F{X: 90, Y: 90}, Mass: 1, Radius: 1})

	s.SetBounds(vmath.Rect{MaxX: 50, MaxY: 50})

	if p := s.Particle(0).Pos; p.X != 49 || p.Y != 49 {
		t.Errorf("expected particle pulled to (49,49), got %+v", p)
	}
}

func TestTrail_ZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(vmath.Vec2F{X: 1})
	if tr.Len() != 0 {
		t.Errorf("expected zero-capacity trail to stay empty")
	}
	if _, ok := tr.Last(); ok {
		t.Errorf("expected no last point")
	}
}
