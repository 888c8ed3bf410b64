package physics

// Lifecycle selects what happens to particles over time
type Lifecycle string

const (
	// LifecycleRecycle keeps a fixed population forever
	LifecycleRecycle Lifecycle = "recycle"
	// LifecycleExpire counts life down and removes particles at life <= 0
	LifecycleExpire Lifecycle = "expire"
)

// Spawn controls initial particle properties
type Spawn struct {
	// Speed bounds each initial velocity component to [-Speed, Speed)
	Speed     float64 `yaml:"speed"`
	MassMin   float64 `yaml:"mass_min"`
	MassMax   float64 `yaml:"mass_max"`
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
	// TTL is the initial life in frames, Expire lifecycle only
	TTL     float64 `yaml:"ttl"`
	Palette []Color `yaml:"palette"`
	Glyphs  string  `yaml:"glyphs"`
}

// Config parameterizes one Simulator instance
// All rates are per reference frame; Step's dt is measured in frames
type Config struct {
	Lifecycle Lifecycle `yaml:"lifecycle"`
	// Count is the population seeded on Reseed
	Count    int `yaml:"count"`
	Capacity int `yaml:"capacity"`

	// Attraction is the inverse-square constant K, 0 disables the attractor
	Attraction  float64 `yaml:"attraction"`
	MinDistance float64 `yaml:"min_distance"`
	Friction    float64 `yaml:"friction"`
	// Gravity is a constant downward acceleration
	Gravity     float64 `yaml:"gravity"`
	Bounce      bool    `yaml:"bounce"`
	Restitution float64 `yaml:"restitution"`

	TrailCap     int     `yaml:"trail_cap"`
	SpinRate     float64 `yaml:"spin_rate"`
	MutateChance float64 `yaml:"mutate_chance"`
	// EmitChance is the probability one pointer move spawns a particle
	EmitChance float64 `yaml:"emit_chance"`
	MaxStepDT  float64 `yaml:"max_step_dt"`

	Spawn Spawn `yaml:"spawn"`
}

// Frame rate the per-frame constants are tuned for
const ReferenceFPS = 60

var defaultPalette = []Color{0xff0066, 0x00ff88, 0x6600ff, 0xffaa00, 0x00aaff}

// GravityFieldConfig returns the attractor-driven field shown in gravity mode
func GravityFieldConfig() Config {
	return Config{
		Lifecycle:   LifecycleRecycle,
		Count:       20,
		Capacity:    20,
		Attraction:  500,
		MinDistance: 1,
		Friction:    0.99,
		Bounce:      true,
		Restitution: 0.8,
		TrailCap:    20,
		MaxStepDT:   3,
		Spawn: Spawn{
			Speed:     1,
			MassMin:   1,
			MassMax:   6,
			RadiusMin: 4,
			RadiusMax: 12,
			Palette:   append([]Color(nil), defaultPalette...),
			Glyphs:    "●",
		},
	}
}

// SparksConfig returns the short-lived pointer trail
func SparksConfig() Config {
	return Config{
		Lifecycle:  LifecycleExpire,
		Capacity:   50,
		Friction:   0.98,
		Gravity:    0.1,
		EmitChance: 0.3,
		MaxStepDT:  3,
		Spawn: Spawn{
			Speed:     2,
			MassMin:   1,
			MassMax:   1,
			RadiusMin: 2,
			RadiusMax: 8,
			TTL:       60,
			Palette:   []Color{0xffffff, 0xff88cc, 0x88ccff},
			Glyphs:    "·*+",
		},
	}
}

// SwarmConfig returns the screensaver's bouncing glyphs
func SwarmConfig() Config {
	return Config{
		Lifecycle:    LifecycleRecycle,
		Count:        8,
		Capacity:     8,
		Friction:     1,
		Bounce:       true,
		Restitution:  1,
		SpinRate:     2,
		MutateChance: 0.005,
		MaxStepDT:    3,
		Spawn: Spawn{
			Speed:     2,
			MassMin:   1,
			MassMax:   1,
			RadiusMin: 8,
			RadiusMax: 8,
			Palette:   append([]Color(nil), defaultPalette...),
			Glyphs:    "AȺΛ∀△⚡★◊∎⬟",
		},
	}
}
