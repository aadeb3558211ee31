package schema

import "github.com/mokiat/gog/opt"

// Params is the live-adjustable parameter set of the viewer.
//
// The Bloom* fields are read once when the bloom pass is constructed and are
// never given defaults, so the pass keeps its own constructor values.
type Params struct {
	Exposure      float64 `json:"exposure"`
	NeonStrength  float64 `json:"neonStrength"`
	NeonThreshold float64 `json:"neonThreshold"`
	GlowRadius    float64 `json:"glowRadius"`
	GlowColor     Color   `json:"glowColor"`

	BloomThreshold opt.T[float64] `json:"-"`
	BloomStrength  opt.T[float64] `json:"-"`
	BloomRadius    opt.T[float64] `json:"-"`
}

func DefaultParams() Params {
	return Params{
		Exposure:      0.2,
		NeonStrength:  0.5,
		NeonThreshold: 0.2,
		GlowRadius:    0.1,
		GlowColor:     0x00ff00,
	}
}
