package viewer

import (
	"math"

	"github.com/nobonobo/neon-viewer/schema"
)

// Control describes one panel input. A zero Step means continuous.
type Control struct {
	Name string
	Min  float64
	Max  float64
	Step float64
}

var (
	ExposureControl      = Control{Name: "exposure", Min: 0.1, Max: 4.0}
	NeonThresholdControl = Control{Name: "neonThreshold", Min: 0.0, Max: 1.0}
	NeonStrengthControl  = Control{Name: "neonStrength", Min: 0.0, Max: 3.0}
	GlowRadiusControl    = Control{Name: "glowRadius", Min: 0.0, Max: 1.0, Step: 0.01}
	GlowColorControl     = Control{Name: "glowColor"}
)

// Normalize clamps value to the control range and snaps it to the step grid
// the same way the panel widget does.
func (c Control) Normalize(value float64) float64 {
	if c.Min == c.Max {
		return value
	}
	if c.Step > 0 {
		value = c.Min + math.Round((value-c.Min)/c.Step)*c.Step
		// drop the float noise left by the multiplication
		decimals := math.Pow(10, math.Ceil(-math.Log10(c.Step)))
		value = math.Round(value*decimals) / decimals
	}
	return min(max(value, c.Min), c.Max)
}

func ExposureCurve(value float64) float64 {
	return math.Pow(value, 4.0)
}

func (v *Viewer) bindControls(panel Panel) {
	panel.AddSlider(ExposureControl, v.params.Exposure, v.SetExposure)
	panel.AddSlider(NeonThresholdControl, v.params.NeonThreshold, v.SetNeonThreshold)
	panel.AddSlider(NeonStrengthControl, v.params.NeonStrength, v.SetNeonStrength)
	panel.AddSlider(GlowRadiusControl, v.params.GlowRadius, v.SetGlowRadius)
	panel.AddColor(GlowColorControl, v.params.GlowColor, v.SetGlowColor)
}

func (v *Viewer) SetExposure(value float64) {
	v.params.Exposure = ExposureControl.Normalize(value)
	v.renderer.SetToneMappingExposure(ExposureCurve(v.params.Exposure))
}

func (v *Viewer) SetNeonThreshold(value float64) {
	v.params.NeonThreshold = NeonThresholdControl.Normalize(value)
	v.bloom.SetThreshold(v.params.NeonThreshold)
}

func (v *Viewer) SetNeonStrength(value float64) {
	v.params.NeonStrength = NeonStrengthControl.Normalize(value)
	v.bloom.SetStrength(v.params.NeonStrength)
}

func (v *Viewer) SetGlowRadius(value float64) {
	v.params.GlowRadius = GlowRadiusControl.Normalize(value)
	v.bloom.SetRadius(v.params.GlowRadius)
}

// SetGlowColor recolors the material shared by every mesh of the model. The
// material exists before the model finishes loading.
func (v *Viewer) SetGlowColor(color schema.Color) {
	v.params.GlowColor = color
	v.material.SetColor(color)
}
