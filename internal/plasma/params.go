package plasma

import (
	"fmt"
	"strconv"

	"plasma/internal/core"
)

const (
	paramMaxFPS   = "max_fps"
	paramShowFPS  = "show_fps"
	paramNoScale  = "no_scale"
	maxFPSControl = 60
)

// Parameters reports the session's current settings for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: paramMaxFPS, Label: "Max FPS", Type: core.ParamTypeInt, Value: strconv.Itoa(cfg.MaxFPS)},
				{Key: "observed_fps", Label: "Observed", Type: core.ParamTypeText, Value: strconv.Itoa(s.ObservedFPS())},
			},
		},
		{
			Name: "Debug",
			Params: []core.Parameter{
				{Key: paramShowFPS, Label: "Show FPS", Type: core.ParamTypeBool, Value: strconv.FormatBool(cfg.ShowFPS)},
				{Key: paramNoScale, Label: "No scale", Type: core.ParamTypeBool, Value: strconv.FormatBool(cfg.DoNotScale)},
			},
		},
		{
			Name: "Raster",
			Params: []core.Parameter{
				{Key: "raster", Label: "Raster", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", cfg.RenderWidth, cfg.RenderHeight)},
				{Key: "map_size", Label: "Map", Type: core.ParamTypeText, Value: strconv.Itoa(cfg.MapSize)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramMaxFPS, Label: "Max FPS", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxFPSControl},
		{Key: paramShowFPS, Label: "Show FPS", Type: core.ParamTypeBool},
		{Key: paramNoScale, Label: "No scale", Type: core.ParamTypeBool},
	}
}

// SetIntParameter applies a HUD adjustment. Out-of-range values are rejected
// and leave the session unchanged.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case paramMaxFPS:
		if value < 1 || value > maxFPSControl {
			return false
		}
		return s.SetMaxFPS(value) == nil
	}
	return false
}

// SetBoolParameter applies a HUD toggle.
func (s *Session) SetBoolParameter(key string, value bool) bool {
	switch key {
	case paramShowFPS:
		s.SetShowFPS(value)
	case paramNoScale:
		s.SetDoNotScale(value)
	default:
		return false
	}
	return true
}
