package epidemic

import (
	"strconv"

	"epi-ca/internal/core"
)

// Parameters reports the scenario and run counters for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	if s.model != nil {
		p = s.model.Params()
	}
	groups := []core.ParameterGroup{
		{
			Name: "Scenario",
			Params: []core.Parameter{
				stringParam("scenario", "Scenario", s.cfg.Scenario),
				intParam("size", "Grid size", s.cfg.Size),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Spread",
			Params: []core.Parameter{
				floatParam("contagion", "Contagion", p.Contagion),
				floatParam("distance", "Social distance", p.SocialDistance),
			},
		},
	}
	if s.model != nil {
		counts := s.model.Counts()
		run := core.ParameterGroup{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.model.Generation()),
				intParam("total_cases", "Total cases", s.model.TotalCases()),
			},
		}
		for _, st := range States() {
			run.Params = append(run.Params, intParam(st.String(), st.String(), counts[st]))
		}
		groups = append(groups, run)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable while a run is in progress.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "contagion", Label: "Contagion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "distance", Label: "Social distance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates contagion or social distance, clamped to [0, 1].
// The change applies to the current run and to runs started by Reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	switch key {
	case "contagion":
		s.cfg.Params.Contagion = value
	case "distance":
		s.cfg.Params.SocialDistance = value
	default:
		return false
	}
	if s.model != nil {
		p := s.model.Params()
		p.Contagion = s.cfg.Params.Contagion
		p.SocialDistance = s.cfg.Params.SocialDistance
		if err := s.model.SetParams(p); err != nil {
			return false
		}
	}
	return true
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
