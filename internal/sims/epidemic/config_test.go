package epidemic

import (
	"errors"
	"testing"
)

func TestScenarioParameterSets(t *testing.T) {
	noVax, err := ScenarioConfig(ScenarioNoVaccine)
	if err != nil {
		t.Fatalf("ScenarioConfig: %v", err)
	}
	vax, err := ScenarioConfig(ScenarioVaccine)
	if err != nil {
		t.Fatalf("ScenarioConfig: %v", err)
	}
	if noVax.Size != 166 || noVax.Generations != 52 {
		t.Fatalf("unexpected grid defaults %+v", noVax)
	}
	if noVax.Params.Contagion != 0.18 || vax.Params.Contagion != 0.06 {
		t.Fatalf("unexpected contagion factors %v / %v", noVax.Params.Contagion, vax.Params.Contagion)
	}
	if vax.Params.Table[Sick][Dead] >= noVax.Params.Table[Sick][Dead] {
		t.Fatal("vaccination should lower the sick->dead probability")
	}
	if DefaultConfig().Scenario != ScenarioNoVaccine {
		t.Fatalf("default scenario should be %q", ScenarioNoVaccine)
	}
	if _, err := ScenarioConfig("placebo"); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"scenario":    ScenarioVaccine,
		"size":        "40",
		"generations": "not-a-number",
		"runs":        "3",
		"seed":        "12",
		"contagion":   "0.5",
		"distance":    "0.25",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Scenario != ScenarioVaccine || cfg.Size != 40 || cfg.Runs != 3 || cfg.Seed != 12 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Generations != 52 {
		t.Fatalf("malformed generations should keep the default, got %d", cfg.Generations)
	}
	if cfg.Params.Contagion != 0.5 || cfg.Params.SocialDistance != 0.25 {
		t.Fatalf("unexpected params %+v", cfg.Params)
	}
	if cfg.Params.Table[Immune][Immune] != 0.995 {
		t.Fatal("expected the vaccine transition table")
	}

	if _, err := FromMap(map[string]string{"scenario": "placebo"}); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
	if cfg, err := FromMap(nil); err != nil || cfg.Scenario != ScenarioNoVaccine {
		t.Fatalf("nil map should yield defaults, got %+v, %v", cfg, err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero size", func(c *Config) { c.Size = 0 }, ErrInvalidSize},
		{"negative generations", func(c *Config) { c.Generations = -1 }, ErrInvalidConfig},
		{"no runs", func(c *Config) { c.Runs = 0 }, ErrInvalidConfig},
		{"contagion above one", func(c *Config) { c.Params.Contagion = 1.5 }, ErrInvalidConfig},
		{"negative distance", func(c *Config) { c.Params.SocialDistance = -0.1 }, ErrInvalidConfig},
		{"table entry", func(c *Config) { c.Params.Table[Sick][Dead] = 2 }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
