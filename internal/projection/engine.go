package projection

import "fmt"

// Engine orchestrates Projector objects and assembles their trajectories
type Engine struct {
	projectors []Projector
}

// NewEngine creates a new Engine with no projectors registered.
func NewEngine() *Engine {
	return &Engine{
		projectors: make([]Projector, 0),
	}
}

// Register adds a Projector to the comparison.
// Projectors are compared in the order they are registered.
// Register panics if a projector for the same Scenario() is already registered,
// as two trajectories under one tag could not be told apart in Compare.
func (e *Engine) Register(p Projector) {
	for _, existing := range e.projectors {
		if existing.Scenario() == p.Scenario() {
			panic(fmt.Sprintf("projection: projector %q already registered", p.Scenario()))
		}
	}
	e.projectors = append(e.projectors, p)
}

// Scenarios lists the registered scenarios in registration order.
func (e *Engine) Scenarios() []Scenario {
	res := make([]Scenario, 0, len(e.projectors))
	for _, p := range e.projectors {
		res = append(res, p.Scenario())
	}
	return res
}

// Project runs the projector registered for one scenario.
func (e *Engine) Project(s Scenario, years int, inputs []Param) ([]ScenarioPoint, error) {
	if err := ValidateYears(years); err != nil {
		return nil, err
	}
	for _, p := range e.projectors {
		if p.Scenario() == s {
			return p.Project(years, toMap(inputs))
		}
	}
	return nil, NewErrUnknownScenario(s)
}

// Compare runs every registered projector against the same params and
// concatenates their sequences. The first failing projector aborts the
// comparison.
func (e *Engine) Compare(years int, inputs []Param) ([]ScenarioPoint, error) {
	if err := ValidateYears(years); err != nil {
		return nil, err
	}

	paramMap := toMap(inputs)
	results := make([]ScenarioPoint, 0, len(e.projectors)*(years+1))
	for _, p := range e.projectors {
		points, err := p.Project(years, paramMap)
		if err != nil {
			return nil, fmt.Errorf("projecting %s: %w", p.Scenario(), err)
		}
		for _, pt := range points {
			pt.Scenario = p.Scenario()
			results = append(results, pt)
		}
	}
	return results, nil
}

func toMap(inputs []Param) map[string]Param {
	paramMap := make(map[string]Param, len(inputs))
	for _, p := range inputs {
		paramMap[p.Key] = p
	}
	return paramMap
}

// Lookup returns the point for (year, scenario) in a comparison sequence.
func Lookup(points []ScenarioPoint, year int, s Scenario) (ScenarioPoint, bool) {
	for _, p := range points {
		if p.Year == year && p.Scenario == s {
			return p, true
		}
	}
	return ScenarioPoint{}, false
}
