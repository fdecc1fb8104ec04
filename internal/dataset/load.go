package dataset

import (
	_ "embed"
	"sync"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

//go:embed india.yaml
var indiaYAML []byte

var (
	defaultOnce    sync.Once
	defaultDataset *Dataset
	defaultErr     error
)

// Default returns the bundled India dataset. It is decoded and validated on
// first use; later calls return the same instance.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		defaultDataset, defaultErr = Load(indiaYAML)
	})
	return defaultDataset, defaultErr
}

// MustDefault is Default for callers that cannot continue without reference data.
func MustDefault() *Dataset {
	d, err := Default()
	if err != nil {
		panic(err)
	}
	return d
}

// Load decodes and validates a dataset document.
func Load(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return nil, errors.Wrap(err, "decoding dataset")
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the structural invariants of the reference data.
func Validate(d *Dataset) error {
	if d.TotalGap <= 0 {
		return NewErrInvalidDataset("total_gap must be positive, got %d", d.TotalGap)
	}
	if len(d.Categories) == 0 {
		return NewErrInvalidDataset("no categories defined")
	}

	for _, c := range d.Categories {
		if c.Gap != c.Required-c.Current {
			return NewErrInvalidDataset("category %q: gap %d != required %d - current %d", c.Name, c.Gap, c.Required, c.Current)
		}
		if c.AvgSalary <= 0 {
			return NewErrInvalidDataset("category %q: avg salary must be positive", c.Name)
		}
		if c.TrainingCost <= 0 {
			return NewErrInvalidDataset("category %q: training cost must be positive", c.Name)
		}
		if c.TrainingDurationYears <= 0 {
			return NewErrInvalidDataset("category %q: training duration must be positive", c.Name)
		}
		if c.AttritionRate < 0 || c.AttritionRate >= 1 {
			return NewErrInvalidDataset("category %q: attrition rate %v outside [0,1)", c.Name, c.AttritionRate)
		}
	}

	states := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		if s.Gap != s.RequiredAHP-s.CurrentAHP {
			return NewErrInvalidDataset("state %q: gap %d != required %d - current %d", s.Name, s.Gap, s.RequiredAHP, s.CurrentAHP)
		}
		states[s.Name] = struct{}{}
	}

	for _, r := range d.Regions {
		for _, member := range r.States {
			if _, ok := states[member]; !ok {
				return NewErrInvalidDataset("region %q references unknown state %q", r.Name, member)
			}
		}
	}

	return nil
}
