package trajectories

import (
	"fmt"

	"github.com/ahpgap/workforce-planner/internal/projection"
)

func getFloat(p projection.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil // JSON default
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil // Direct struct usage or YAML (sometimes)
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

// floatOr returns the named param, or def when it is absent.
func floatOr(params map[string]projection.Param, key string, def float64) (float64, error) {
	p, ok := params[key]
	if !ok {
		return def, nil
	}
	v, err := getFloat(p)
	if err != nil {
		return 0, projection.NewErrInvalidParameter("%v", err)
	}
	return v, nil
}
