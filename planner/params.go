package planner

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// PlannerParameters mirrors the external option table (spec.md §6): sweep
// raster density, bridge-layer validation density, and start/goal
// attachment search parameters.
type PlannerParameters struct {
	NumLayer           int        `mapstructure:"NUM_LAYER"`
	NumLineX           int        `mapstructure:"NUM_LINE_X"`
	NumLineY           int        `mapstructure:"NUM_LINE_Y"`
	BoundLimit         [2]float64 `mapstructure:"BOUND_LIMIT"`
	NumPoint           int        `mapstructure:"NUM_POINT"`
	NumSearchNeighbor  int        `mapstructure:"NUM_SEARCH_NEIGHBOR"`
	SearchRadius       float64    `mapstructure:"SEARCH_RADIUS"`
	BridgeStrategyName string     `mapstructure:"BRIDGE_STRATEGY"`
}

// NewDefaultPlannerParameters returns the parameter set used when a request
// doesn't override anything: a conservative raster and a TFE bridge
// strategy.
func NewDefaultPlannerParameters() PlannerParameters {
	return PlannerParameters{
		NumLayer:          8,
		NumLineX:          20,
		NumLineY:          20,
		BoundLimit:        [2]float64{-50, 50},
		NumPoint:          10,
		NumSearchNeighbor: 5,
		SearchRadius:      10,
		BridgeStrategyName: "TFE",
	}
}

// DecodeParameters overrides the receiver's fields from a generic
// map[string]interface{} (the shape a CSV-adjacent config loader hands the
// planner), using mapstructure with cast-backed numeric coercion so string
// values ("4") and float64 values (json-decoded) both land correctly on int
// and float64 struct fields.
func (p *PlannerParameters) DecodeParameters(raw map[string]interface{}) error {
	if raw == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           p,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			numericCoercionHook,
		),
	})
	if err != nil {
		return errors.Wrap(err, "planner: building parameter decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return errors.Wrap(err, "planner: decoding parameters")
	}
	return nil
}

// numericCoercionHook handles the config sources (CSV-adjacent tooling)
// that hand every value over as a string or a float64, coercing it to
// whatever int/float64 field mapstructure is about to set via cast, which
// is more forgiving than mapstructure's own built-in weak typing for
// things like "4.0" -> int.
func numericCoercionHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int:
		return cast.ToIntE(data)
	case reflect.Float64:
		return cast.ToFloat64E(data)
	default:
		return data, nil
	}
}
