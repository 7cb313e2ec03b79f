package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Phases holds one environmental indicator bucketed by life cycle stage,
// e.g. {"a1a3": 2.5, "c3": 0.1}. Values are per declared unit of the EPD.
// Absent stages are treated as zero when aggregating.
type Phases map[string]float64

// LifeCyclePhases is the fixed stage vocabulary (EN 15804 modules).
var LifeCyclePhases = []string{
	"a1a3", "a4", "a5",
	"b1", "b2", "b3", "b4", "b5", "b6", "b7",
	"c1", "c2", "c3", "c4",
	"d",
}

// PhaseValue collapses a phase map into a single number. With no phases
// requested it returns the production value (a1a3); otherwise the sum of the
// requested stages, counting missing stages as zero. This is the only place
// that policy lives - every indicator and every call site goes through it.
func PhaseValue(phases Phases, requested []string) float64 {
	if len(requested) == 0 {
		return phases["a1a3"]
	}
	var total float64
	for _, phase := range requested {
		total += phases[phase]
	}
	return total
}

// CheckPhases rejects stage codes outside the fixed vocabulary. An unknown
// code would otherwise silently aggregate to zero.
func CheckPhases(requested []string) error {
	for _, phase := range requested {
		if !knownPhase(phase) {
			return fmt.Errorf("unknown life cycle phase %s", phase)
		}
	}
	return nil
}

func knownPhase(phase string) bool {
	for _, known := range LifeCyclePhases {
		if known == phase {
			return true
		}
	}
	return false
}

// IndicatorNames lists the indicator sets an EPD carries.
var IndicatorNames = []string{"gwp", "odp", "ap", "ep", "pocp", "penre", "pere"}

// CheckIndicator rejects indicator names outside IndicatorNames.
func CheckIndicator(indicator string) error {
	for _, known := range IndicatorNames {
		if known == indicator {
			return nil
		}
	}
	return fmt.Errorf("unknown indicator %s", indicator)
}

func (p Phases) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Phases) Scan(value interface{}) error {
	if value == nil {
		*p = Phases{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported phase column type %T", value)
	}
	if len(data) == 0 {
		*p = Phases{}
		return nil
	}
	return json.Unmarshal(data, p)
}

func (Phases) GormDataType() string {
	return "json"
}

func (Phases) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "JSON"
}

// MarshalGQL implements the Phases scalar.
func (p Phases) MarshalGQL(w io.Writer) {
	b, err := json.Marshal(p)
	if err != nil {
		w.Write([]byte("null"))
		return
	}
	w.Write(b)
}

// UnmarshalGQL accepts a JSON object of stage code to number. Null entries
// are dropped, matching how upstream registries report unmeasured stages.
func (p *Phases) UnmarshalGQL(v interface{}) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return errors.New("phases must be a map of stage to number")
	}
	result := make(Phases, len(m))
	for phase, raw := range m {
		switch value := raw.(type) {
		case nil:
			continue
		case float64:
			result[phase] = value
		case int64:
			result[phase] = float64(value)
		case json.Number:
			f, err := value.Float64()
			if err != nil {
				return fmt.Errorf("invalid value for phase %s: %w", phase, err)
			}
			result[phase] = f
		default:
			return fmt.Errorf("invalid value for phase %s", phase)
		}
	}
	*p = result
	return nil
}

// EPDLayer is the scope-independent view of one assembly layer used by the
// aggregation code: global and project links both implement it.
type EPDLayer interface {
	LayerConversionFactor() float64
	IndicatorPhases(indicator string) Phases
	TransportPhases(indicator string) (Phases, bool)
	TransportScaling() (distance float64, conversionFactor float64)
}

// AssemblyIndicator rolls one indicator up over an assembly's layers:
// sum of PhaseValue(layer epd indicator, phases) * layer conversion factor.
// An assembly with no layers yields 0. Transport overlays are NOT part of
// this sum; see TransportIndicator.
func AssemblyIndicator(layers []EPDLayer, indicator string, phases []string) float64 {
	var total float64
	for _, layer := range layers {
		total += PhaseValue(layer.IndicatorPhases(indicator), phases) * layer.LayerConversionFactor()
	}
	return total
}

// TransportIndicator is the transport overlay contribution of a single layer:
// PhaseValue(transport epd indicator, phases) * transport conversion factor *
// transport distance. Returns 0 when the layer has no transport EPD. Exposed
// as its own field; callers that want a combined figure add it explicitly.
func TransportIndicator(layer EPDLayer, indicator string, phases []string) float64 {
	transportPhases, ok := layer.TransportPhases(indicator)
	if !ok {
		return 0
	}
	distance, factor := layer.TransportScaling()
	return PhaseValue(transportPhases, phases) * factor * distance
}

// AssemblyTransportIndicator sums the transport contributions over all layers.
func AssemblyTransportIndicator(layers []EPDLayer, indicator string, phases []string) float64 {
	var total float64
	for _, layer := range layers {
		total += TransportIndicator(layer, indicator, phases)
	}
	return total
}
