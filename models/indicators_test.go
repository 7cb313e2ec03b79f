package models_test

import (
	"testing"

	"github.com/lcadata/assembly_backend/models"
)

func TestPhaseValue(t *testing.T) {
	phases := models.Phases{"a1a3": 10, "c3": 2, "c4": 0.5}

	cases := []struct {
		name      string
		requested []string
		expected  float64
	}{
		{"defaults to production", nil, 10},
		{"empty defaults to production", []string{}, 10},
		{"sums requested stages", []string{"a1a3", "c3"}, 12},
		{"missing stage counts as zero", []string{"c3", "b6"}, 2},
		{"only missing stages", []string{"b1", "b2"}, 0},
	}
	for _, tc := range cases {
		if got := models.PhaseValue(phases, tc.requested); got != tc.expected {
			t.Fatalf("%s: PhaseValue(%v) = %v, expected %v", tc.name, tc.requested, got, tc.expected)
		}
	}
}

func TestCheckPhases(t *testing.T) {
	if err := models.CheckPhases(nil); err != nil {
		t.Fatalf("CheckPhases(nil) = %v", err)
	}
	if err := models.CheckPhases([]string{"a1a3", "c3", "d"}); err != nil {
		t.Fatalf("CheckPhases(known stages) = %v", err)
	}
	// an unknown stage would silently aggregate to zero, so it is rejected
	if err := models.CheckPhases([]string{"a1a3", "a9"}); err == nil {
		t.Fatalf("CheckPhases accepted an unknown stage")
	}
	if err := models.CheckPhases([]string{"A1A3"}); err == nil {
		t.Fatalf("CheckPhases accepted an upper-cased stage")
	}
}

func TestCheckIndicator(t *testing.T) {
	for _, indicator := range []string{"gwp", "pere"} {
		if err := models.CheckIndicator(indicator); err != nil {
			t.Fatalf("CheckIndicator(%s) = %v", indicator, err)
		}
	}
	if err := models.CheckIndicator("co2"); err == nil {
		t.Fatalf("CheckIndicator accepted an unknown indicator")
	}
}

func gwpLayer(factor float64, gwp models.Phases) *models.AssemblyEPDLink {
	return &models.AssemblyEPDLink{
		ConversionFactor: factor,
		Epd:              &models.EPD{Gwp: gwp},
	}
}

func TestAssemblyIndicatorScalesLayersByConversionFactor(t *testing.T) {
	layers := []models.EPDLayer{
		gwpLayer(1, models.Phases{"a1a3": 10}),
		gwpLayer(2, models.Phases{"a1a3": 5}),
	}

	if got := models.AssemblyIndicator(layers, "gwp", nil); got != 20 {
		t.Fatalf("AssemblyIndicator = %v, expected 20", got)
	}
}

func TestAssemblyIndicatorEmptyAssemblyIsZero(t *testing.T) {
	if got := models.AssemblyIndicator(nil, "gwp", nil); got != 0 {
		t.Fatalf("AssemblyIndicator(nil) = %v, expected 0", got)
	}
}

func TestAssemblyIndicatorUnknownIndicatorIsZero(t *testing.T) {
	layers := []models.EPDLayer{gwpLayer(1, models.Phases{"a1a3": 10})}
	if got := models.AssemblyIndicator(layers, "nope", nil); got != 0 {
		t.Fatalf("AssemblyIndicator(unknown) = %v, expected 0", got)
	}
}

func TestTransportIndicatorScalesByDistanceAndFactor(t *testing.T) {
	layer := &models.AssemblyEPDLink{
		ConversionFactor:          1,
		Epd:                       &models.EPD{Gwp: models.Phases{"a1a3": 10}},
		TransportEpd:              &models.EPD{Gwp: models.Phases{"a1a3": 0.1}},
		TransportDistance:         100,
		TransportConversionFactor: 2,
	}

	if got := models.TransportIndicator(layer, "gwp", nil); got != 20 {
		t.Fatalf("TransportIndicator = %v, expected 20", got)
	}
}

func TestTransportIndicatorWithoutTransportEpdIsZero(t *testing.T) {
	layer := gwpLayer(1, models.Phases{"a1a3": 10})
	layer.TransportDistance = 100
	layer.TransportConversionFactor = 2

	if got := models.TransportIndicator(layer, "gwp", nil); got != 0 {
		t.Fatalf("TransportIndicator = %v, expected 0", got)
	}
}

// Transport stays out of the material roll-up; callers add the two figures
// explicitly when they want a combined one.
func TestTransportNotFoldedIntoAssemblyIndicator(t *testing.T) {
	layer := &models.AssemblyEPDLink{
		ConversionFactor:          1,
		Epd:                       &models.EPD{Gwp: models.Phases{"a1a3": 10}},
		TransportEpd:              &models.EPD{Gwp: models.Phases{"a1a3": 0.1}},
		TransportDistance:         100,
		TransportConversionFactor: 2,
	}
	layers := []models.EPDLayer{layer}

	if got := models.AssemblyIndicator(layers, "gwp", nil); got != 10 {
		t.Fatalf("AssemblyIndicator = %v, expected 10", got)
	}
	if got := models.AssemblyTransportIndicator(layers, "gwp", nil); got != 20 {
		t.Fatalf("AssemblyTransportIndicator = %v, expected 20", got)
	}
}

func TestPhasesUnmarshalGQL(t *testing.T) {
	var phases models.Phases
	err := phases.UnmarshalGQL(map[string]interface{}{
		"a1a3": 2.5,
		"c3":   nil,
	})
	if err != nil {
		t.Fatalf("UnmarshalGQL error: %v", err)
	}
	if len(phases) != 1 || phases["a1a3"] != 2.5 {
		t.Fatalf("UnmarshalGQL = %v, expected null entries dropped", phases)
	}

	if err := phases.UnmarshalGQL(map[string]interface{}{"a1a3": "high"}); err == nil {
		t.Fatalf("UnmarshalGQL accepted a string value")
	}
	if err := phases.UnmarshalGQL("a1a3"); err == nil {
		t.Fatalf("UnmarshalGQL accepted a non-map value")
	}
}
