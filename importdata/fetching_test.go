package importdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcadata/assembly_backend/models"
)

func localized(lang string, value string) map[string]interface{} {
	return map[string]interface{}{"lang": lang, "value": value}
}

func TestLocalizedEnglish(t *testing.T) {
	cases := []struct {
		name     string
		entries  []interface{}
		expected string
	}{
		{"english wins", []interface{}{localized("de", "Beton"), localized("en", "Concrete")}, "Concrete"},
		{"falls back to other language", []interface{}{localized("de", "Beton")}, "Beton"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		if got := localizedEnglish(tc.entries); got != tc.expected {
			t.Fatalf("%s: localizedEnglish = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestGetEpdName(t *testing.T) {
	datasetInformation := map[string]interface{}{
		"name": map[string]interface{}{
			"baseName": []interface{}{localized("de", "Beispielbeton")},
		},
	}

	name, err := getEpdName(datasetInformation, &AdditionalData{})
	if err != nil {
		t.Fatalf("getEpdName error: %v", err)
	}
	if name != "Beispielbeton" {
		t.Fatalf("name = %q, expected the German fallback", name)
	}

	name, err = getEpdName(datasetInformation, &AdditionalData{Name: "Listing name"})
	if err != nil {
		t.Fatalf("getEpdName with override error: %v", err)
	}
	if name != "Listing name" {
		t.Fatalf("name = %q, expected the listing override", name)
	}

	_, err = getEpdName(map[string]interface{}{}, &AdditionalData{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("getEpdName without name = %v, expected a parse error", err)
	}
}

func TestGetIndicatorByPhase(t *testing.T) {
	entry := map[string]interface{}{
		"other": map[string]interface{}{
			"anies": []interface{}{
				map[string]interface{}{"module": "A1-A3", "value": 10.5},
				map[string]interface{}{"module": "C3", "value": "2.5"},
				map[string]interface{}{"module": "C4", "value": "-"},
				map[string]interface{}{"value": 99.0},
			},
		},
	}

	phases := getIndicatorByPhase(entry)
	if phases["A1-A3"] != 10.5 {
		t.Fatalf("A1-A3 = %v, expected 10.5", phases["A1-A3"])
	}
	if phases["C3"] != 2.5 {
		t.Fatalf("C3 = %v, expected string values parsed", phases["C3"])
	}
	if _, ok := phases["C4"]; ok {
		t.Fatalf("unparseable value was kept")
	}
	if len(phases) != 2 {
		t.Fatalf("phases = %v, expected module-less entries skipped", phases)
	}
}

func lciaResult(method string, module string, value float64) map[string]interface{} {
	return map[string]interface{}{
		"referenceToLCIAMethodDataSet": map[string]interface{}{
			"shortDescription": []interface{}{localized("en", method)},
		},
		"other": map[string]interface{}{
			"anies": []interface{}{
				map[string]interface{}{"module": module, "value": value},
			},
		},
	}
}

func TestGetImpactCategoriesRoutesByDescription(t *testing.T) {
	document := map[string]interface{}{
		"LCIAResults": map[string]interface{}{
			"LCIAResult": []interface{}{
				lciaResult("Global warming potential", "a1a3", 320),
				lciaResult("Ozone depletion", "a1a3", 0.001),
				lciaResult("Acidification potential", "a1a3", 0.5),
				lciaResult("Eutrophication potential", "a1a3", 0.1),
				lciaResult("Photochemical ozone creation", "a1a3", 0.02),
			},
		},
	}

	gwp, odp, ap, ep, pocp := getImpactCategories(document)
	if gwp["a1a3"] != 320 {
		t.Fatalf("gwp = %v", gwp)
	}
	if odp["a1a3"] != 0.001 {
		t.Fatalf("odp = %v", odp)
	}
	if ap["a1a3"] != 0.5 {
		t.Fatalf("ap = %v", ap)
	}
	if ep["a1a3"] != 0.1 {
		t.Fatalf("ep = %v", ep)
	}
	if pocp["a1a3"] != 0.02 {
		t.Fatalf("pocp = %v", pocp)
	}
}

func TestGetEnergyIndicators(t *testing.T) {
	exchange := func(description string, value float64) map[string]interface{} {
		return map[string]interface{}{
			"referenceToLCIAMethodDataSet": map[string]interface{}{
				"shortDescription": []interface{}{localized("en", description)},
			},
			"other": map[string]interface{}{
				"anies": []interface{}{
					map[string]interface{}{"module": "a1a3", "value": value},
				},
			},
		}
	}
	document := map[string]interface{}{
		"exchanges": map[string]interface{}{
			"exchange": []interface{}{
				exchange("Renewable primary energy (PERE)", 12),
				exchange("Non renewable primary energy (PENRE)", 88),
			},
		},
	}

	pere, penre := getEnergyIndicators(document)
	if pere["a1a3"] != 12 {
		t.Fatalf("pere = %v", pere)
	}
	if penre["a1a3"] != 88 {
		t.Fatalf("penre = %v", penre)
	}
}

func TestGetFunctionalUnit(t *testing.T) {
	flowProperty := func(mean float64, description string) map[string]interface{} {
		return map[string]interface{}{
			"meanValue": mean,
			"referenceToFlowPropertyDataSet": map[string]interface{}{
				"shortDescription": []interface{}{localized("en", description)},
			},
		}
	}
	flowData := map[string]interface{}{
		"flowProperties": map[string]interface{}{
			"flowProperty": []interface{}{
				flowProperty(2400, "Mass"),
				flowProperty(1, "Volume"),
			},
		},
	}

	if got := getFunctionalUnit(flowData); got != "m3" {
		t.Fatalf("getFunctionalUnit = %q, expected the reference property mapped to m3", got)
	}

	flowData = map[string]interface{}{
		"flowProperties": map[string]interface{}{
			"flowProperty": []interface{}{flowProperty(1, "Gross calorific value")},
		},
	}
	if got := getFunctionalUnit(flowData); got != "Gross calorific value" {
		t.Fatalf("getFunctionalUnit = %q, expected the raw description kept", got)
	}

	if got := getFunctionalUnit(map[string]interface{}{}); got != "" {
		t.Fatalf("getFunctionalUnit = %q, expected empty without a reference property", got)
	}
}

func TestGetFunctionalUnitConversions(t *testing.T) {
	flowData := map[string]interface{}{
		"flowInformation": map[string]interface{}{
			"dataSetInformation": map[string]interface{}{
				"other": map[string]interface{}{
					"anies": []interface{}{
						map[string]interface{}{
							"Material": []interface{}{
								map[string]interface{}{
									"BulkDetails": map[string]interface{}{
										"PropertyData": []interface{}{
											map[string]interface{}{
												"property": "grossDensity",
												"Data":     map[string]interface{}{"value": "2400"},
											},
											map[string]interface{}{
												"property": "unmapped",
												"Data":     map[string]interface{}{"value": "n/a"},
											},
										},
									},
								},
							},
							"Metadata": map[string]interface{}{
								"PropertyDetails": []interface{}{
									map[string]interface{}{
										"id":    "grossDensity",
										"Units": map[string]interface{}{"name": "kg/m3"},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	conversions := getFunctionalUnitConversions(flowData)
	if len(conversions) != 1 {
		t.Fatalf("conversions = %v, expected 1", conversions)
	}
	if conversions[0].TargetUnit != "kg/m3" || conversions[0].Factor != 2400 {
		t.Fatalf("conversion = %+v", conversions[0])
	}
}

func TestParseEpdRequiresUUID(t *testing.T) {
	document := map[string]interface{}{
		"processInformation": map[string]interface{}{
			"dataSetInformation": map[string]interface{}{
				"name": map[string]interface{}{
					"baseName": []interface{}{localized("en", "Concrete")},
				},
			},
		},
	}

	_, err := ParseEpd(document, &AdditionalData{})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ParseEpd without UUID = %v, expected a parse error", err)
	}
}

func TestParseEpdNormalizesDocument(t *testing.T) {
	document := map[string]interface{}{
		"processInformation": map[string]interface{}{
			"dataSetInformation": map[string]interface{}{
				"UUID": "uuid-1",
				"name": map[string]interface{}{
					"baseName": []interface{}{localized("en", "Concrete C25")},
				},
				"classificationInformation": map[string]interface{}{
					"classification": []interface{}{
						map[string]interface{}{
							"class": []interface{}{
								map[string]interface{}{"value": "Mineral building products"},
							},
						},
					},
				},
			},
			"geography": map[string]interface{}{
				"locationOfOperationSupplyOrProduction": map[string]interface{}{"location": "DE"},
			},
			"time": map[string]interface{}{
				"referenceYear":     2020.0,
				"dataSetValidUntil": 2025.0,
			},
		},
		"administrativeInformation": map[string]interface{}{
			"publicationAndOwnership": map[string]interface{}{
				"dataSetVersion": "00.01.000",
				"referenceToOwnershipOfDataSet": map[string]interface{}{
					"shortDescription": []interface{}{localized("en", "Concrete GmbH")},
				},
			},
		},
		"LCIAResults": map[string]interface{}{
			"LCIAResult": []interface{}{
				lciaResult("Global warming potential", "a1a3", 320),
			},
		},
	}

	epd, err := ParseEpd(document, &AdditionalData{Source: "Okobau", Type: "specific dataset"})
	if err != nil {
		t.Fatalf("ParseEpd: %v", err)
	}
	if epd.OriginId == nil || *epd.OriginId != "uuid-1" {
		t.Fatalf("origin id = %v", epd.OriginId)
	}
	if epd.Name != "Concrete C25" || epd.Category != "Mineral building products" {
		t.Fatalf("name/category = %q/%q", epd.Name, epd.Category)
	}
	if epd.Version != "00.01.000" {
		t.Fatalf("version = %q", epd.Version)
	}
	if epd.Region != "DE" || epd.Owner != "Concrete GmbH" {
		t.Fatalf("region/owner = %q/%q", epd.Region, epd.Owner)
	}
	if epd.Subtype != models.SubTypeSpecific {
		t.Fatalf("subtype = %s", epd.Subtype)
	}
	if epd.Gwp["a1a3"] != 320 {
		t.Fatalf("gwp = %v", epd.Gwp)
	}
	if epd.PublishedDate.Year() != 2020 || epd.ExpirationDate.Year() != 2025 {
		t.Fatalf("dates = %v / %v", epd.PublishedDate, epd.ExpirationDate)
	}
	if epd.DeclaredUnit != models.UnitUnknown {
		t.Fatalf("declared unit = %s, expected UNKNOWN without flow data", epd.DeclaredUnit)
	}
}

func TestWithFormat(t *testing.T) {
	if got := withFormat("https://x.test/processes/1", "json"); got != "https://x.test/processes/1?format=json" {
		t.Fatalf("withFormat = %q", got)
	}
	if got := withFormat("https://x.test/processes/1?version=2", "json"); got != "https://x.test/processes/1?version=2&format=json" {
		t.Fatalf("withFormat with query = %q", got)
	}
}

// A flow fetch error must not fail the dataset; conversions are optional.
func TestGetFlowDatasetSoftFailsOnFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	document := map[string]interface{}{
		"exchanges": map[string]interface{}{
			"exchange": []interface{}{
				map[string]interface{}{
					"referenceToFlowDataSet": map[string]interface{}{
						"refObjectId": "flow-1",
						"version":     "00.01.000",
					},
				},
			},
		},
	}

	flow := NewImporter().getFlowDataset(context.Background(), document, server.URL)
	if len(flow) != 0 {
		t.Fatalf("flow = %v, expected empty on fetch error", flow)
	}
}

func TestGetFlowDatasetWithoutReferenceFlow(t *testing.T) {
	flow := NewImporter().getFlowDataset(context.Background(), map[string]interface{}{}, "http://unused.invalid")
	if len(flow) != 0 {
		t.Fatalf("flow = %v, expected empty without a reference exchange", flow)
	}
}
