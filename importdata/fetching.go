package importdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/datatypes"
)

// ParseError means a registry document lacks a required field. The record is
// logged and skipped; ingestion continues with the next candidate.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// unitNameMap translates the localized flow-property descriptions registries
// use into unit codes.
var unitNameMap = map[string]string{
	"Volume":           "m3",
	"Mass":             "kg",
	"Area":             "m2",
	"Number of pieces": "pcs",
	"Length":           "m",
	"Volumen":          "m3",
	"Fläche":           "m2",
	"Gewicht":          "kg",
	"Quadratmeter":     "m2",
	"Stück":            "pcs",
}

// AdditionalData carries the listing-level fields a registry reports next to
// the dataset url. Non-empty values override what the dataset document says.
type AdditionalData struct {
	Source     string
	SourceData string
	Name       string
	Version    string
	Location   string
	Type       string
	Owner      string
	Flow       map[string]interface{}
}

/* untyped JSON traversal */

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func dig(data map[string]interface{}, keys ...string) interface{} {
	var current interface{} = data
	for _, key := range keys {
		m := asMap(current)
		if m == nil {
			return nil
		}
		current = m[key]
	}
	return current
}

func asFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case json.Number:
		f, err := value.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(value, 64)
		return f, err == nil
	}
	return 0, false
}

// localizedEnglish scans localized entries for the English value, falling
// back to the last non-English entry seen.
func localizedEnglish(entries []interface{}) string {
	var fallback string
	for _, raw := range entries {
		entry := asMap(raw)
		if asString(entry["lang"]) == "en" {
			return asString(entry["value"])
		}
		fallback = asString(entry["value"])
	}
	return fallback
}

func getEpdName(datasetInformation map[string]interface{}, additional *AdditionalData) (string, error) {
	if additional.Name != "" {
		return additional.Name, nil
	}

	name := localizedEnglish(asSlice(dig(datasetInformation, "name", "baseName")))
	if name == "" {
		raw, _ := json.Marshal(datasetInformation)
		return "", &ParseError{Message: fmt.Sprintf("could not find name for EPD with name data: %s", raw)}
	}
	return name, nil
}

func getDatasetCategory(datasetInformation map[string]interface{}) string {
	classifications := asSlice(dig(datasetInformation, "classificationInformation", "classification"))
	if len(classifications) == 0 {
		return "Unknown"
	}
	classes := asSlice(asMap(classifications[0])["class"])
	if len(classes) == 0 {
		return "Unknown"
	}
	if value := asString(asMap(classes[0])["value"]); value != "" {
		return value
	}
	return "Unknown"
}

func getVersion(document map[string]interface{}, additional *AdditionalData) string {
	if additional.Version != "" {
		return additional.Version
	}
	return asString(dig(document, "administrativeInformation", "publicationAndOwnership", "dataSetVersion"))
}

func getLocation(geography map[string]interface{}, additional *AdditionalData) string {
	if additional.Location != "" {
		return additional.Location
	}
	if location := asString(dig(geography, "locationOfOperationSupplyOrProduction", "location")); location != "" {
		return location
	}
	return "Unknown"
}

func getOwner(administrativeInformation map[string]interface{}, additional *AdditionalData) string {
	if additional.Owner != "" {
		return additional.Owner
	}
	return localizedEnglish(asSlice(dig(administrativeInformation,
		"publicationAndOwnership", "referenceToOwnershipOfDataSet", "shortDescription")))
}

// getIndicatorByPhase reads the per-module values nested under other/anies.
// Entries without a module code or with an unparseable value are skipped.
func getIndicatorByPhase(entry map[string]interface{}) models.Phases {
	phases := models.Phases{}
	for _, raw := range asSlice(dig(entry, "other", "anies")) {
		item := asMap(raw)
		module := asString(item["module"])
		if module == "" {
			continue
		}
		if value, ok := asFloat(item["value"]); ok {
			phases[module] = value
		}
	}
	return phases
}

// getImpactCategories classifies each LCIA result by the keyword prefix of
// its English method description.
func getImpactCategories(document map[string]interface{}) (gwp, odp, ap, ep, pocp models.Phases) {
	gwp, odp, ap, ep, pocp = models.Phases{}, models.Phases{}, models.Phases{}, models.Phases{}, models.Phases{}

	for _, raw := range asSlice(dig(document, "LCIAResults", "LCIAResult")) {
		entry := asMap(raw)
		for _, descriptionRaw := range asSlice(dig(entry, "referenceToLCIAMethodDataSet", "shortDescription")) {
			description := asMap(descriptionRaw)
			if asString(description["lang"]) != "en" {
				continue
			}
			value := asString(description["value"])
			switch {
			case strings.HasPrefix(value, "Global"):
				gwp = getIndicatorByPhase(entry)
			case strings.HasPrefix(value, "Ozone"):
				odp = getIndicatorByPhase(entry)
			case strings.HasPrefix(value, "Acidification"):
				ap = getIndicatorByPhase(entry)
			case strings.HasPrefix(value, "Eutrophication"):
				ep = getIndicatorByPhase(entry)
			case strings.HasPrefix(value, "Photochemical"):
				pocp = getIndicatorByPhase(entry)
			}
		}
	}
	return
}

// getEnergyIndicators pulls the primary energy exchanges, matched by the
// PERE/PENRE substrings of their English descriptions.
func getEnergyIndicators(document map[string]interface{}) (pere, penre models.Phases) {
	pere, penre = models.Phases{}, models.Phases{}

	for _, raw := range asSlice(dig(document, "exchanges", "exchange")) {
		entry := asMap(raw)
		for _, descriptionRaw := range asSlice(dig(entry, "referenceToLCIAMethodDataSet", "shortDescription")) {
			description := asMap(descriptionRaw)
			if asString(description["lang"]) != "en" {
				continue
			}
			value := asString(description["value"])
			if strings.Contains(value, "PENRE") {
				penre = getIndicatorByPhase(entry)
			} else if strings.Contains(value, "PERE") {
				pere = getIndicatorByPhase(entry)
			}
		}
	}
	return
}

func yearDate(v interface{}) time.Time {
	if year, ok := asFloat(v); ok && year > 0 {
		return time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// getFunctionalUnit finds the reference flow property (meanValue == 1) and
// maps its description through unitNameMap, keeping the raw text when the
// description is unrecognized.
func getFunctionalUnit(flowData map[string]interface{}) string {
	for _, raw := range asSlice(dig(flowData, "flowProperties", "flowProperty")) {
		property := asMap(raw)
		if mean, ok := asFloat(property["meanValue"]); !ok || mean != 1 {
			continue
		}
		unit := localizedEnglish(asSlice(dig(property, "referenceToFlowPropertyDataSet", "shortDescription")))
		if mapped, ok := unitNameMap[unit]; ok {
			return mapped
		}
		return unit
	}
	return ""
}

// getFunctionalUnitConversions scans the material property structures nested
// in the flow dataset, pairing each property id with its declared unit name
// and numeric value. Non-numeric values are dropped.
func getFunctionalUnitConversions(flowData map[string]interface{}) []models.Conversion {
	conversions := []models.Conversion{}

	for _, informationRaw := range asSlice(dig(flowData, "flowInformation", "dataSetInformation", "other", "anies")) {
		information := asMap(informationRaw)
		for _, materialRaw := range asSlice(information["Material"]) {
			material := asMap(materialRaw)
			for _, propertyRaw := range asSlice(dig(material, "BulkDetails", "PropertyData")) {
				propertyData := asMap(propertyRaw)
				value, ok := asFloat(dig(propertyData, "Data", "value"))
				if !ok {
					continue
				}
				propertyId := asString(propertyData["property"])
				if propertyId == "" {
					continue
				}
				for _, detailRaw := range asSlice(dig(information, "Metadata", "PropertyDetails")) {
					detail := asMap(detailRaw)
					if asString(detail["id"]) != propertyId {
						continue
					}
					if unitName := asString(dig(detail, "Units", "name")); unitName != "" {
						conversions = append(conversions, models.Conversion{
							TargetUnit: unitName,
							Factor:     value,
						})
					}
				}
			}
		}
	}
	return conversions
}

// ParseEpd normalizes one ILCD process dataset plus its listing-level
// overrides into the canonical EPD shape.
func ParseEpd(document map[string]interface{}, additional *AdditionalData) (*models.EPD, error) {

	datasetInformation := asMap(dig(document, "processInformation", "dataSetInformation"))
	name, err := getEpdName(datasetInformation, additional)
	if err != nil {
		return nil, err
	}
	originId := asString(datasetInformation["UUID"])
	if originId == "" {
		return nil, &ParseError{Message: fmt.Sprintf("could not find UUID for EPD %s", name)}
	}

	gwp, odp, ap, ep, pocp := getImpactCategories(document)
	pere, penre := getEnergyIndicators(document)

	timeInformation := asMap(dig(document, "processInformation", "time"))

	return &models.EPD{
		OriginId:       &originId,
		Name:           name,
		Category:       getDatasetCategory(datasetInformation),
		Version:        getVersion(document, additional),
		Source:         additional.Source,
		SourceData:     additional.SourceData,
		Subtype:        models.SubTypeFromILCD(additional.Type),
		Owner:          getOwner(asMap(document["administrativeInformation"]), additional),
		Region:         getLocation(asMap(dig(document, "processInformation", "geography")), additional),
		DeclaredUnit:   models.UnitFromILCD(getFunctionalUnit(additional.Flow)),
		Conversions:    datatypes.NewJSONSlice(getFunctionalUnitConversions(additional.Flow)),
		ExpirationDate: yearDate(timeInformation["dataSetValidUntil"]),
		PublishedDate:  yearDate(timeInformation["referenceYear"]),
		Gwp:            gwp,
		Odp:            odp,
		Ap:             ap,
		Ep:             ep,
		Pocp:           pocp,
		Penre:          penre,
		Pere:           pere,
	}, nil
}

// Importer fetches registry documents and persists normalized EPDs.
type Importer struct {
	httpClient *http.Client
}

func NewImporter() *Importer {
	return &Importer{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

const fetchAttempts = 3

// getJSON fetches a JSON document with bounded retry on network errors.
// Parse failures are not retried; a fresh fetch cannot fix a bad document.
func (imp *Importer) getJSON(ctx context.Context, url string) (map[string]interface{}, error) {
	return imp.getJSONWithHeader(ctx, url, "", "")
}

func (imp *Importer) getJSONWithHeader(ctx context.Context, url string, headerKey string, headerValue string) (map[string]interface{}, error) {

	var lastErr error
	backoff := time.Second
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if headerKey != "" {
			req.Header.Set(headerKey, headerValue)
		}

		resp, err := imp.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
			continue
		}

		var document map[string]interface{}
		if err := json.Unmarshal(body, &document); err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("fetch %s: %v", url, err)}
		}
		return document, nil
	}
	return nil, lastErr
}

func withFormat(url string, format string) string {
	if strings.Contains(url, "?") {
		return url + "&format=" + format
	}
	return url + "?format=" + format
}

// getFlowDataset resolves the dataset's reference flow and fetches it. An
// HTTP error on the flow fetch soft-fails to an empty document; the EPD is
// still worth keeping without its conversions.
func (imp *Importer) getFlowDataset(ctx context.Context, document map[string]interface{}, baseURL string) map[string]interface{} {

	var uid, version string
	for _, raw := range asSlice(dig(document, "exchanges", "exchange")) {
		exchange := asMap(raw)
		if exchange["other"] != nil {
			continue
		}
		uid = asString(dig(exchange, "referenceToFlowDataSet", "refObjectId"))
		version = asString(dig(exchange, "referenceToFlowDataSet", "version"))
		break
	}
	if uid == "" {
		return map[string]interface{}{}
	}

	flowURL := fmt.Sprintf("%s/flows/%s", baseURL, uid)
	if version != "" {
		flowURL += "?version=" + version
	}
	flow, err := imp.getJSON(ctx, withFormat(flowURL, "json"))
	if err != nil {
		return map[string]interface{}{}
	}
	return flow
}

// GetAndSaveEpd fetches one process dataset, normalizes it and upserts the
// result by (origin_id, version).
func (imp *Importer) GetAndSaveEpd(ctx context.Context, url string, additional *AdditionalData, baseURL string) error {

	logger := config.GetLogger()
	logger.Infof("fetching %s", url)

	document, err := imp.getJSON(ctx, withFormat(url, "json"))
	if err != nil {
		return err
	}
	if len(document) == 0 {
		return nil
	}

	additional.Flow = imp.getFlowDataset(ctx, document, baseURL)
	additional.SourceData = withFormat(url, "html")

	epd, err := ParseEpd(document, additional)
	if err != nil {
		return err
	}

	created, err := models.UpsertImportedEpd(ctx, config.GetDB(), epd)
	if err != nil {
		return err
	}
	if created {
		logger.Infof("saved epd %s (%s, version %s)", epd.ID, epd.Name, epd.Version)
	} else {
		logger.Infof("updated existing epd %s (origin %s, version %s)", epd.ID, *epd.OriginId, epd.Version)
	}
	return nil
}
