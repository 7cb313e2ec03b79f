package importdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/lcadata/assembly_backend/config"
)

const OkobauURL = "https://oekobaudat.de/OEKOBAU.DAT/resource/datastocks/cd2bda71-760b-4fcc-8a0b-3877c10000a8"

// Candidate is one listing entry from a registry search endpoint.
type Candidate struct {
	Uid      string
	Name     string
	Version  string
	Location string
	Type     string
	Owner    string
	Uri      string
}

func candidateFromListing(entry map[string]interface{}) Candidate {
	return Candidate{
		Uid:      asString(entry["uuid"]),
		Name:     asString(entry["name"]),
		Version:  asString(entry["version"]),
		Location: asString(entry["geo"]),
		Type:     asString(entry["subType"]),
		Owner:    asString(entry["owner"]),
		Uri:      asString(entry["uri"]),
	}
}

// GetOkobauCount asks the registry for its total number of processes.
func (imp *Importer) GetOkobauCount(ctx context.Context) (int, error) {
	data, err := imp.getJSON(ctx, fmt.Sprintf("%s/processes?countOnly=true&format=json", OkobauURL))
	if err != nil {
		return 0, err
	}
	count, ok := asFloat(data["totalCount"])
	if !ok {
		return 0, errors.New("okobau count response has no totalCount")
	}
	return int(count), nil
}

// GetOkobauCandidates lists up to count candidate records.
func (imp *Importer) GetOkobauCandidates(ctx context.Context, count int) ([]Candidate, error) {
	data, err := imp.getJSON(ctx, fmt.Sprintf("%s/processes?format=json&pageSize=%d", OkobauURL, count))
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0)
	for _, raw := range asSlice(data["data"]) {
		candidates = append(candidates, candidateFromListing(asMap(raw)))
	}
	return candidates, nil
}

// ImportOkobau harvests EPDs from the Ökobau registry. limit < 0 fetches
// everything the registry reports. Per-record failures are logged and
// skipped; the run continues with the next candidate.
func (imp *Importer) ImportOkobau(ctx context.Context, limit int) error {

	logger := config.GetLogger()
	logger.Info("importing Ökobau EPDs")

	total, err := imp.GetOkobauCount(ctx)
	if err != nil {
		return err
	}
	if limit < 0 || limit > total {
		limit = total
	}
	logger.Infof("there are %d EPDs in the Ökobau database, fetching %d", total, limit)

	candidates, err := imp.GetOkobauCandidates(ctx, limit)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		url := fmt.Sprintf("%s/processes/%s?version=%s", OkobauURL, candidate.Uid, candidate.Version)
		additional := &AdditionalData{
			Source:   "Ökobau",
			Name:     candidate.Name,
			Version:  candidate.Version,
			Location: candidate.Location,
			Type:     candidate.Type,
			Owner:    candidate.Owner,
		}
		if err := imp.GetAndSaveEpd(ctx, url, additional, OkobauURL); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			config.LogError(logger, "importdata", "ImportOkobau", "skipping record", candidate.Uid, err)
		}
	}

	logger.Info("done processing Ökobau data")
	return nil
}
