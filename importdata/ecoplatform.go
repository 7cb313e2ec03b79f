package importdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/lcadata/assembly_backend/config"
)

const EcoPlatformURL = "https://data.eco-platform.org/resource"

const ecoPlatformPageSize = 500

type ecoPlatformPage struct {
	Candidates []Candidate
	Total      int
}

// getEcoPlatformPage lists one page of candidates, bearer authenticated.
func (imp *Importer) getEcoPlatformPage(ctx context.Context, token string, startIndex int, count int) (*ecoPlatformPage, error) {

	url := fmt.Sprintf(
		"%s/processes?search=true&distributed=true&virtual=true&metaDataOnly=false&format=json&startIndex=%d&pageSize=%d",
		EcoPlatformURL, startIndex, count)

	data, err := imp.getJSONWithAuth(ctx, url, token)
	if err != nil {
		return nil, err
	}

	page := &ecoPlatformPage{}
	if total, ok := asFloat(data["totalCount"]); ok {
		page.Total = int(total)
	}
	for _, raw := range asSlice(data["data"]) {
		page.Candidates = append(page.Candidates, candidateFromListing(asMap(raw)))
	}
	return page, nil
}

func (imp *Importer) getJSONWithAuth(ctx context.Context, url string, token string) (map[string]interface{}, error) {
	if token == "" {
		return imp.getJSON(ctx, url)
	}
	return imp.getJSONWithHeader(ctx, url, "Authorization", "Bearer "+token)
}

// ImportEcoPlatform harvests EPDs from the ECO Platform registry, paging
// through the distributed search endpoint. limit < 0 fetches everything.
func (imp *Importer) ImportEcoPlatform(ctx context.Context, token string, limit int) error {

	logger := config.GetLogger()
	logger.Info("importing ECO Platform EPDs")

	startIndex := 0
	remaining := limit
	for {
		pageSize := ecoPlatformPageSize
		if remaining >= 0 && remaining < pageSize {
			pageSize = remaining
		}
		if pageSize == 0 {
			break
		}

		page, err := imp.getEcoPlatformPage(ctx, token, startIndex, pageSize)
		if err != nil {
			return err
		}
		if len(page.Candidates) == 0 {
			break
		}
		logger.Infof("there are %d EPDs in the ECO Platform database, fetching %d:%d",
			page.Total, startIndex, startIndex+len(page.Candidates))

		for _, candidate := range page.Candidates {
			if candidate.Uri == "" {
				config.LogError(logger, "importdata", "ImportEcoPlatform", "candidate has no uri", candidate.Uid, fmt.Errorf("missing uri"))
				continue
			}
			baseURL := strings.SplitN(candidate.Uri, "/processes", 2)[0]
			additional := &AdditionalData{
				Source:   "ECOPlatform",
				Name:     candidate.Name,
				Version:  candidate.Version,
				Location: candidate.Location,
				Type:     candidate.Type,
				Owner:    candidate.Owner,
			}
			if err := imp.GetAndSaveEpd(ctx, candidate.Uri, additional, baseURL); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				config.LogError(logger, "importdata", "ImportEcoPlatform", "skipping record", candidate.Uid, err)
			}
		}

		startIndex += len(page.Candidates)
		if remaining >= 0 {
			remaining -= len(page.Candidates)
			if remaining <= 0 {
				break
			}
		}
		if startIndex >= page.Total {
			break
		}
	}

	logger.Info("done processing ECO Platform data")
	return nil
}
