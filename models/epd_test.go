package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
)

func TestAddEpdsRejectsDuplicateOriginVersion(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	origin := "uuid-1"
	inputs := []*models.NewEpd{
		{Name: "Concrete", Version: "1.0", DeclaredUnit: models.UnitM3, OriginId: &origin},
		{Name: "Concrete again", Version: "1.0", DeclaredUnit: models.UnitM3, OriginId: &origin},
	}

	_, err := models.AddEpds(ctx, inputs)
	if !errors.Is(err, utils.ErrorDuplicateOriginVersion) {
		t.Fatalf("AddEpds error = %v, expected duplicate origin/version", err)
	}

	// the whole batch rolls back
	var count int64
	if err := config.GetDB().Model(&models.EPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("epd count = %d after failed batch, expected 0", count)
	}
}

func TestAddEpdsAllowsSameOriginDifferentVersion(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	origin := "uuid-1"
	inputs := []*models.NewEpd{
		{Name: "Concrete", Version: "1.0", DeclaredUnit: models.UnitM3, OriginId: &origin},
		{Name: "Concrete", Version: "2.0", DeclaredUnit: models.UnitM3, OriginId: &origin},
	}

	epds, err := models.AddEpds(ctx, inputs)
	if err != nil {
		t.Fatalf("AddEpds: %v", err)
	}
	if len(epds) != 2 {
		t.Fatalf("AddEpds returned %d epds, expected 2", len(epds))
	}
}

func TestAddEpdsValidatesRequiredFields(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	_, err := models.AddEpds(ctx, []*models.NewEpd{{Version: "1.0", DeclaredUnit: models.UnitKg}})
	if err == nil {
		t.Fatalf("AddEpds accepted an epd without a name")
	}
}

func TestUpsertImportedEpdRefreshesExistingRow(t *testing.T) {
	setupDB(t)
	ctx := context.Background()
	db := config.GetDB()

	origin := "uuid-import"
	first := &models.EPD{
		OriginId:     &origin,
		Version:      "1.0",
		Name:         "Old name",
		DeclaredUnit: models.UnitKg,
		Gwp:          models.Phases{"a1a3": 1},
	}
	created, err := models.UpsertImportedEpd(ctx, db, first)
	if err != nil {
		t.Fatalf("UpsertImportedEpd: %v", err)
	}
	if !created {
		t.Fatalf("first upsert did not create a row")
	}

	second := &models.EPD{
		OriginId:     &origin,
		Version:      "1.0",
		Name:         "New name",
		DeclaredUnit: models.UnitM3,
		Gwp:          models.Phases{"a1a3": 2},
	}
	created, err = models.UpsertImportedEpd(ctx, db, second)
	if err != nil {
		t.Fatalf("UpsertImportedEpd (again): %v", err)
	}
	if created {
		t.Fatalf("second upsert created a new row")
	}
	if second.ID != first.ID {
		t.Fatalf("second upsert got id %s, expected %s", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&models.EPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("epd count = %d, expected 1", count)
	}

	var stored models.EPD
	if err := db.First(&stored, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stored.Name != "New name" {
		t.Fatalf("name = %q, expected refreshed name", stored.Name)
	}
	if stored.Gwp["a1a3"] != 2 {
		t.Fatalf("gwp a1a3 = %v, expected 2", stored.Gwp["a1a3"])
	}
	// the declared unit is not part of what a re-export may change
	if stored.DeclaredUnit != models.UnitKg {
		t.Fatalf("declared unit = %s, expected KG", stored.DeclaredUnit)
	}
}

func TestUpsertImportedEpdRequiresOriginId(t *testing.T) {
	setupDB(t)

	_, err := models.UpsertImportedEpd(context.Background(), config.GetDB(), &models.EPD{
		Name: "No origin", Version: "1.0", DeclaredUnit: models.UnitKg,
	})
	if err == nil {
		t.Fatalf("UpsertImportedEpd accepted an epd without an origin id")
	}
}

func TestPaginateEpdsPagesWithCursor(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	for _, id := range []string{"epd-a", "epd-b", "epd-c"} {
		epd := &models.EPD{ID: id, Name: "EPD " + id, Version: "1.0", DeclaredUnit: models.UnitKg}
		if err := config.GetDB().Create(epd).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	page, err := models.PaginateEpds(ctx, 2, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("PaginateEpds: %v", err)
	}
	if page.TotalCount != 3 {
		t.Fatalf("totalCount = %d, expected 3", page.TotalCount)
	}
	if len(page.Edges) != 2 {
		t.Fatalf("first page has %d edges, expected 2", len(page.Edges))
	}
	if page.Edges[0].Node.ID != "epd-a" || page.Edges[1].Node.ID != "epd-b" {
		t.Fatalf("first page ids = %s, %s", page.Edges[0].Node.ID, page.Edges[1].Node.ID)
	}
	if page.PageInfo.HasNextPage == nil || !*page.PageInfo.HasNextPage {
		t.Fatalf("first page hasNextPage = %v, expected true", page.PageInfo.HasNextPage)
	}

	after := page.PageInfo.EndCursor
	page, err = models.PaginateEpds(ctx, 2, &after, nil, nil, nil)
	if err != nil {
		t.Fatalf("PaginateEpds (second page): %v", err)
	}
	if len(page.Edges) != 1 || page.Edges[0].Node.ID != "epd-c" {
		t.Fatalf("second page = %d edges, expected just epd-c", len(page.Edges))
	}
	if page.PageInfo.HasNextPage == nil || *page.PageInfo.HasNextPage {
		t.Fatalf("second page hasNextPage = %v, expected false", page.PageInfo.HasNextPage)
	}
}

func TestPaginateEpdsSortsByNonUniqueColumn(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	names := map[string]string{"epd-1": "Brick", "epd-2": "Brick", "epd-3": "Aerated concrete"}
	for id, name := range names {
		epd := &models.EPD{ID: id, Name: name, Version: "1.0", DeclaredUnit: models.UnitKg}
		if err := config.GetDB().Create(epd).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	sortBy := "name"
	page, err := models.PaginateEpds(ctx, 2, nil, nil, &sortBy, nil)
	if err != nil {
		t.Fatalf("PaginateEpds: %v", err)
	}
	if page.Edges[0].Node.ID != "epd-3" {
		t.Fatalf("first node = %s, expected the aerated concrete epd", page.Edges[0].Node.ID)
	}

	after := page.PageInfo.EndCursor
	page, err = models.PaginateEpds(ctx, 2, &after, nil, &sortBy, nil)
	if err != nil {
		t.Fatalf("PaginateEpds (second page): %v", err)
	}
	// the duplicate sort value must not repeat or skip across the page break
	if len(page.Edges) != 1 || page.Edges[0].Node.ID != "epd-2" {
		t.Fatalf("second page = %+v, expected just epd-2", page.Edges)
	}
}

// A projection that selects neither the id nor the sort column must not
// break the cursor; the page window always fetches both.
func TestPaginateEpdsProjectionKeepsCursorColumns(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	for _, id := range []string{"epd-a", "epd-b", "epd-c"} {
		epd := &models.EPD{ID: id, Name: "EPD " + id, Version: "1.0", DeclaredUnit: models.UnitKg}
		if err := config.GetDB().Create(epd).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	page, err := models.PaginateEpds(ctx, 2, nil, nil, nil, []string{"name"})
	if err != nil {
		t.Fatalf("PaginateEpds: %v", err)
	}
	if len(page.Edges) != 2 {
		t.Fatalf("first page has %d edges, expected 2", len(page.Edges))
	}
	if page.Edges[0].Cursor == page.Edges[1].Cursor {
		t.Fatalf("both cursors are %q, expected distinct cursors under projection", page.Edges[0].Cursor)
	}

	after := page.PageInfo.EndCursor
	page, err = models.PaginateEpds(ctx, 2, &after, nil, nil, []string{"name"})
	if err != nil {
		t.Fatalf("PaginateEpds (second page): %v", err)
	}
	if len(page.Edges) != 1 || page.Edges[0].Node.Name != "EPD epd-c" {
		t.Fatalf("second page = %+v, expected just the last epd", page.Edges)
	}
	if page.PageInfo.HasNextPage == nil || *page.PageInfo.HasNextPage {
		t.Fatalf("second page hasNextPage = %v, expected false", page.PageInfo.HasNextPage)
	}
}

func TestPaginateEpdsRejectsUnknownSortColumn(t *testing.T) {
	setupDB(t)

	sortBy := "gwp; DROP TABLE epds"
	if _, err := models.PaginateEpds(context.Background(), 2, nil, nil, &sortBy, nil); err == nil {
		t.Fatalf("PaginateEpds accepted an unknown sort column")
	}
}

func TestPaginateEpdsFilters(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	seedEpd(t, "Concrete C25", "", "1.0", nil)
	seedEpd(t, "Timber frame", "", "1.0", nil)

	filters := &models.EpdFilters{Name: &models.FilterOptions{Contains: utils.Ptr("Conc")}}
	page, err := models.PaginateEpds(ctx, 10, nil, filters, nil, nil)
	if err != nil {
		t.Fatalf("PaginateEpds: %v", err)
	}
	if page.TotalCount != 1 || len(page.Edges) != 1 {
		t.Fatalf("filtered page = %d edges (total %d), expected 1", len(page.Edges), page.TotalCount)
	}
	if page.Edges[0].Node.Name != "Concrete C25" {
		t.Fatalf("filtered node = %q", page.Edges[0].Node.Name)
	}
}

func TestDeleteEpdsMissingIdFailsBatch(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)

	_, err := models.DeleteEpds(ctx, []string{epd.ID, "missing"})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("DeleteEpds error = %v, expected record not found", err)
	}

	var count int64
	if err := config.GetDB().Model(&models.EPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("epd count = %d after failed delete, expected 1", count)
	}
}
