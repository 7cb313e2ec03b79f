package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
)

func TestAddProjectEpdsForksWithoutLiveSync(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "uuid-1", "1.0", models.Phases{"a1a3": 10})

	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}
	if len(forks) != 1 {
		t.Fatalf("AddProjectEpds returned %d forks, expected 1", len(forks))
	}
	fork := forks[0]
	if fork.OriginId != epd.ID || fork.ProjectId != "proj-1" {
		t.Fatalf("fork origin = %s project = %s", fork.OriginId, fork.ProjectId)
	}
	if fork.Name != epd.Name || fork.Version != epd.Version || fork.Gwp["a1a3"] != 10 {
		t.Fatalf("fork did not copy origin fields: %+v", fork)
	}

	// edits to the origin do not propagate to the fork
	if err := config.GetDB().Model(epd).Update("name", "Renamed").Error; err != nil {
		t.Fatalf("update origin: %v", err)
	}
	stored, err := models.GetProjectEpd(ctx, "proj-1", fork.ID)
	if err != nil {
		t.Fatalf("GetProjectEpd: %v", err)
	}
	if stored.Name != "Concrete" {
		t.Fatalf("fork name = %q after origin edit, expected unchanged", stored.Name)
	}
}

func TestAddProjectEpdsMissingIdFailsBatch(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)

	_, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID, "missing"})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("AddProjectEpds error = %v, expected record not found", err)
	}

	var count int64
	if err := config.GetDB().Model(&models.ProjectEPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("fork count = %d after failed batch, expected 0", count)
	}
}

func TestGetProjectEpdScopedToProject(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}

	if _, err := models.GetProjectEpd(ctx, "proj-2", forks[0].ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("cross-project lookup error = %v, expected record not found", err)
	}
}

func TestUpdateProjectEpdAppliesOnlyGivenFields(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}

	updated, err := models.UpdateProjectEpd(ctx, "proj-1", &models.UpdateProjectEpdInput{
		ID:      forks[0].ID,
		KgPerM3: utils.Ptr(2400.0),
	})
	if err != nil {
		t.Fatalf("UpdateProjectEpd: %v", err)
	}
	if updated.KgPerM3 == nil || *updated.KgPerM3 != 2400 {
		t.Fatalf("kgPerM3 = %v, expected 2400", updated.KgPerM3)
	}

	stored, err := models.GetProjectEpd(ctx, "proj-1", forks[0].ID)
	if err != nil {
		t.Fatalf("GetProjectEpd: %v", err)
	}
	if stored.Name != "Concrete" {
		t.Fatalf("name = %q after partial update, expected unchanged", stored.Name)
	}
	if stored.KgPerM3 == nil || *stored.KgPerM3 != 2400 {
		t.Fatalf("stored kgPerM3 = %v, expected 2400", stored.KgPerM3)
	}
}

func TestGetProjectEpdsFiltered(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	a := seedEpd(t, "Concrete", "", "1.0", nil)
	b := seedEpd(t, "Timber", "", "1.0", nil)
	if _, err := models.AddProjectEpds(ctx, "proj-1", []string{a.ID, b.ID}); err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}
	if _, err := models.AddProjectEpds(ctx, "proj-2", []string{a.ID}); err != nil {
		t.Fatalf("AddProjectEpds (other project): %v", err)
	}

	all, err := models.GetProjectEpds(ctx, "proj-1", nil, nil)
	if err != nil {
		t.Fatalf("GetProjectEpds: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("project has %d forks, expected 2", len(all))
	}

	filters := &models.EpdFilters{Name: &models.FilterOptions{Equal: utils.Ptr("Timber")}}
	filtered, err := models.GetProjectEpds(ctx, "proj-1", filters, nil)
	if err != nil {
		t.Fatalf("GetProjectEpds (filtered): %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Timber" {
		t.Fatalf("filtered forks = %+v, expected just Timber", filtered)
	}
}
