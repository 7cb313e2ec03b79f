package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
)

func seedAssembly(t *testing.T, name string) *models.Assembly {
	t.Helper()
	assemblies, err := models.AddAssemblies(context.Background(), []*models.NewAssembly{
		{Name: name, Unit: models.UnitM2},
	})
	if err != nil {
		t.Fatalf("AddAssemblies: %v", err)
	}
	return assemblies[0]
}

func TestAddAssemblyLayersChecksReferences(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	assembly := seedAssembly(t, "Wall")
	epd := seedEpd(t, "Concrete", "", "1.0", nil)

	layers, err := models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{
		{EpdId: epd.ID, Name: "Core", ConversionFactor: utils.Ptr(2.0)},
	})
	if err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}
	if len(layers) != 1 || layers[0].ConversionFactor != 2 {
		t.Fatalf("layers = %+v", layers)
	}

	_, err = models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{
		{EpdId: "missing"},
	})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("AddAssemblyLayers with missing epd = %v, expected record not found", err)
	}
}

func TestDeleteAssemblyLayersScopedToAssembly(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	owner := seedAssembly(t, "Wall")
	other := seedAssembly(t, "Roof")
	epd := seedEpd(t, "Concrete", "", "1.0", nil)

	layers, err := models.AddAssemblyLayers(ctx, owner.ID, []*models.NewAssemblyLayer{{EpdId: epd.ID}})
	if err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}

	// a layer id under another assembly is not found, and the layer survives
	_, err = models.DeleteAssemblyLayers(ctx, other.ID, []string{layers[0].ID})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("cross-assembly delete = %v, expected record not found", err)
	}

	var count int64
	if err := config.GetDB().Model(&models.AssemblyEPDLink{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("layer count = %d, expected 1", count)
	}

	if _, err := models.DeleteAssemblyLayers(ctx, owner.ID, []string{layers[0].ID}); err != nil {
		t.Fatalf("DeleteAssemblyLayers: %v", err)
	}
}

func TestAddProjectAssemblyLayersRejectsCrossProjectEpd(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}

	assemblies, err := models.AddProjectAssemblies(ctx, []*models.NewProjectAssembly{
		{ProjectId: "proj-2", Name: "Wall", Unit: models.UnitM2},
	})
	if err != nil {
		t.Fatalf("AddProjectAssemblies: %v", err)
	}

	_, err = models.AddProjectAssemblyLayers(ctx, "proj-2", assemblies[0].ID, []*models.NewAssemblyLayer{
		{EpdId: forks[0].ID},
	})
	if !errors.Is(err, utils.ErrorProjectScopeMismatch) {
		t.Fatalf("cross-project layer = %v, expected project scope mismatch", err)
	}
}

func TestCloneSharesOneForkPerOriginEpd(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", models.Phases{"a1a3": 10})
	transport := seedEpd(t, "Lorry", "", "1.0", models.Phases{"a1a3": 0.1})
	assembly := seedAssembly(t, "Wall")

	// two layers referencing the same epd, one with a transport overlay
	_, err := models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{
		{EpdId: epd.ID, Name: "Inner leaf"},
		{EpdId: epd.ID, Name: "Outer leaf", TransportEpdId: &transport.ID, TransportDistance: utils.Ptr(50.0)},
	})
	if err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}

	clones, err := models.AddProjectAssembliesFromAssemblies(ctx, []string{assembly.ID}, "proj-1")
	if err != nil {
		t.Fatalf("AddProjectAssembliesFromAssemblies: %v", err)
	}
	if len(clones) != 1 {
		t.Fatalf("clones = %d, expected 1", len(clones))
	}
	clone := clones[0]
	if clone.OriginId == nil || *clone.OriginId != assembly.ID {
		t.Fatalf("clone origin = %v, expected %s", clone.OriginId, assembly.ID)
	}

	// one fork for the shared epd plus one for the transport epd
	var forks []models.ProjectEPD
	if err := config.GetDB().Where("project_id = ?", "proj-1").Find(&forks).Error; err != nil {
		t.Fatalf("fetch forks: %v", err)
	}
	if len(forks) != 2 {
		t.Fatalf("fork count = %d, expected 2", len(forks))
	}

	var layers []models.ProjectAssemblyEPDLink
	if err := config.GetDB().Where("assembly_id = ?", clone.ID).Order("name").Find(&layers).Error; err != nil {
		t.Fatalf("fetch layers: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("cloned layer count = %d, expected 2", len(layers))
	}
	if layers[0].EpdId != layers[1].EpdId {
		t.Fatalf("layers reference different forks for the same origin epd")
	}
	if layers[0].TransportEpdId != nil {
		t.Fatalf("inner leaf gained a transport epd")
	}
	if layers[1].TransportEpdId == nil {
		t.Fatalf("outer leaf lost its transport epd")
	}
}

func TestCloneReusesExistingProjectFork(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	assembly := seedAssembly(t, "Wall")
	if _, err := models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{{EpdId: epd.ID}}); err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}

	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}

	clones, err := models.AddProjectAssembliesFromAssemblies(ctx, []string{assembly.ID}, "proj-1")
	if err != nil {
		t.Fatalf("AddProjectAssembliesFromAssemblies: %v", err)
	}

	var layers []models.ProjectAssemblyEPDLink
	if err := config.GetDB().Where("assembly_id = ?", clones[0].ID).Find(&layers).Error; err != nil {
		t.Fatalf("fetch layers: %v", err)
	}
	if len(layers) != 1 || layers[0].EpdId != forks[0].ID {
		t.Fatalf("clone did not reuse the existing fork: %+v", layers)
	}

	var count int64
	if err := config.GetDB().Model(&models.ProjectEPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("fork count = %d, expected 1", count)
	}
}

func TestGetProjectAssembliesScopedAndOrdered(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	_, err := models.AddProjectAssemblies(ctx, []*models.NewProjectAssembly{
		{ProjectId: "proj-1", Name: "Wall", Unit: models.UnitM2},
		{ProjectId: "proj-1", Name: "Floor", Unit: models.UnitM2},
		{ProjectId: "proj-2", Name: "Roof", Unit: models.UnitM2},
	})
	if err != nil {
		t.Fatalf("AddProjectAssemblies: %v", err)
	}

	assemblies, err := models.GetProjectAssemblies(ctx, "proj-1", false)
	if err != nil {
		t.Fatalf("GetProjectAssemblies: %v", err)
	}
	if len(assemblies) != 2 {
		t.Fatalf("assemblies = %d, expected the two proj-1 rows", len(assemblies))
	}
	if assemblies[0].Name != "Floor" || assemblies[1].Name != "Wall" {
		t.Fatalf("assemblies out of name order: %s, %s", assemblies[0].Name, assemblies[1].Name)
	}
}

func TestGetProjectAssembliesPreloadsLayerEpds(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	epd := seedEpd(t, "Concrete", "", "1.0", models.Phases{"a1a3": 10})
	forks, err := models.AddProjectEpds(ctx, "proj-1", []string{epd.ID})
	if err != nil {
		t.Fatalf("AddProjectEpds: %v", err)
	}

	created, err := models.AddProjectAssemblies(ctx, []*models.NewProjectAssembly{
		{ProjectId: "proj-1", Name: "Wall", Unit: models.UnitM2},
	})
	if err != nil {
		t.Fatalf("AddProjectAssemblies: %v", err)
	}
	if _, err := models.AddProjectAssemblyLayers(ctx, "proj-1", created[0].ID, []*models.NewAssemblyLayer{
		{EpdId: forks[0].ID},
	}); err != nil {
		t.Fatalf("AddProjectAssemblyLayers: %v", err)
	}

	assemblies, err := models.GetProjectAssemblies(ctx, "proj-1", true)
	if err != nil {
		t.Fatalf("GetProjectAssemblies: %v", err)
	}
	if len(assemblies) != 1 || len(assemblies[0].Layers) != 1 {
		t.Fatalf("assemblies = %+v, expected one with one layer", assemblies)
	}
	layer := assemblies[0].Layers[0]
	if layer.Epd == nil || layer.Epd.ID != forks[0].ID {
		t.Fatalf("layer epd not preloaded: %+v", layer.Epd)
	}
}

func TestUpdateAssemblyLayersPartialUpdate(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	assembly := seedAssembly(t, "Wall")
	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	layers, err := models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{
		{EpdId: epd.ID, Name: "Core", ConversionFactor: utils.Ptr(2.0)},
	})
	if err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}

	_, err = models.UpdateAssemblyLayers(ctx, assembly.ID, []*models.UpdateAssemblyLayerInput{
		{ID: layers[0].ID, TransportDistance: utils.Ptr(80.0)},
	})
	if err != nil {
		t.Fatalf("UpdateAssemblyLayers: %v", err)
	}

	var stored models.AssemblyEPDLink
	if err := config.GetDB().First(&stored, "id = ?", layers[0].ID).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stored.TransportDistance != 80 {
		t.Fatalf("transport distance = %v, expected 80", stored.TransportDistance)
	}
	if stored.ConversionFactor != 2 || stored.Name != "Core" {
		t.Fatalf("untouched fields changed: %+v", stored)
	}
}

func TestDeleteAssembliesRemovesLayers(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	assembly := seedAssembly(t, "Wall")
	epd := seedEpd(t, "Concrete", "", "1.0", nil)
	if _, err := models.AddAssemblyLayers(ctx, assembly.ID, []*models.NewAssemblyLayer{{EpdId: epd.ID}}); err != nil {
		t.Fatalf("AddAssemblyLayers: %v", err)
	}

	if _, err := models.DeleteAssemblies(ctx, []string{assembly.ID}); err != nil {
		t.Fatalf("DeleteAssemblies: %v", err)
	}

	var count int64
	if err := config.GetDB().Model(&models.AssemblyEPDLink{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("layer count = %d after assembly delete, expected 0", count)
	}
}
