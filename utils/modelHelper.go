package utils

import (
	"context"

	"github.com/lcadata/assembly_backend/config"
)

/* DB fetching */

// fetch model from db
// (may return RecordNotFound)
func FetchSingleModel[T any](ctx context.Context, id string, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, "id = ?", id).Error
	if err != nil {
		return nil, AsNotFound(err)
	}
	return &result, nil
}

// fetch model from db scoped to one project
// (ctx-independent, may return RecordNotFound)
func FetchProjectModel[T any](ctx context.Context, projectId string, id string, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("project_id = ?", projectId)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, "id = ?", id).Error
	if err != nil {
		return nil, AsNotFound(err)
	}
	return &result, nil
}

// fetch all models belonging to one project, ordered by name
func FetchProjectModels[T any](ctx context.Context, projectId string, associations ...string) ([]*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("project_id = ?", projectId)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var results []*T
	err := dbCtx.Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
