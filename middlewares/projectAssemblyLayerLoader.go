package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type projectAssemblyLayerReader struct {
	db *gorm.DB
}

func (r *projectAssemblyLayerReader) getLayers(ctx context.Context, assemblyIds []string) []*dataloader.Result[[]*models.ProjectAssemblyEPDLink] {
	var results []models.ProjectAssemblyEPDLink
	err := r.db.WithContext(ctx).Where("assembly_id IN ?", assemblyIds).Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.ProjectAssemblyEPDLink](len(assemblyIds), err)
	}

	return generateLoaderArrayResults(results, assemblyIds)
}

func GetProjectAssemblyLayers(ctx context.Context, assemblyId string) ([]*models.ProjectAssemblyEPDLink, error) {
	loaders := For(ctx)
	return loaders.projectAssemblyLayerLoader.Load(ctx, assemblyId)()
}
