package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type assemblyLayerReader struct {
	db *gorm.DB
}

func (r *assemblyLayerReader) getLayers(ctx context.Context, assemblyIds []string) []*dataloader.Result[[]*models.AssemblyEPDLink] {
	var results []models.AssemblyEPDLink
	err := r.db.WithContext(ctx).Where("assembly_id IN ?", assemblyIds).Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.AssemblyEPDLink](len(assemblyIds), err)
	}

	return generateLoaderArrayResults(results, assemblyIds)
}

func GetAssemblyLayers(ctx context.Context, assemblyId string) ([]*models.AssemblyEPDLink, error) {
	loaders := For(ctx)
	return loaders.assemblyLayerLoader.Load(ctx, assemblyId)()
}
