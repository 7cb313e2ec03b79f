package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type assemblyReader struct {
	db *gorm.DB
}

func (r *assemblyReader) getAssemblies(ctx context.Context, ids []string) []*dataloader.Result[*models.Assembly] {
	var results []models.Assembly
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Assembly](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetAssembly(ctx context.Context, id string) (*models.Assembly, error) {
	loaders := For(ctx)
	return loaders.assemblyLoader.Load(ctx, id)()
}
