package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type projectAssemblyReader struct {
	db *gorm.DB
}

func (r *projectAssemblyReader) getProjectAssemblies(ctx context.Context, ids []string) []*dataloader.Result[*models.ProjectAssembly] {
	var results []models.ProjectAssembly
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.ProjectAssembly](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetProjectAssembly(ctx context.Context, id string) (*models.ProjectAssembly, error) {
	loaders := For(ctx)
	return loaders.projectAssemblyLoader.Load(ctx, id)()
}
