package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type projectEpdReader struct {
	db *gorm.DB
}

func (r *projectEpdReader) getProjectEpds(ctx context.Context, ids []string) []*dataloader.Result[*models.ProjectEPD] {
	var results []models.ProjectEPD
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.ProjectEPD](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetProjectEpd(ctx context.Context, id string) (*models.ProjectEPD, error) {
	loaders := For(ctx)
	return loaders.projectEpdLoader.Load(ctx, id)()
}
