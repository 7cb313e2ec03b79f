package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type epdReader struct {
	db *gorm.DB
}

func (r *epdReader) getEpds(ctx context.Context, ids []string) []*dataloader.Result[*models.EPD] {
	var results []models.EPD
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.EPD](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetEpd(ctx context.Context, id string) (*models.EPD, error) {
	loaders := For(ctx)
	return loaders.epdLoader.Load(ctx, id)()
}

func GetEpds(ctx context.Context, ids []string) ([]*models.EPD, []error) {
	loaders := For(ctx)
	return loaders.epdLoader.LoadMany(ctx, ids)()
}
