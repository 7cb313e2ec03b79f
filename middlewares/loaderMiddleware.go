package middlewares

import (
	"context"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	epdLoader             *dataloader.Loader[string, *models.EPD]
	projectEpdLoader      *dataloader.Loader[string, *models.ProjectEPD]
	assemblyLoader        *dataloader.Loader[string, *models.Assembly]
	projectAssemblyLoader *dataloader.Loader[string, *models.ProjectAssembly]

	assemblyLayerLoader        *dataloader.Loader[string, []*models.AssemblyEPDLink]
	projectAssemblyLayerLoader *dataloader.Loader[string, []*models.ProjectAssemblyEPDLink]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	epdReader := &epdReader{db: conn}
	projectEpdReader := &projectEpdReader{db: conn}
	assemblyReader := &assemblyReader{db: conn}
	projectAssemblyReader := &projectAssemblyReader{db: conn}
	assemblyLayerReader := &assemblyLayerReader{db: conn}
	projectAssemblyLayerReader := &projectAssemblyLayerReader{db: conn}

	return &Loaders{
		epdLoader:             dataloader.NewBatchedLoader(epdReader.getEpds, dataloader.WithWait[string, *models.EPD](time.Millisecond)),
		projectEpdLoader:      dataloader.NewBatchedLoader(projectEpdReader.getProjectEpds, dataloader.WithWait[string, *models.ProjectEPD](time.Millisecond)),
		assemblyLoader:        dataloader.NewBatchedLoader(assemblyReader.getAssemblies, dataloader.WithWait[string, *models.Assembly](time.Millisecond)),
		projectAssemblyLoader: dataloader.NewBatchedLoader(projectAssemblyReader.getProjectAssemblies, dataloader.WithWait[string, *models.ProjectAssembly](time.Millisecond)),

		assemblyLayerLoader:        dataloader.NewBatchedLoader(assemblyLayerReader.getLayers, dataloader.WithWait[string, []*models.AssemblyEPDLink](time.Millisecond)),
		projectAssemblyLayerLoader: dataloader.NewBatchedLoader(projectAssemblyLayerReader.getLayers, dataloader.WithWait[string, []*models.ProjectAssemblyEPDLink](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results
// (T must be a struct)
func generateLoaderResults[T models.Data](results []T, ids []string) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[string]T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}

// T must be struct
// each id has many related results
func generateLoaderArrayResults[T models.RelatedData](results []T, referenceIds []string) (loaderResults []*dataloader.Result[[]*T]) {
	resultMap := make(map[string][]*T)
	for _, result := range results {
		// creating a new variable every turn, to avoid pointing to the adddress of result
		copy := result
		resultMap[result.GetReferenceId()] = append(resultMap[result.GetReferenceId()], &copy)
	}
	for _, id := range referenceIds {
		resultArray := resultMap[id]
		loaderResults = append(loaderResults, &dataloader.Result[[]*T]{Data: resultArray})
	}
	return loaderResults
}
