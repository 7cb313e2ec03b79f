package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assembly is a reusable catalogue composition of material layers describing
// a building element, e.g. "200mm concrete wall".
type Assembly struct {
	ID               string            `gorm:"primaryKey;size:36" json:"id"`
	Name             string            `gorm:"index;size:255;not null" json:"name"`
	Category         string            `gorm:"size:255" json:"category"`
	Source           string            `gorm:"size:100" json:"source"`
	Unit             Unit              `gorm:"size:20;not null" json:"unit"`
	LifeTime         float64           `gorm:"not null;default:50" json:"life_time"`
	ConversionFactor float64           `gorm:"not null;default:1" json:"conversion_factor"`
	Description      *string           `gorm:"type:text" json:"description"`
	MetaFields       datatypes.JSONMap `json:"meta_fields"`
	Layers           []AssemblyEPDLink `gorm:"foreignKey:AssemblyId;constraint:OnDelete:CASCADE" json:"layers,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Assembly) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ProjectAssembly is the project-scoped form. origin_id is nullable; a
// project assembly may be authored directly rather than forked.
type ProjectAssembly struct {
	ID               string                   `gorm:"primaryKey;size:36" json:"id"`
	ProjectId        string                   `gorm:"index;size:36;not null" json:"project_id"`
	OriginId         *string                  `gorm:"index;size:36" json:"origin_id"`
	Origin           *Assembly                `gorm:"foreignKey:OriginId" json:"origin,omitempty"`
	Name             string                   `gorm:"index;size:255;not null" json:"name"`
	Category         string                   `gorm:"size:255" json:"category"`
	Unit             Unit                     `gorm:"size:20;not null" json:"unit"`
	LifeTime         float64                  `gorm:"not null;default:50" json:"life_time"`
	ConversionFactor float64                  `gorm:"not null;default:1" json:"conversion_factor"`
	Description      *string                  `gorm:"type:text" json:"description"`
	MetaFields       datatypes.JSONMap        `json:"meta_fields"`
	Layers           []ProjectAssemblyEPDLink `gorm:"foreignKey:AssemblyId;constraint:OnDelete:CASCADE" json:"layers,omitempty"`
	CreatedAt        time.Time                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *ProjectAssembly) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Indicator rolls the named indicator up over the assembly's loaded layers.
func (a *Assembly) Indicator(indicator string, phases []string) float64 {
	return AssemblyIndicator(assemblyLayers(a.Layers), indicator, phases)
}

func (a *Assembly) TransportIndicator(indicator string, phases []string) float64 {
	return AssemblyTransportIndicator(assemblyLayers(a.Layers), indicator, phases)
}

func (a *ProjectAssembly) Indicator(indicator string, phases []string) float64 {
	return AssemblyIndicator(projectAssemblyLayers(a.Layers), indicator, phases)
}

func (a *ProjectAssembly) TransportIndicator(indicator string, phases []string) float64 {
	return AssemblyTransportIndicator(projectAssemblyLayers(a.Layers), indicator, phases)
}

func assemblyLayers(links []AssemblyEPDLink) []EPDLayer {
	layers := make([]EPDLayer, 0, len(links))
	for i := range links {
		layers = append(layers, &links[i])
	}
	return layers
}

func projectAssemblyLayers(links []ProjectAssemblyEPDLink) []EPDLayer {
	layers := make([]EPDLayer, 0, len(links))
	for i := range links {
		layers = append(layers, &links[i])
	}
	return layers
}

type NewAssembly struct {
	Name             string                 `json:"name" binding:"required"`
	Category         string                 `json:"category"`
	Source           string                 `json:"source"`
	Unit             Unit                   `json:"unit" binding:"required"`
	LifeTime         *float64               `json:"life_time"`
	ConversionFactor *float64               `json:"conversion_factor"`
	Description      *string                `json:"description"`
	MetaFields       map[string]interface{} `json:"meta_fields"`
}

type NewProjectAssembly struct {
	ProjectId        string                 `json:"project_id" binding:"required"`
	Name             string                 `json:"name" binding:"required"`
	Category         string                 `json:"category"`
	Unit             Unit                   `json:"unit" binding:"required"`
	LifeTime         *float64               `json:"life_time"`
	ConversionFactor *float64               `json:"conversion_factor"`
	Description      *string                `json:"description"`
	MetaFields       map[string]interface{} `json:"meta_fields"`
}

type UpdateAssemblyInput struct {
	ID               string                 `json:"id" binding:"required"`
	Name             *string                `json:"name"`
	Category         *string                `json:"category"`
	Unit             *Unit                  `json:"unit"`
	LifeTime         *float64               `json:"life_time"`
	ConversionFactor *float64               `json:"conversion_factor"`
	Description      *string                `json:"description"`
	MetaFields       map[string]interface{} `json:"meta_fields"`
}

func assemblyDefaults(lifeTime *float64, conversionFactor *float64) (float64, float64) {
	life := 50.0
	if lifeTime != nil {
		life = *lifeTime
	}
	factor := 1.0
	if conversionFactor != nil {
		factor = *conversionFactor
	}
	return life, factor
}

func GetAssembly(ctx context.Context, id string, withLayers bool) (*Assembly, error) {
	if withLayers {
		return utils.FetchSingleModel[Assembly](ctx, id, "Layers", "Layers.Epd", "Layers.TransportEpd")
	}
	return utils.FetchSingleModel[Assembly](ctx, id)
}

// GetProjectAssemblyById looks an assembly up without project scoping. Used
// by the inbound federation resolver, where only the stored assembly id is
// known.
func GetProjectAssemblyById(ctx context.Context, id string, withLayers bool) (*ProjectAssembly, error) {
	if withLayers {
		return utils.FetchSingleModel[ProjectAssembly](ctx, id, "Layers", "Layers.Epd", "Layers.TransportEpd")
	}
	return utils.FetchSingleModel[ProjectAssembly](ctx, id)
}

func GetProjectAssembly(ctx context.Context, projectId string, id string, withLayers bool) (*ProjectAssembly, error) {
	if withLayers {
		return utils.FetchProjectModel[ProjectAssembly](ctx, projectId, id, "Layers", "Layers.Epd", "Layers.TransportEpd")
	}
	return utils.FetchProjectModel[ProjectAssembly](ctx, projectId, id)
}

// GetAssemblies lists the shared catalogue. withLayers eager-loads layers and
// their EPDs for indicator roll-ups; leave it off when the request shape does
// not ask for them.
func GetAssemblies(ctx context.Context, withLayers bool) ([]*Assembly, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if withLayers {
		dbCtx = dbCtx.Preload("Layers").Preload("Layers.Epd").Preload("Layers.TransportEpd")
	}

	var results []*Assembly
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func GetProjectAssemblies(ctx context.Context, projectId string, withLayers bool) ([]*ProjectAssembly, error) {
	if withLayers {
		return utils.FetchProjectModels[ProjectAssembly](ctx, projectId, "Layers", "Layers.Epd", "Layers.TransportEpd")
	}
	return utils.FetchProjectModels[ProjectAssembly](ctx, projectId)
}

// AddAssemblies creates catalogue assemblies; the whole batch commits once.
func AddAssemblies(ctx context.Context, inputs []*NewAssembly) ([]*Assembly, error) {

	assemblies := make([]*Assembly, 0, len(inputs))
	for _, input := range inputs {
		if err := utils.ValidateStruct(input); err != nil {
			return nil, err
		}
		life, factor := assemblyDefaults(input.LifeTime, input.ConversionFactor)
		assemblies = append(assemblies, &Assembly{
			Name:             input.Name,
			Category:         input.Category,
			Source:           input.Source,
			Unit:             input.Unit,
			LifeTime:         life,
			ConversionFactor: factor,
			Description:      input.Description,
			MetaFields:       datatypes.JSONMap(input.MetaFields),
		})
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, assembly := range assemblies {
			if err := tx.Create(assembly).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assemblies, nil
}

func AddProjectAssemblies(ctx context.Context, inputs []*NewProjectAssembly) ([]*ProjectAssembly, error) {

	assemblies := make([]*ProjectAssembly, 0, len(inputs))
	for _, input := range inputs {
		if err := utils.ValidateStruct(input); err != nil {
			return nil, err
		}
		life, factor := assemblyDefaults(input.LifeTime, input.ConversionFactor)
		assemblies = append(assemblies, &ProjectAssembly{
			ProjectId:        input.ProjectId,
			Name:             input.Name,
			Category:         input.Category,
			Unit:             input.Unit,
			LifeTime:         life,
			ConversionFactor: factor,
			Description:      input.Description,
			MetaFields:       datatypes.JSONMap(input.MetaFields),
		})
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, assembly := range assemblies {
			if err := tx.Create(assembly).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assemblies, nil
}

func applyAssemblyUpdates(input *UpdateAssemblyInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Unit != nil {
		updates["unit"] = *input.Unit
	}
	if input.LifeTime != nil {
		updates["life_time"] = *input.LifeTime
	}
	if input.ConversionFactor != nil {
		updates["conversion_factor"] = *input.ConversionFactor
	}
	if input.Description != nil {
		updates["description"] = input.Description
	}
	if input.MetaFields != nil {
		updates["meta_fields"] = datatypes.JSONMap(input.MetaFields)
	}
	return updates
}

// UpdateAssemblies applies only the supplied fields per target; a missing id
// fails the whole batch before anything commits.
func UpdateAssemblies(ctx context.Context, inputs []*UpdateAssemblyInput) ([]*Assembly, error) {

	results := make([]*Assembly, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			var assembly Assembly
			if err := tx.First(&assembly, "id = ?", input.ID).Error; err != nil {
				return utils.AsNotFound(err)
			}
			if updates := applyAssemblyUpdates(input); len(updates) > 0 {
				if err := tx.Model(&assembly).Updates(updates).Error; err != nil {
					return err
				}
			}
			results = append(results, &assembly)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func UpdateProjectAssemblies(ctx context.Context, projectId string, inputs []*UpdateAssemblyInput) ([]*ProjectAssembly, error) {

	results := make([]*ProjectAssembly, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			var assembly ProjectAssembly
			if err := tx.First(&assembly, "id = ? AND project_id = ?", input.ID, projectId).Error; err != nil {
				return utils.AsNotFound(err)
			}
			if updates := applyAssemblyUpdates(input); len(updates) > 0 {
				if err := tx.Model(&assembly).Updates(updates).Error; err != nil {
					return err
				}
			}
			results = append(results, &assembly)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// DeleteAssemblies removes catalogue assemblies and their layers. Layers are
// deleted explicitly so the cascade does not depend on engine settings.
func DeleteAssemblies(ctx context.Context, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Assembly{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return utils.ErrorRecordNotFound
		}
		if err := tx.Where("assembly_id IN ?", ids).Delete(&AssemblyEPDLink{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&Assembly{}).Error
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func DeleteProjectAssemblies(ctx context.Context, projectId string, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ProjectAssembly{}).
			Where("id IN ? AND project_id = ?", ids, projectId).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return utils.ErrorRecordNotFound
		}
		if err := tx.Where("assembly_id IN ?", ids).Delete(&ProjectAssemblyEPDLink{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&ProjectAssembly{}).Error
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// CreateProjectAssemblyFromAssembly copies descriptive fields into a project
// fork. Layers are cloned separately, see CloneLayers.
func CreateProjectAssemblyFromAssembly(assembly *Assembly, projectId string) *ProjectAssembly {
	return &ProjectAssembly{
		ProjectId:        projectId,
		OriginId:         &assembly.ID,
		Name:             assembly.Name,
		Category:         assembly.Category,
		Unit:             assembly.Unit,
		LifeTime:         assembly.LifeTime,
		ConversionFactor: assembly.ConversionFactor,
		Description:      assembly.Description,
		MetaFields:       assembly.MetaFields,
	}
}

// AddProjectAssembliesFromAssemblies clones catalogue assemblies, layers
// included, into a project. Each source assembly commits in its own
// transaction, so earlier clones survive if a later one fails. Callers
// relying on all-or-nothing must check the returned error and clean up.
func AddProjectAssembliesFromAssemblies(ctx context.Context, assemblyIds []string, projectId string) ([]*ProjectAssembly, error) {

	results := make([]*ProjectAssembly, 0, len(assemblyIds))
	db := config.GetDB()
	for _, assemblyId := range assemblyIds {
		var clone *ProjectAssembly
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var assembly Assembly
			if err := tx.Preload("Layers").First(&assembly, "id = ?", assemblyId).Error; err != nil {
				return utils.AsNotFound(err)
			}
			clone = CreateProjectAssemblyFromAssembly(&assembly, projectId)
			if err := tx.Create(clone).Error; err != nil {
				return err
			}
			return CloneLayers(tx, clone, assembly.Layers)
		})
		if err != nil {
			return nil, err
		}
		results = append(results, clone)
	}

	return results, nil
}
