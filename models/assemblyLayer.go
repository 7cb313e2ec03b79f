package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/utils"
	"gorm.io/gorm"
)

// AssemblyEPDLink is one material layer of a catalogue assembly: a reference
// to an EPD scaled by a conversion factor, optionally with a transport
// overlay referencing a second EPD carrying emissions per distance.
type AssemblyEPDLink struct {
	ID                        string    `gorm:"primaryKey;size:36" json:"id"`
	AssemblyId                string    `gorm:"index;size:36;not null" json:"assembly_id"`
	EpdId                     string    `gorm:"index;size:36;not null" json:"epd_id"`
	Epd                       *EPD      `gorm:"foreignKey:EpdId" json:"epd,omitempty"`
	Name                      string    `gorm:"size:255" json:"name"`
	Description               *string   `gorm:"type:text" json:"description"`
	ConversionFactor          float64   `gorm:"not null;default:1" json:"conversion_factor"`
	ReferenceServiceLife      *int      `json:"reference_service_life"`
	TransportEpdId            *string   `gorm:"size:36" json:"transport_epd_id"`
	TransportEpd              *EPD      `gorm:"foreignKey:TransportEpdId" json:"transport_epd,omitempty"`
	TransportDistance         float64   `gorm:"not null;default:0" json:"transport_distance"`
	TransportConversionFactor float64   `gorm:"not null;default:1" json:"transport_conversion_factor"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *AssemblyEPDLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ProjectAssemblyEPDLink is the project-scoped layer; its EPD references
// point at ProjectEPD forks in the same project as the owning assembly.
type ProjectAssemblyEPDLink struct {
	ID                        string      `gorm:"primaryKey;size:36" json:"id"`
	AssemblyId                string      `gorm:"index;size:36;not null" json:"assembly_id"`
	EpdId                     string      `gorm:"index;size:36;not null" json:"epd_id"`
	Epd                       *ProjectEPD `gorm:"foreignKey:EpdId" json:"epd,omitempty"`
	Name                      string      `gorm:"size:255" json:"name"`
	Description               *string     `gorm:"type:text" json:"description"`
	ConversionFactor          float64     `gorm:"not null;default:1" json:"conversion_factor"`
	ReferenceServiceLife      *int        `json:"reference_service_life"`
	TransportEpdId            *string     `gorm:"size:36" json:"transport_epd_id"`
	TransportEpd              *ProjectEPD `gorm:"foreignKey:TransportEpdId" json:"transport_epd,omitempty"`
	TransportDistance         float64     `gorm:"not null;default:0" json:"transport_distance"`
	TransportConversionFactor float64     `gorm:"not null;default:1" json:"transport_conversion_factor"`
	CreatedAt                 time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *ProjectAssemblyEPDLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

/* EPDLayer */

func (l *AssemblyEPDLink) LayerConversionFactor() float64 {
	return l.ConversionFactor
}

func (l *AssemblyEPDLink) IndicatorPhases(indicator string) Phases {
	if l.Epd == nil {
		return Phases{}
	}
	return l.Epd.IndicatorPhases(indicator)
}

func (l *AssemblyEPDLink) TransportPhases(indicator string) (Phases, bool) {
	if l.TransportEpd == nil {
		return nil, false
	}
	return l.TransportEpd.IndicatorPhases(indicator), true
}

func (l *AssemblyEPDLink) TransportScaling() (float64, float64) {
	return l.TransportDistance, l.TransportConversionFactor
}

func (l *ProjectAssemblyEPDLink) LayerConversionFactor() float64 {
	return l.ConversionFactor
}

func (l *ProjectAssemblyEPDLink) IndicatorPhases(indicator string) Phases {
	if l.Epd == nil {
		return Phases{}
	}
	return l.Epd.IndicatorPhases(indicator)
}

func (l *ProjectAssemblyEPDLink) TransportPhases(indicator string) (Phases, bool) {
	if l.TransportEpd == nil {
		return nil, false
	}
	return l.TransportEpd.IndicatorPhases(indicator), true
}

func (l *ProjectAssemblyEPDLink) TransportScaling() (float64, float64) {
	return l.TransportDistance, l.TransportConversionFactor
}

type NewAssemblyLayer struct {
	EpdId                     string   `json:"epd_id" binding:"required"`
	Name                      string   `json:"name"`
	Description               *string  `json:"description"`
	ConversionFactor          *float64 `json:"conversion_factor"`
	ReferenceServiceLife      *int     `json:"reference_service_life"`
	TransportEpdId            *string  `json:"transport_epd_id"`
	TransportDistance         *float64 `json:"transport_distance"`
	TransportConversionFactor *float64 `json:"transport_conversion_factor"`
}

type UpdateAssemblyLayerInput struct {
	ID                        string   `json:"id" binding:"required"`
	EpdId                     *string  `json:"epd_id"`
	Name                      *string  `json:"name"`
	Description               *string  `json:"description"`
	ConversionFactor          *float64 `json:"conversion_factor"`
	ReferenceServiceLife      *int     `json:"reference_service_life"`
	TransportEpdId            *string  `json:"transport_epd_id"`
	TransportDistance         *float64 `json:"transport_distance"`
	TransportConversionFactor *float64 `json:"transport_conversion_factor"`
}

func layerDefaults(input *NewAssemblyLayer) (conversionFactor float64, transportDistance float64, transportConversionFactor float64) {
	conversionFactor = 1
	if input.ConversionFactor != nil {
		conversionFactor = *input.ConversionFactor
	}
	transportDistance = 0
	if input.TransportDistance != nil {
		transportDistance = *input.TransportDistance
	}
	transportConversionFactor = 1
	if input.TransportConversionFactor != nil {
		transportConversionFactor = *input.TransportConversionFactor
	}
	return
}

// AddAssemblyLayers adds layers to a catalogue assembly. The assembly and
// every referenced EPD must exist; the whole batch commits once.
func AddAssemblyLayers(ctx context.Context, assemblyId string, inputs []*NewAssemblyLayer) ([]*AssemblyEPDLink, error) {

	layers := make([]*AssemblyEPDLink, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly Assembly
		if err := tx.First(&assembly, "id = ?", assemblyId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			var epd EPD
			if err := tx.First(&epd, "id = ?", input.EpdId).Error; err != nil {
				return utils.AsNotFound(err)
			}
			if input.TransportEpdId != nil {
				var transportEpd EPD
				if err := tx.First(&transportEpd, "id = ?", *input.TransportEpdId).Error; err != nil {
					return utils.AsNotFound(err)
				}
			}
			conversionFactor, transportDistance, transportConversionFactor := layerDefaults(input)
			layer := &AssemblyEPDLink{
				AssemblyId:                assembly.ID,
				EpdId:                     input.EpdId,
				Name:                      input.Name,
				Description:               input.Description,
				ConversionFactor:          conversionFactor,
				ReferenceServiceLife:      input.ReferenceServiceLife,
				TransportEpdId:            input.TransportEpdId,
				TransportDistance:         transportDistance,
				TransportConversionFactor: transportConversionFactor,
			}
			if err := tx.Create(layer).Error; err != nil {
				return err
			}
			layers = append(layers, layer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return layers, nil
}

// checkProjectEpdScope resolves a ProjectEPD and rejects references that
// cross project boundaries.
func checkProjectEpdScope(tx *gorm.DB, projectId string, epdId string) (*ProjectEPD, error) {
	var epd ProjectEPD
	if err := tx.First(&epd, "id = ?", epdId).Error; err != nil {
		return nil, utils.AsNotFound(err)
	}
	if epd.ProjectId != projectId {
		return nil, utils.ErrorProjectScopeMismatch
	}
	return &epd, nil
}

// AddProjectAssemblyLayers adds layers to a project assembly. Every EPD
// reference must live in the same project as the assembly.
func AddProjectAssemblyLayers(ctx context.Context, projectId string, assemblyId string, inputs []*NewAssemblyLayer) ([]*ProjectAssemblyEPDLink, error) {

	layers := make([]*ProjectAssemblyEPDLink, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly ProjectAssembly
		if err := tx.First(&assembly, "id = ? AND project_id = ?", assemblyId, projectId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			if _, err := checkProjectEpdScope(tx, assembly.ProjectId, input.EpdId); err != nil {
				return err
			}
			if input.TransportEpdId != nil {
				if _, err := checkProjectEpdScope(tx, assembly.ProjectId, *input.TransportEpdId); err != nil {
					return err
				}
			}
			conversionFactor, transportDistance, transportConversionFactor := layerDefaults(input)
			layer := &ProjectAssemblyEPDLink{
				AssemblyId:                assembly.ID,
				EpdId:                     input.EpdId,
				Name:                      input.Name,
				Description:               input.Description,
				ConversionFactor:          conversionFactor,
				ReferenceServiceLife:      input.ReferenceServiceLife,
				TransportEpdId:            input.TransportEpdId,
				TransportDistance:         transportDistance,
				TransportConversionFactor: transportConversionFactor,
			}
			if err := tx.Create(layer).Error; err != nil {
				return err
			}
			layers = append(layers, layer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return layers, nil
}

// scopedLayer fetches a layer constrained to its owning assembly. A layer id
// that exists under a different assembly is not found.
func scopedLayer[L any](tx *gorm.DB, assemblyId string, layerId string) (*L, error) {
	var layer L
	err := tx.First(&layer, "id = ? AND assembly_id = ?", layerId, assemblyId).Error
	if err != nil {
		return nil, utils.AsNotFound(err)
	}
	return &layer, nil
}

func layerUpdates(input *UpdateAssemblyLayerInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.EpdId != nil {
		updates["epd_id"] = *input.EpdId
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = input.Description
	}
	if input.ConversionFactor != nil {
		updates["conversion_factor"] = *input.ConversionFactor
	}
	if input.ReferenceServiceLife != nil {
		updates["reference_service_life"] = input.ReferenceServiceLife
	}
	if input.TransportEpdId != nil {
		updates["transport_epd_id"] = input.TransportEpdId
	}
	if input.TransportDistance != nil {
		updates["transport_distance"] = *input.TransportDistance
	}
	if input.TransportConversionFactor != nil {
		updates["transport_conversion_factor"] = *input.TransportConversionFactor
	}
	return updates
}

// UpdateAssemblyLayers applies only the supplied fields per layer, with the
// lookup scoped to the owning assembly.
func UpdateAssemblyLayers(ctx context.Context, assemblyId string, inputs []*UpdateAssemblyLayerInput) ([]*AssemblyEPDLink, error) {

	layers := make([]*AssemblyEPDLink, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly Assembly
		if err := tx.First(&assembly, "id = ?", assemblyId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			layer, err := scopedLayer[AssemblyEPDLink](tx, assembly.ID, input.ID)
			if err != nil {
				return err
			}
			if input.EpdId != nil {
				var epd EPD
				if err := tx.First(&epd, "id = ?", *input.EpdId).Error; err != nil {
					return utils.AsNotFound(err)
				}
			}
			if input.TransportEpdId != nil {
				var transportEpd EPD
				if err := tx.First(&transportEpd, "id = ?", *input.TransportEpdId).Error; err != nil {
					return utils.AsNotFound(err)
				}
			}
			if updates := layerUpdates(input); len(updates) > 0 {
				if err := tx.Model(layer).Updates(updates).Error; err != nil {
					return err
				}
			}
			layers = append(layers, layer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return layers, nil
}

func UpdateProjectAssemblyLayers(ctx context.Context, projectId string, assemblyId string, inputs []*UpdateAssemblyLayerInput) ([]*ProjectAssemblyEPDLink, error) {

	layers := make([]*ProjectAssemblyEPDLink, 0, len(inputs))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly ProjectAssembly
		if err := tx.First(&assembly, "id = ? AND project_id = ?", assemblyId, projectId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, input := range inputs {
			if err := utils.ValidateStruct(input); err != nil {
				return err
			}
			layer, err := scopedLayer[ProjectAssemblyEPDLink](tx, assembly.ID, input.ID)
			if err != nil {
				return err
			}
			if input.EpdId != nil {
				if _, err := checkProjectEpdScope(tx, assembly.ProjectId, *input.EpdId); err != nil {
					return err
				}
			}
			if input.TransportEpdId != nil {
				if _, err := checkProjectEpdScope(tx, assembly.ProjectId, *input.TransportEpdId); err != nil {
					return err
				}
			}
			if updates := layerUpdates(input); len(updates) > 0 {
				if err := tx.Model(layer).Updates(updates).Error; err != nil {
					return err
				}
			}
			layers = append(layers, layer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return layers, nil
}

// DeleteAssemblyLayers removes layers from one assembly. Lookups are scoped;
// a layer id under another assembly fails the batch with not found.
func DeleteAssemblyLayers(ctx context.Context, assemblyId string, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly Assembly
		if err := tx.First(&assembly, "id = ?", assemblyId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, id := range ids {
			layer, err := scopedLayer[AssemblyEPDLink](tx, assembly.ID, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(layer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func DeleteProjectAssemblyLayers(ctx context.Context, projectId string, assemblyId string, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assembly ProjectAssembly
		if err := tx.First(&assembly, "id = ? AND project_id = ?", assemblyId, projectId).Error; err != nil {
			return utils.AsNotFound(err)
		}
		for _, id := range ids {
			layer, err := scopedLayer[ProjectAssemblyEPDLink](tx, assembly.ID, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(layer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// CloneLayers copies an assembly's layers onto a freshly forked project
// assembly. Each referenced catalogue EPD resolves to at most one ProjectEPD
// fork per project: an existing fork with origin_id == source epd id is
// reused, otherwise one is created. Transport references resolve the same
// way. Runs inside the caller's transaction.
func CloneLayers(tx *gorm.DB, projectAssembly *ProjectAssembly, sourceLayers []AssemblyEPDLink) error {

	resolved := make(map[string]*ProjectEPD)
	resolveFork := func(epdId string) (*ProjectEPD, error) {
		if fork, ok := resolved[epdId]; ok {
			return fork, nil
		}
		var existing ProjectEPD
		err := tx.Where("origin_id = ? AND project_id = ?", epdId, projectAssembly.ProjectId).
			First(&existing).Error
		if err == nil {
			resolved[epdId] = &existing
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		var epd EPD
		if err := tx.First(&epd, "id = ?", epdId).Error; err != nil {
			return nil, utils.AsNotFound(err)
		}
		fork := CreateProjectEpdFromEpd(&epd, projectAssembly.ProjectId)
		if err := tx.Create(fork).Error; err != nil {
			return nil, err
		}
		resolved[epdId] = fork
		return fork, nil
	}

	for i := range sourceLayers {
		source := &sourceLayers[i]
		epdFork, err := resolveFork(source.EpdId)
		if err != nil {
			return err
		}
		if epdFork.ProjectId != projectAssembly.ProjectId {
			return utils.ErrorProjectScopeMismatch
		}
		var transportForkId *string
		if source.TransportEpdId != nil {
			transportFork, err := resolveFork(*source.TransportEpdId)
			if err != nil {
				return err
			}
			if transportFork.ProjectId != projectAssembly.ProjectId {
				return utils.ErrorProjectScopeMismatch
			}
			transportForkId = &transportFork.ID
		}
		layer := &ProjectAssemblyEPDLink{
			AssemblyId:                projectAssembly.ID,
			EpdId:                     epdFork.ID,
			Name:                      source.Name,
			Description:               source.Description,
			ConversionFactor:          source.ConversionFactor,
			ReferenceServiceLife:      source.ReferenceServiceLife,
			TransportEpdId:            transportForkId,
			TransportDistance:         source.TransportDistance,
			TransportConversionFactor: source.TransportConversionFactor,
		}
		if err := tx.Create(layer).Error; err != nil {
			return err
		}
	}

	return nil
}
