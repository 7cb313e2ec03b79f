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

// ProjectEPD is a project-local fork of a catalogue EPD. Fields are copied at
// fork time and never re-synced; edits to the origin EPD do not propagate.
// The fork additionally carries measured attributes used to derive
// project-specific conversions.
type ProjectEPD struct {
	ID                   string                          `gorm:"primaryKey;size:36" json:"id"`
	ProjectId            string                          `gorm:"index;size:36;not null" json:"project_id"`
	OriginId             string                          `gorm:"index;size:36;not null" json:"origin_id"`
	Origin               *EPD                            `gorm:"foreignKey:OriginId" json:"origin,omitempty"`
	Version              string                          `gorm:"size:50;not null" json:"version"`
	Name                 string                          `gorm:"index;size:255;not null" json:"name"`
	Category             string                          `gorm:"size:255" json:"category"`
	DeclaredUnit         Unit                            `gorm:"size:20;not null" json:"declared_unit"`
	PublishedDate        time.Time                       `json:"published_date"`
	ExpirationDate       time.Time                       `json:"expiration_date"`
	Source               string                          `gorm:"size:100" json:"source"`
	SourceData           string                          `gorm:"type:text" json:"source_data"`
	Region               string                          `gorm:"size:100" json:"region"`
	Owner                string                          `gorm:"size:255" json:"owner"`
	Subtype              SubType                         `gorm:"size:30" json:"subtype"`
	Comment              *string                         `gorm:"type:text" json:"comment"`
	ReferenceServiceLife *int                            `json:"reference_service_life"`
	Conversions          datatypes.JSONSlice[Conversion] `json:"conversions"`
	Gwp                  Phases                          `json:"gwp"`
	Odp                  Phases                          `json:"odp"`
	Ap                   Phases                          `json:"ap"`
	Ep                   Phases                          `json:"ep"`
	Pocp                 Phases                          `json:"pocp"`
	Penre                Phases                          `json:"penre"`
	Pere                 Phases                          `json:"pere"`
	KgPerM3              *float64                        `json:"kg_per_m3"`
	KgPerM2              *float64                        `json:"kg_per_m2"`
	Thickness            *float64                        `json:"thickness"`
	CreatedAt            time.Time                       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time                       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *ProjectEPD) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (e *ProjectEPD) IndicatorPhases(indicator string) Phases {
	switch indicator {
	case "gwp":
		return e.Gwp
	case "odp":
		return e.Odp
	case "ap":
		return e.Ap
	case "ep":
		return e.Ep
	case "pocp":
		return e.Pocp
	case "penre":
		return e.Penre
	case "pere":
		return e.Pere
	}
	return Phases{}
}

// CreateProjectEpdFromEpd copies every descriptive and indicator field of a
// catalogue EPD into a new fork for the given project. Repeated calls fork
// again; dedup by (origin_id, project_id) is the caller's job where it
// matters (see CloneLayers).
func CreateProjectEpdFromEpd(epd *EPD, projectId string) *ProjectEPD {
	return &ProjectEPD{
		ProjectId:            projectId,
		OriginId:             epd.ID,
		Version:              epd.Version,
		Name:                 epd.Name,
		Category:             epd.Category,
		DeclaredUnit:         epd.DeclaredUnit,
		PublishedDate:        epd.PublishedDate,
		ExpirationDate:       epd.ExpirationDate,
		Source:               epd.Source,
		SourceData:           epd.SourceData,
		Region:               epd.Region,
		Owner:                epd.Owner,
		Subtype:              epd.Subtype,
		Comment:              epd.Comment,
		ReferenceServiceLife: epd.ReferenceServiceLife,
		Conversions:          epd.Conversions,
		Gwp:                  epd.Gwp,
		Odp:                  epd.Odp,
		Ap:                   epd.Ap,
		Ep:                   epd.Ep,
		Pocp:                 epd.Pocp,
		Penre:                epd.Penre,
		Pere:                 epd.Pere,
	}
}

func GetProjectEpd(ctx context.Context, projectId string, id string) (*ProjectEPD, error) {
	return utils.FetchProjectModel[ProjectEPD](ctx, projectId, id)
}

// GetProjectEpds lists a project's EPD forks, optionally filtered.
// fields selects the columns to fetch; empty means all.
func GetProjectEpds(ctx context.Context, projectId string, filters *EpdFilters, fields []string) ([]*ProjectEPD, error) {

	db := config.GetDB()
	dbCtx := filters.apply(db.WithContext(ctx).Where("project_id = ?", projectId))
	if len(fields) > 0 {
		dbCtx = dbCtx.Select(fields)
	}

	var results []*ProjectEPD
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// AddProjectEpds forks the given catalogue EPDs into a project. Any missing
// epd id fails the whole batch; the batch commits once.
func AddProjectEpds(ctx context.Context, projectId string, epdIds []string) ([]*ProjectEPD, error) {

	if len(epdIds) == 0 {
		return []*ProjectEPD{}, nil
	}

	forks := make([]*ProjectEPD, 0, len(epdIds))
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, epdId := range epdIds {
			var epd EPD
			if err := tx.First(&epd, "id = ?", epdId).Error; err != nil {
				return utils.AsNotFound(err)
			}
			fork := CreateProjectEpdFromEpd(&epd, projectId)
			if err := tx.Create(fork).Error; err != nil {
				return err
			}
			forks = append(forks, fork)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return forks, nil
}

type UpdateProjectEpdInput struct {
	ID                   string   `json:"id" binding:"required"`
	Name                 *string  `json:"name"`
	Comment              *string  `json:"comment"`
	ReferenceServiceLife *int     `json:"reference_service_life"`
	KgPerM3              *float64 `json:"kg_per_m3"`
	KgPerM2              *float64 `json:"kg_per_m2"`
	Thickness            *float64 `json:"thickness"`
}

// UpdateProjectEpd applies only the supplied fields to a project fork.
func UpdateProjectEpd(ctx context.Context, projectId string, input *UpdateProjectEpdInput) (*ProjectEPD, error) {

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	epd, err := utils.FetchProjectModel[ProjectEPD](ctx, projectId, input.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Comment != nil {
		updates["comment"] = input.Comment
	}
	if input.ReferenceServiceLife != nil {
		updates["reference_service_life"] = input.ReferenceServiceLife
	}
	if input.KgPerM3 != nil {
		updates["kg_per_m3"] = input.KgPerM3
	}
	if input.KgPerM2 != nil {
		updates["kg_per_m2"] = input.KgPerM2
	}
	if input.Thickness != nil {
		updates["thickness"] = input.Thickness
	}
	if len(updates) == 0 {
		return epd, nil
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(epd).Updates(updates).Error; err != nil {
		return nil, err
	}

	return epd, nil
}

// DeleteProjectEpds removes project forks by id. A single missing id fails
// the whole batch so the caller can always audit what was deleted.
func DeleteProjectEpds(ctx context.Context, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ProjectEPD{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return utils.ErrorRecordNotFound
		}
		return tx.Where("id IN ?", ids).Delete(&ProjectEPD{}).Error
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
