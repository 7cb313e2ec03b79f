package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversion converts one declared unit of the EPD into a target unit, e.g.
// {"kg/m3", 2400} for concrete density. The target unit is kept as the raw
// registry string since registries declare compound units outside the Unit
// vocabulary.
type Conversion struct {
	TargetUnit string  `json:"target_unit"`
	Factor     float64 `json:"factor"`
}

// EPD is a shared catalogue entry harvested from a registry or entered by an
// administrator. The registry-assigned origin_id plus the declared version
// string identify a declaration uniquely; re-ingesting the same pair updates
// the existing row.
type EPD struct {
	ID                   string                          `gorm:"primaryKey;size:36" json:"id"`
	OriginId             *string                         `gorm:"size:100;index:idx_epd_origin_version,unique" json:"origin_id"`
	Version              string                          `gorm:"size:50;not null;index:idx_epd_origin_version,unique" json:"version"`
	Name                 string                          `gorm:"index;size:255;not null" json:"name"`
	Category             string                          `gorm:"size:255" json:"category"`
	DeclaredUnit         Unit                            `gorm:"size:20;not null" json:"declared_unit"`
	PublishedDate        time.Time                       `json:"published_date"`
	ExpirationDate       time.Time                       `json:"expiration_date"`
	Source               string                          `gorm:"index;size:100" json:"source"`
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
	CreatedAt            time.Time                       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time                       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *EPD) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// IndicatorPhases returns one of the seven indicator sets by name. Unknown
// names yield an empty set, which aggregates to zero.
func (e *EPD) IndicatorPhases(indicator string) Phases {
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

type NewEpd struct {
	Name                 string       `json:"name" binding:"required"`
	Version              string       `json:"version" binding:"required"`
	DeclaredUnit         Unit         `json:"declared_unit" binding:"required"`
	PublishedDate        time.Time    `json:"published_date"`
	ExpirationDate       time.Time    `json:"expiration_date"`
	Source               string       `json:"source"`
	SourceData           string       `json:"source_data"`
	Region               string       `json:"region"`
	Owner                string       `json:"owner"`
	Category             string       `json:"category"`
	Subtype              SubType      `json:"subtype"`
	Comment              *string      `json:"comment"`
	ReferenceServiceLife *int         `json:"reference_service_life"`
	OriginId             *string      `json:"origin_id"`
	Conversions          []Conversion `json:"conversions"`
	Gwp                  Phases       `json:"gwp"`
	Odp                  Phases       `json:"odp"`
	Ap                   Phases       `json:"ap"`
	Ep                   Phases       `json:"ep"`
	Pocp                 Phases       `json:"pocp"`
	Penre                Phases       `json:"penre"`
	Pere                 Phases       `json:"pere"`
}

func (input *NewEpd) toModel() EPD {
	return EPD{
		Name:                 input.Name,
		Version:              input.Version,
		DeclaredUnit:         input.DeclaredUnit,
		PublishedDate:        input.PublishedDate,
		ExpirationDate:       input.ExpirationDate,
		Source:               input.Source,
		SourceData:           input.SourceData,
		Region:               input.Region,
		Owner:                input.Owner,
		Category:             input.Category,
		Subtype:              input.Subtype,
		Comment:              input.Comment,
		ReferenceServiceLife: input.ReferenceServiceLife,
		OriginId:             input.OriginId,
		Conversions:          datatypes.NewJSONSlice(input.Conversions),
		Gwp:                  input.Gwp,
		Odp:                  input.Odp,
		Ap:                   input.Ap,
		Ep:                   input.Ep,
		Pocp:                 input.Pocp,
		Penre:                input.Penre,
		Pere:                 input.Pere,
	}
}

func GetEpd(ctx context.Context, id string) (*EPD, error) {
	return utils.FetchSingleModel[EPD](ctx, id)
}

// FilterOptions narrows a string field; at most one of the options applies,
// Equal winning over Contains.
type FilterOptions struct {
	Equal    *string `json:"equal"`
	Contains *string `json:"contains"`
}

type EpdFilters struct {
	Name     *FilterOptions `json:"name"`
	Category *FilterOptions `json:"category"`
	Source   *FilterOptions `json:"source"`
	Region   *FilterOptions `json:"region"`
	Owner    *FilterOptions `json:"owner"`
	Subtype  *FilterOptions `json:"subtype"`
}

func applyFilter(dbCtx *gorm.DB, column string, opts *FilterOptions) *gorm.DB {
	if opts == nil {
		return dbCtx
	}
	if opts.Equal != nil {
		return dbCtx.Where(column+" = ?", *opts.Equal)
	}
	if opts.Contains != nil {
		return dbCtx.Where(column+" LIKE ?", "%"+*opts.Contains+"%")
	}
	return dbCtx
}

func (f *EpdFilters) apply(dbCtx *gorm.DB) *gorm.DB {
	if f == nil {
		return dbCtx
	}
	dbCtx = applyFilter(dbCtx, "name", f.Name)
	dbCtx = applyFilter(dbCtx, "category", f.Category)
	dbCtx = applyFilter(dbCtx, "source", f.Source)
	dbCtx = applyFilter(dbCtx, "region", f.Region)
	dbCtx = applyFilter(dbCtx, "owner", f.Owner)
	dbCtx = applyFilter(dbCtx, "subtype", f.Subtype)
	return dbCtx
}

var epdSortColumns = map[string]string{
	"id":              "id",
	"name":            "name",
	"version":         "version",
	"category":        "category",
	"source":          "source",
	"region":          "region",
	"owner":           "owner",
	"published_date":  "published_date",
	"expiration_date": "expiration_date",
}

type EpdConnection struct {
	Edges      []Edge[EPD] `json:"edges"`
	PageInfo   *PageInfo   `json:"pageInfo"`
	TotalCount int64       `json:"totalCount"`
}

// PaginateEpds pages forward through the filtered catalogue, ordered by the
// requested sort column (id by default) with id as tiebreaker. The total
// count is computed once over the filtered set, before the page window.
// fields selects the columns to fetch; empty means all.
func PaginateEpds(ctx context.Context, first int, after *string, filters *EpdFilters, sortBy *string, fields []string) (*EpdConnection, error) {

	column := "id"
	if sortBy != nil {
		mapped, ok := epdSortColumns[*sortBy]
		if !ok {
			return nil, fmt.Errorf("cannot sort epds by %s", *sortBy)
		}
		column = mapped
	}

	if first <= 0 || first > config.SearchLimit {
		first = config.SearchLimit
	}

	db := config.GetDB()
	dbCtx := filters.apply(db.WithContext(ctx).Model(&EPD{}))

	var totalCount int64
	if err := dbCtx.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		// the cursor encodes the sort value and id, so both must be fetched
		// even when the request shape selects neither
		fields = utils.UniqueSlice(append(fields, column, "id"))
		dbCtx = dbCtx.Select(fields)
	}

	edges, pageInfo, err := fetchEpdPage(dbCtx, first, after, column)
	if err != nil {
		return nil, err
	}

	return &EpdConnection{
		Edges:      edges,
		PageInfo:   pageInfo,
		TotalCount: totalCount,
	}, nil
}

// fetchEpdPage pages with a composite (sort value, id) cursor so non-unique
// sort columns still page without skips or repeats.
func fetchEpdPage(dbCtx *gorm.DB, limit int, after *string, column string) ([]Edge[EPD], *PageInfo, error) {

	nodes := make([]*EPD, 0)

	if column == "id" {
		dbCtx = dbCtx.Order("id")
	} else {
		dbCtx = dbCtx.Order(column + ", id")
	}

	cursorValue, cursorId, err := DecodeCompositeCursor(after)
	if err != nil {
		return nil, nil, err
	}
	if cursorId != "" {
		if column == "id" {
			dbCtx = dbCtx.Where("id > ?", cursorId)
		} else {
			dbCtx = dbCtx.Where(
				fmt.Sprintf("%[1]s > ? OR (%[1]s = ? AND id > ?)", column),
				cursorValue, cursorValue, cursorId)
		}
	}

	dbCtx = dbCtx.Limit(limit + 1)
	if err := dbCtx.Find(&nodes).Error; err != nil {
		return nil, nil, err
	}

	count := 0
	hasNextPage := false
	edges := make([]Edge[EPD], 0, len(nodes))
	for _, node := range nodes {
		if count == limit {
			hasNextPage = true
		}
		if count < limit {
			var edge Edge[EPD]
			edge.Node = node
			edge.Cursor = EncodeCompositeCursor(node.sortValue(column), node.ID)
			edges = append(edges, edge)
			count++
		}
	}

	pageInfo := PageInfo{
		StartCursor: "",
		EndCursor:   "",
		HasNextPage: utils.NewFalse(),
	}
	if count > 0 {
		pageInfo = PageInfo{
			StartCursor: edges[0].Cursor,
			EndCursor:   edges[count-1].Cursor,
			HasNextPage: &hasNextPage,
		}
	}

	return edges, &pageInfo, nil
}

func (e *EPD) sortValue(column string) string {
	switch column {
	case "name":
		return e.Name
	case "version":
		return e.Version
	case "category":
		return e.Category
	case "source":
		return e.Source
	case "region":
		return e.Region
	case "owner":
		return e.Owner
	case "published_date":
		return e.PublishedDate.Format(time.RFC3339)
	case "expiration_date":
		return e.ExpirationDate.Format(time.RFC3339)
	default:
		return e.ID
	}
}

// AddEpds inserts catalogue entries directly, bypassing ingestion. Admin only;
// the whole batch commits once.
func AddEpds(ctx context.Context, inputs []*NewEpd) ([]*EPD, error) {

	if len(inputs) == 0 {
		return []*EPD{}, nil
	}

	epds := make([]*EPD, 0, len(inputs))
	for _, input := range inputs {
		if err := utils.ValidateStruct(input); err != nil {
			return nil, err
		}
		epd := input.toModel()
		epds = append(epds, &epd)
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, epd := range epds {
			if err := tx.Create(epd).Error; err != nil {
				if utils.IsUniqueViolation(err) {
					return utils.ErrorDuplicateOriginVersion
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return epds, nil
}

// DeleteEpds removes catalogue entries by id. A single missing id fails the
// whole batch so nothing is half-deleted.
func DeleteEpds(ctx context.Context, ids []string) ([]string, error) {

	if len(ids) == 0 {
		return []string{}, nil
	}
	ids = utils.UniqueSlice(ids)

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&EPD{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return utils.ErrorRecordNotFound
		}
		return tx.Where("id IN ?", ids).Delete(&EPD{}).Error
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// UpsertImportedEpd persists one normalized registry record. An existing
// (origin_id, version) row is refreshed in place; only the fields a registry
// re-export can legitimately change are overwritten. Returns whether a new
// row was created.
func UpsertImportedEpd(ctx context.Context, db *gorm.DB, epd *EPD) (bool, error) {

	if epd.OriginId == nil || *epd.OriginId == "" {
		return false, errors.New("imported epd has no origin id")
	}

	var existing EPD
	err := db.WithContext(ctx).
		Where("origin_id = ? AND version = ?", *epd.OriginId, epd.Version).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		if err := db.WithContext(ctx).Create(epd).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				return false, utils.ErrorDuplicateOriginVersion
			}
			return false, err
		}
		return true, nil
	}

	err = db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"name":            epd.Name,
		"category":        epd.Category,
		"owner":           epd.Owner,
		"region":          epd.Region,
		"source":          epd.Source,
		"subtype":         epd.Subtype,
		"expiration_date": epd.ExpirationDate,
		"gwp":             epd.Gwp,
	}).Error
	if err != nil {
		return false, err
	}
	epd.ID = existing.ID

	return false, nil
}
