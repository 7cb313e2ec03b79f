package models

import (
	"time"
)

type Identifier interface {
	GetId() string
}

// interface for dataloader result
type Data interface {
	Identifier
	GetDefault(string) Data
}

// key
func (e EPD) GetId() string {
	return e.ID
}

func (e EPD) GetDefault(id string) Data {
	return EPD{
		ID:           id,
		Name:         "Unknown",
		DeclaredUnit: UnitUnknown,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (e ProjectEPD) GetId() string {
	return e.ID
}

func (e ProjectEPD) GetDefault(id string) Data {
	return ProjectEPD{
		ID:           id,
		Name:         "Unknown",
		DeclaredUnit: UnitUnknown,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (a Assembly) GetId() string {
	return a.ID
}

func (a Assembly) GetDefault(id string) Data {
	return Assembly{
		ID:               id,
		Unit:             UnitUnknown,
		LifeTime:         50,
		ConversionFactor: 1,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func (a ProjectAssembly) GetId() string {
	return a.ID
}

func (a ProjectAssembly) GetDefault(id string) Data {
	return ProjectAssembly{
		ID:               id,
		Unit:             UnitUnknown,
		LifeTime:         50,
		ConversionFactor: 1,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func (l AssemblyEPDLink) GetId() string {
	return l.ID
}

func (l AssemblyEPDLink) GetDefault(id string) Data {
	return AssemblyEPDLink{
		ID:                        id,
		ConversionFactor:          1,
		TransportConversionFactor: 1,
		CreatedAt:                 time.Now(),
		UpdatedAt:                 time.Now(),
	}
}

func (l ProjectAssemblyEPDLink) GetId() string {
	return l.ID
}

func (l ProjectAssemblyEPDLink) GetDefault(id string) Data {
	return ProjectAssemblyEPDLink{
		ID:                        id,
		ConversionFactor:          1,
		TransportConversionFactor: 1,
		CreatedAt:                 time.Now(),
		UpdatedAt:                 time.Now(),
	}
}

// loader loading more than one model by one id
type RelatedData interface {
	GetReferenceId() string
}

func (l AssemblyEPDLink) GetReferenceId() string {
	return l.AssemblyId
}

func (l ProjectAssemblyEPDLink) GetReferenceId() string {
	return l.AssemblyId
}
