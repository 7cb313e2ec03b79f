package graph

import (
	"context"
	"errors"

	"github.com/lcadata/assembly_backend/federation"
	"github.com/lcadata/assembly_backend/middlewares"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
)

// assemblyEpdLayers builds the in-memory layer set for one catalogue
// assembly, resolving EPD references through the request dataloaders so the
// roll-up only ever loads what the query touches.
func assemblyEpdLayers(ctx context.Context, assemblyId string) ([]models.EPDLayer, error) {
	links, err := middlewares.GetAssemblyLayers(ctx, assemblyId)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, 2*len(links))
	for _, link := range links {
		ids = append(ids, link.EpdId)
		if link.TransportEpdId != nil {
			ids = append(ids, *link.TransportEpdId)
		}
	}
	epds, errs := middlewares.GetEpds(ctx, utils.UniqueSlice(ids))
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	byId := make(map[string]*models.EPD, len(epds))
	for _, epd := range epds {
		byId[epd.ID] = epd
	}

	layers := make([]models.EPDLayer, 0, len(links))
	for _, link := range links {
		link.Epd = byId[link.EpdId]
		if link.TransportEpdId != nil {
			link.TransportEpd = byId[*link.TransportEpdId]
		}
		layers = append(layers, link)
	}
	return layers, nil
}

func projectAssemblyEpdLayers(ctx context.Context, assemblyId string) ([]models.EPDLayer, error) {
	links, err := middlewares.GetProjectAssemblyLayers(ctx, assemblyId)
	if err != nil {
		return nil, err
	}
	layers := make([]models.EPDLayer, 0, len(links))
	for _, link := range links {
		if err := loadProjectLayerEpds(ctx, link); err != nil {
			return nil, err
		}
		layers = append(layers, link)
	}
	return layers, nil
}

func loadLayerEpds(ctx context.Context, link *models.AssemblyEPDLink) error {
	epd, err := middlewares.GetEpd(ctx, link.EpdId)
	if err != nil {
		return err
	}
	link.Epd = epd
	if link.TransportEpdId != nil {
		transport, err := middlewares.GetEpd(ctx, *link.TransportEpdId)
		if err != nil {
			return err
		}
		link.TransportEpd = transport
	}
	return nil
}

func loadProjectLayerEpds(ctx context.Context, link *models.ProjectAssemblyEPDLink) error {
	epd, err := middlewares.GetProjectEpd(ctx, link.EpdId)
	if err != nil {
		return err
	}
	link.Epd = epd
	if link.TransportEpdId != nil {
		transport, err := middlewares.GetProjectEpd(ctx, *link.TransportEpdId)
		if err != nil {
			return err
		}
		link.TransportEpd = transport
	}
	return nil
}

// SchemaElementAssembly resolves a building-model element, looked up through
// the federation router, to the project assembly it references. Elements
// without an assembly id resolve to nil, not an error.
func SchemaElementAssembly(ctx context.Context, fed *federation.Client, schemaCategoryIds []string, elementId string) (*models.ProjectAssembly, error) {
	token, _ := utils.GetTokenFromContext(ctx)
	element, err := fed.GetSchemaElement(ctx, token, schemaCategoryIds, elementId)
	if err != nil {
		return nil, err
	}
	if element == nil || element.AssemblyId == nil || *element.AssemblyId == "" {
		return nil, nil
	}

	assembly, err := models.GetProjectAssemblyById(ctx, *element.AssemblyId, false)
	if errors.Is(err, utils.ErrorRecordNotFound) {
		return nil, nil
	}
	return assembly, err
}
