package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"

	"github.com/lcadata/assembly_backend/directives"
	"github.com/lcadata/assembly_backend/middlewares"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
)

// MetaFields is the resolver for the metaFields field.
func (r *assemblyResolver) MetaFields(ctx context.Context, obj *models.Assembly) (map[string]interface{}, error) {
	return obj.MetaFields, nil
}

// Layers is the resolver for the layers field.
func (r *assemblyResolver) Layers(ctx context.Context, obj *models.Assembly) ([]*models.AssemblyEPDLink, error) {
	return middlewares.GetAssemblyLayers(ctx, obj.ID)
}

// Gwp is the resolver for the gwp field.
func (r *assemblyResolver) Gwp(ctx context.Context, obj *models.Assembly, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := assemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyIndicator(layers, "gwp", phases), nil
}

// TransportGwp is the resolver for the transportGwp field.
func (r *assemblyResolver) TransportGwp(ctx context.Context, obj *models.Assembly, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := assemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyTransportIndicator(layers, "gwp", phases), nil
}

// Epd is the resolver for the epd field.
func (r *assemblyLayerResolver) Epd(ctx context.Context, obj *models.AssemblyEPDLink) (*models.EPD, error) {
	return middlewares.GetEpd(ctx, obj.EpdId)
}

// TransportEpd is the resolver for the transportEpd field.
func (r *assemblyLayerResolver) TransportEpd(ctx context.Context, obj *models.AssemblyEPDLink) (*models.EPD, error) {
	if obj.TransportEpdId == nil {
		return nil, nil
	}
	return middlewares.GetEpd(ctx, *obj.TransportEpdId)
}

// Gwp is the resolver for the gwp field.
func (r *assemblyLayerResolver) Gwp(ctx context.Context, obj *models.AssemblyEPDLink, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	if err := loadLayerEpds(ctx, obj); err != nil {
		return 0, err
	}
	return models.PhaseValue(obj.IndicatorPhases("gwp"), phases) * obj.LayerConversionFactor(), nil
}

// TransportGwp is the resolver for the transportGwp field.
func (r *assemblyLayerResolver) TransportGwp(ctx context.Context, obj *models.AssemblyEPDLink, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	if err := loadLayerEpds(ctx, obj); err != nil {
		return 0, err
	}
	return models.TransportIndicator(obj, "gwp", phases), nil
}

// Conversions is the resolver for the conversions field.
func (r *ePDResolver) Conversions(ctx context.Context, obj *models.EPD) ([]*models.Conversion, error) {
	conversions := make([]*models.Conversion, 0, len(obj.Conversions))
	for i := range obj.Conversions {
		conversions = append(conversions, &obj.Conversions[i])
	}
	return conversions, nil
}

// AddEpds is the resolver for the addEpds field.
func (r *mutationResolver) AddEpds(ctx context.Context, epds []*models.NewEpd) ([]*models.EPD, error) {
	return models.AddEpds(ctx, epds)
}

// DeleteEpds is the resolver for the deleteEpds field.
func (r *mutationResolver) DeleteEpds(ctx context.Context, ids []string) ([]string, error) {
	return models.DeleteEpds(ctx, ids)
}

// AddProjectEpds is the resolver for the addProjectEpds field.
func (r *mutationResolver) AddProjectEpds(ctx context.Context, projectID string, epdIds []string) ([]*models.ProjectEPD, error) {
	return models.AddProjectEpds(ctx, projectID, epdIds)
}

// UpdateProjectEpd is the resolver for the updateProjectEpd field.
func (r *mutationResolver) UpdateProjectEpd(ctx context.Context, projectID string, epd models.UpdateProjectEpdInput) (*models.ProjectEPD, error) {
	return models.UpdateProjectEpd(ctx, projectID, &epd)
}

// DeleteProjectEpds is the resolver for the deleteProjectEpds field.
func (r *mutationResolver) DeleteProjectEpds(ctx context.Context, ids []string) ([]string, error) {
	return models.DeleteProjectEpds(ctx, ids)
}

// AddAssemblies is the resolver for the addAssemblies field.
func (r *mutationResolver) AddAssemblies(ctx context.Context, assemblies []*models.NewAssembly) ([]*models.Assembly, error) {
	return models.AddAssemblies(ctx, assemblies)
}

// UpdateAssemblies is the resolver for the updateAssemblies field.
func (r *mutationResolver) UpdateAssemblies(ctx context.Context, assemblies []*models.UpdateAssemblyInput) ([]*models.Assembly, error) {
	return models.UpdateAssemblies(ctx, assemblies)
}

// DeleteAssemblies is the resolver for the deleteAssemblies field.
func (r *mutationResolver) DeleteAssemblies(ctx context.Context, ids []string) ([]string, error) {
	return models.DeleteAssemblies(ctx, ids)
}

// AddAssemblyLayers is the resolver for the addAssemblyLayers field.
func (r *mutationResolver) AddAssemblyLayers(ctx context.Context, id string, layers []*models.NewAssemblyLayer) ([]*models.AssemblyEPDLink, error) {
	return models.AddAssemblyLayers(ctx, id, layers)
}

// UpdateAssemblyLayers is the resolver for the updateAssemblyLayers field.
func (r *mutationResolver) UpdateAssemblyLayers(ctx context.Context, id string, layers []*models.UpdateAssemblyLayerInput) ([]*models.AssemblyEPDLink, error) {
	return models.UpdateAssemblyLayers(ctx, id, layers)
}

// DeleteAssemblyLayers is the resolver for the deleteAssemblyLayers field.
func (r *mutationResolver) DeleteAssemblyLayers(ctx context.Context, id string, layers []string) ([]string, error) {
	return models.DeleteAssemblyLayers(ctx, id, layers)
}

// AddProjectAssemblies is the resolver for the addProjectAssemblies field.
func (r *mutationResolver) AddProjectAssemblies(ctx context.Context, assemblies []*models.NewProjectAssembly) ([]*models.ProjectAssembly, error) {
	authorized := map[string]bool{}
	for _, input := range assemblies {
		if authorized[input.ProjectId] {
			continue
		}
		if err := directives.AuthorizeProject(ctx, r.Federation, input.ProjectId); err != nil {
			return nil, err
		}
		authorized[input.ProjectId] = true
	}
	return models.AddProjectAssemblies(ctx, assemblies)
}

// AddProjectAssembliesFromAssemblies is the resolver for the addProjectAssembliesFromAssemblies field.
func (r *mutationResolver) AddProjectAssembliesFromAssemblies(ctx context.Context, assemblies []string, projectID string) ([]*models.ProjectAssembly, error) {
	if err := directives.AuthorizeProject(ctx, r.Federation, projectID); err != nil {
		return nil, err
	}
	return models.AddProjectAssembliesFromAssemblies(ctx, assemblies, projectID)
}

// UpdateProjectAssemblies is the resolver for the updateProjectAssemblies field.
func (r *mutationResolver) UpdateProjectAssemblies(ctx context.Context, projectID string, assemblies []*models.UpdateAssemblyInput) ([]*models.ProjectAssembly, error) {
	return models.UpdateProjectAssemblies(ctx, projectID, assemblies)
}

// DeleteProjectAssemblies is the resolver for the deleteProjectAssemblies field.
func (r *mutationResolver) DeleteProjectAssemblies(ctx context.Context, projectID string, ids []string) ([]string, error) {
	return models.DeleteProjectAssemblies(ctx, projectID, ids)
}

// AddProjectAssemblyLayers is the resolver for the addProjectAssemblyLayers field.
func (r *mutationResolver) AddProjectAssemblyLayers(ctx context.Context, projectID string, id string, layers []*models.NewAssemblyLayer) ([]*models.ProjectAssemblyEPDLink, error) {
	return models.AddProjectAssemblyLayers(ctx, projectID, id, layers)
}

// UpdateProjectAssemblyLayers is the resolver for the updateProjectAssemblyLayers field.
func (r *mutationResolver) UpdateProjectAssemblyLayers(ctx context.Context, projectID string, id string, layers []*models.UpdateAssemblyLayerInput) ([]*models.ProjectAssemblyEPDLink, error) {
	return models.UpdateProjectAssemblyLayers(ctx, projectID, id, layers)
}

// DeleteProjectAssemblyLayers is the resolver for the deleteProjectAssemblyLayers field.
func (r *mutationResolver) DeleteProjectAssemblyLayers(ctx context.Context, projectID string, id string, layers []string) ([]string, error) {
	return models.DeleteProjectAssemblyLayers(ctx, projectID, id, layers)
}

// Origin is the resolver for the origin field.
func (r *projectAssemblyResolver) Origin(ctx context.Context, obj *models.ProjectAssembly) (*models.Assembly, error) {
	if obj.OriginId == nil {
		return nil, nil
	}
	return middlewares.GetAssembly(ctx, *obj.OriginId)
}

// MetaFields is the resolver for the metaFields field.
func (r *projectAssemblyResolver) MetaFields(ctx context.Context, obj *models.ProjectAssembly) (map[string]interface{}, error) {
	return obj.MetaFields, nil
}

// Layers is the resolver for the layers field.
func (r *projectAssemblyResolver) Layers(ctx context.Context, obj *models.ProjectAssembly) ([]*models.ProjectAssemblyEPDLink, error) {
	return middlewares.GetProjectAssemblyLayers(ctx, obj.ID)
}

// Gwp is the resolver for the gwp field.
func (r *projectAssemblyResolver) Gwp(ctx context.Context, obj *models.ProjectAssembly, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := projectAssemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyIndicator(layers, "gwp", phases), nil
}

// TransportGwp is the resolver for the transportGwp field.
func (r *projectAssemblyResolver) TransportGwp(ctx context.Context, obj *models.ProjectAssembly, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := projectAssemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyTransportIndicator(layers, "gwp", phases), nil
}

// Epd is the resolver for the epd field.
func (r *projectAssemblyLayerResolver) Epd(ctx context.Context, obj *models.ProjectAssemblyEPDLink) (*models.ProjectEPD, error) {
	return middlewares.GetProjectEpd(ctx, obj.EpdId)
}

// TransportEpd is the resolver for the transportEpd field.
func (r *projectAssemblyLayerResolver) TransportEpd(ctx context.Context, obj *models.ProjectAssemblyEPDLink) (*models.ProjectEPD, error) {
	if obj.TransportEpdId == nil {
		return nil, nil
	}
	return middlewares.GetProjectEpd(ctx, *obj.TransportEpdId)
}

// Gwp is the resolver for the gwp field.
func (r *projectAssemblyLayerResolver) Gwp(ctx context.Context, obj *models.ProjectAssemblyEPDLink, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	if err := loadProjectLayerEpds(ctx, obj); err != nil {
		return 0, err
	}
	return models.PhaseValue(obj.IndicatorPhases("gwp"), phases) * obj.LayerConversionFactor(), nil
}

// TransportGwp is the resolver for the transportGwp field.
func (r *projectAssemblyLayerResolver) TransportGwp(ctx context.Context, obj *models.ProjectAssemblyEPDLink, phases []string) (float64, error) {
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	if err := loadProjectLayerEpds(ctx, obj); err != nil {
		return 0, err
	}
	return models.TransportIndicator(obj, "gwp", phases), nil
}

// Origin is the resolver for the origin field.
func (r *projectEPDResolver) Origin(ctx context.Context, obj *models.ProjectEPD) (*models.EPD, error) {
	return middlewares.GetEpd(ctx, obj.OriginId)
}

// Conversions is the resolver for the conversions field.
func (r *projectEPDResolver) Conversions(ctx context.Context, obj *models.ProjectEPD) ([]*models.Conversion, error) {
	conversions := make([]*models.Conversion, 0, len(obj.Conversions))
	for i := range obj.Conversions {
		conversions = append(conversions, &obj.Conversions[i])
	}
	return conversions, nil
}

// Epds is the resolver for the epds field.
func (r *queryResolver) Epds(ctx context.Context, first int, after *string, filters *models.EpdFilters, sortBy *string) (*models.EpdConnection, error) {
	fields, err := utils.GetPaginatedQueryFields(ctx, models.EPD{})
	if err != nil {
		return nil, err
	}
	return models.PaginateEpds(ctx, first, after, filters, sortBy, fields)
}

// Epd is the resolver for the epd field.
func (r *queryResolver) Epd(ctx context.Context, id string) (*models.EPD, error) {
	return models.GetEpd(ctx, id)
}

// ProjectEpds is the resolver for the projectEpds field.
func (r *queryResolver) ProjectEpds(ctx context.Context, projectID string, filters *models.EpdFilters) ([]*models.ProjectEPD, error) {
	fields, err := utils.GetQueryFields(ctx, models.ProjectEPD{})
	if err != nil {
		return nil, err
	}
	return models.GetProjectEpds(ctx, projectID, filters, fields)
}

// ProjectEpd is the resolver for the projectEpd field.
func (r *queryResolver) ProjectEpd(ctx context.Context, projectID string, id string) (*models.ProjectEPD, error) {
	return models.GetProjectEpd(ctx, projectID, id)
}

// Assemblies is the resolver for the assemblies field.
func (r *queryResolver) Assemblies(ctx context.Context) ([]*models.Assembly, error) {
	return models.GetAssemblies(ctx, false)
}

// Assembly is the resolver for the assembly field.
func (r *queryResolver) Assembly(ctx context.Context, id string) (*models.Assembly, error) {
	return models.GetAssembly(ctx, id, false)
}

// ProjectAssemblies is the resolver for the projectAssemblies field.
func (r *queryResolver) ProjectAssemblies(ctx context.Context, projectID string) ([]*models.ProjectAssembly, error) {
	return models.GetProjectAssemblies(ctx, projectID, false)
}

// ProjectAssembly is the resolver for the projectAssembly field.
func (r *queryResolver) ProjectAssembly(ctx context.Context, projectID string, id string) (*models.ProjectAssembly, error) {
	return models.GetProjectAssembly(ctx, projectID, id, false)
}

// SchemaElementAssembly is the resolver for the schemaElementAssembly field.
func (r *queryResolver) SchemaElementAssembly(ctx context.Context, schemaCategoryIds []string, schemaElementID string) (*models.ProjectAssembly, error) {
	return SchemaElementAssembly(ctx, r.Federation, schemaCategoryIds, schemaElementID)
}

// Assembly returns AssemblyResolver implementation.
func (r *Resolver) Assembly() AssemblyResolver { return &assemblyResolver{r} }

// AssemblyLayer returns AssemblyLayerResolver implementation.
func (r *Resolver) AssemblyLayer() AssemblyLayerResolver { return &assemblyLayerResolver{r} }

// EPD returns EPDResolver implementation.
func (r *Resolver) EPD() EPDResolver { return &ePDResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// ProjectAssembly returns ProjectAssemblyResolver implementation.
func (r *Resolver) ProjectAssembly() ProjectAssemblyResolver { return &projectAssemblyResolver{r} }

// ProjectAssemblyLayer returns ProjectAssemblyLayerResolver implementation.
func (r *Resolver) ProjectAssemblyLayer() ProjectAssemblyLayerResolver {
	return &projectAssemblyLayerResolver{r}
}

// ProjectEPD returns ProjectEPDResolver implementation.
func (r *Resolver) ProjectEPD() ProjectEPDResolver { return &projectEPDResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type assemblyResolver struct{ *Resolver }
type assemblyLayerResolver struct{ *Resolver }
type ePDResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type projectAssemblyResolver struct{ *Resolver }
type projectAssemblyLayerResolver struct{ *Resolver }
type projectEPDResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

// !!! WARNING !!!
// The code below was going to be deleted when updating resolvers. It has been copied here so you have
// one last chance to move it out of harms way if you want. There are two reasons this happens:
//   - When renaming or deleting a resolver the old code will be put in here. You can safely delete
//     it when you're done.
//   - You have helper methods in this file. Move them out to keep these resolver files clean.
func (r *assemblyResolver) Indicator(ctx context.Context, obj *models.Assembly, indicator string, phases []string) (float64, error) {
	if err := models.CheckIndicator(indicator); err != nil {
		return 0, err
	}
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := assemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyIndicator(layers, indicator, phases), nil
}
func (r *projectAssemblyResolver) Indicator(ctx context.Context, obj *models.ProjectAssembly, indicator string, phases []string) (float64, error) {
	if err := models.CheckIndicator(indicator); err != nil {
		return 0, err
	}
	if err := models.CheckPhases(phases); err != nil {
		return 0, err
	}
	layers, err := projectAssemblyEpdLayers(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return models.AssemblyIndicator(layers, indicator, phases), nil
}
