package directives

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/federation"
	"github.com/lcadata/assembly_backend/middlewares"
	"github.com/lcadata/assembly_backend/utils"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const projectAccessTTL = 10 * time.Minute

func Auth(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {
	claims := middlewares.CtxValue(ctx)
	if claims == nil {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}

	ctx = utils.SetUserIdInContext(ctx, claims.UserId)
	ctx = utils.SetUserNameInContext(ctx, claims.Name)
	ctx = utils.SetIsAdminInContext(ctx, claims.Admin)

	return next(ctx)
}

// Admin guards mutations on the shared catalogue.
func Admin(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {
	claims := middlewares.CtxValue(ctx)
	if claims == nil {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}
	if !claims.Admin {
		return nil, &gqlerror.Error{
			Message: "Unauthorized",
		}
	}

	ctx = utils.SetUserIdInContext(ctx, claims.UserId)
	ctx = utils.SetUserNameInContext(ctx, claims.Name)
	ctx = utils.SetIsAdminInContext(ctx, true)

	return next(ctx)
}

// AuthorizeProject verifies via the federation router that the caller's token
// can see the project. Successful checks are cached per user and project so a
// burst of mutations does not hammer the router.
func AuthorizeProject(ctx context.Context, fed *federation.Client, projectId string) error {
	claims := middlewares.CtxValue(ctx)
	if claims == nil {
		return &gqlerror.Error{
			Message: "Access Denied",
		}
	}
	if projectId == "" {
		return &gqlerror.Error{
			Message: "project id is required",
		}
	}

	key := "ProjectAccess:" + claims.UserId + ":" + projectId
	var allowed bool
	exists, err := config.GetRedisObject(key, &allowed)
	if err != nil {
		return err
	}
	if exists && allowed {
		return nil
	}

	token, _ := utils.GetTokenFromContext(ctx)
	ok, err := fed.ProjectExists(ctx, token, projectId)
	if err != nil {
		return err
	}
	if !ok {
		return &gqlerror.Error{
			Message: "Unauthorized",
		}
	}

	if err := config.SetRedisObject(key, true, projectAccessTTL); err != nil {
		return err
	}
	return nil
}
