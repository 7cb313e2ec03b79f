package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lcadata/assembly_backend/utils"
)

type authString string

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		auth = strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, _ := validate.Claims.(*utils.JwtCustomClaim)

		ctx := context.WithValue(c.Request.Context(), authString("auth"), customClaim)
		// The raw token is kept around for outgoing federation calls.
		ctx = utils.SetTokenInContext(ctx, auth)
		ctx = utils.SetUserIdInContext(ctx, customClaim.UserId)
		ctx = utils.SetUserNameInContext(ctx, customClaim.Name)
		ctx = utils.SetIsAdminInContext(ctx, customClaim.Admin)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CtxValue(ctx context.Context) *utils.JwtCustomClaim {
	raw, _ := ctx.Value(authString("auth")).(*utils.JwtCustomClaim)
	return raw
}
