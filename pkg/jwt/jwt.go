package jwt

import (
	"context"
	"time"

	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var authMiddleware *jwt.HertzJWTMiddleware

// Init builds the middleware that turns a bearer token into the acting
// viewer id. Token issuance and rotation stay with the account service; this
// side only verifies.
func Init(secret string) error {
	var err error
	authMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "videotube",
		Key:         []byte(secret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  time.Hour,
		IdentityKey: IdentityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			if v, ok := claims[IdentityKey].(float64); ok {
				return int64(v)
			}
			return int64(0)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthorizationFailedErrCode,
				"message": message,
			})
		},
	})
	return err
}

// MiddlewareFunc rejects requests that carry no valid token.
func MiddlewareFunc() app.HandlerFunc {
	return authMiddleware.MiddlewareFunc()
}

// OptionalMiddlewareFunc extracts the viewer id when a valid token is
// present and lets anonymous requests through untouched.
func OptionalMiddlewareFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := authMiddleware.GetClaimsFromJWT(ctx, c); err == nil {
			if v, ok := claims[IdentityKey].(float64); ok {
				c.Set(IdentityKey, int64(v))
			}
		}
		c.Next(ctx)
	}
}

// ViewerId returns the authenticated user id, 0 for anonymous requests.
func ViewerId(c *app.RequestContext) int64 {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}
