// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "medicore/database/repository/user"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const authCacheTTL = 5 * time.Minute

// JWTAuthMiddleware validates the bearer token, confirms its hash is
// the account's current session token, and stores the caller identity
// in the context. The hash lookup goes through the Redis auth cache
// before falling back to Mongo, so revocation takes effect within the
// cache TTL at worst and immediately when the revoker evicts the entry.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		if !sessionIsCurrent(c.Request.Context(), users, identity.UserID, tokenHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("userEmail", identity.Email)
		c.Set("userRole", identity.Role)
		c.Next()
	}
}

func sessionIsCurrent(ctx context.Context, users userRepo.UserRepository, userID, tokenHash string) bool {
	cache := utils.GetAuthCacheClient()
	key := "auth:" + tokenHash

	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		return cached == userID
	} else if err != redis.Nil {
		utils.GetLogger().Warn("auth cache lookup failed: " + err.Error())
	}

	usr, err := users.GetByTokenHash(tokenHash)
	if err != nil || usr == nil || usr.ID != userID {
		return false
	}

	if err := cache.Set(ctx, key, usr.ID, authCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("auth cache store failed: " + err.Error())
	}
	return true
}
