//go:build unit

package api_test

import (
	"net/http"
	"time"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/domain/user"
	"guest-conversion/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// fakeAuth は Authorization ヘッダの値をロール名として扱う
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		role := user.Role(h[len("Bearer "):])
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func snapshotOf(builders ...*builder.UnlockBuilder) *unlock.Snapshot {
	records := make([]*unlock.Record, 0, len(builders))
	for _, b := range builders {
		records = append(records, b.MustBuild())
	}
	return unlock.NewSnapshot(records, unlock.Stats{Total: len(records)}, fixedNow)
}
