// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Ambil dari Authorization header atau fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
			log.Println("[DEBUG] Authorization dari Cookie")
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// 2) Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.TrimSpace(fields[1])
	tok = strings.Trim(tok, "\"'")

	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	idRaw, ok := claims["id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id")
	}
	switch v := idRaw.(type) {
	case string:
		return uuid.Parse(strings.TrimSpace(v))
	default:
		return uuid.Nil, fmt.Errorf("invalid user id type")
	}
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user struct {
		IsActive bool
	}
	if err := db.Table("users").Select("is_active").Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("user inactive")
	}
	return nil
}

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if userName, ok := claims["username"].(string); ok {
		c.Locals("username", userName)
	}
}
