// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Printf("🔥 AuthMiddleware: %s %s", c.Method(), c.OriginalURL())

		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Ambil user_id & validasi user aktif
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			log.Println("[ERROR] ensureUserActive:", err)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		// 6) Simpan info klaim ke context (role & username)
		storeBasicClaimsToLocals(c, claims)

		log.Println("[SUCCESS] Token valid, lanjutkan request")
		return c.Next()
	}
}
