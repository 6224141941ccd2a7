package service

import (
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !usernameRegex.MatchString(req.Username) {
		return helper.Error(c, fiber.StatusBadRequest, "Username hanya boleh huruf, angka, dan underscore")
	}

	// cek unik username / telepon
	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("username = ? OR telepon = ?", req.Username, req.Telepon).
		Count(&cnt).Error; err != nil {
		log.Println("[ERROR] Gagal cek duplikasi user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses registrasi")
	}
	if cnt > 0 {
		return helper.Error(c, fiber.StatusConflict, "Username atau telepon sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses registrasi")
	}

	user := userModel.UserModel{
		Username: req.Username,
		Name:     req.Name,
		Telepon:  req.Telepon,
		Password: string(hashed),
		Role:     req.Role,
		Kelas:    req.Kelas,
		Jurusan:  req.Jurusan,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] Gagal simpan user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses registrasi")
	}

	token, err := issueAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal buat token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", authDTO.AuthResponse{
		Token:    token,
		Pengguna: authDTO.ToPenggunaResponse(user),
	})
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := issueAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal buat token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", authDTO.AuthResponse{
		Token:    token,
		Pengguna: authDTO.ToPenggunaResponse(user),
	})
}

// ========================== LOGOUT ==========================
// Token yang masih hidup dimasukkan ke blacklist sampai exp-nya lewat;
// scheduler pembersih menghapus entri yang sudah kadaluarsa.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - token tidak ditemukan")
	}
	tokenString := strings.Trim(fields[1], "\"'")

	expiredAt := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses logout")
	}

	return helper.Success(c, "Logout berhasil", nil)
}

// ========================== TOKEN ==========================
func issueAccessToken(user userModel.UserModel) (string, error) {
	ttlHours := 24
	if raw := configs.GetEnv("JWT_TTL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}

	claims := jwt.MapClaims{
		"id":       user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
