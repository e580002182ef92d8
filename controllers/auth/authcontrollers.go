package authcontroller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/middlewares"
	"github.com/raveogahee/timecard/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	adminUsername     = "admin"
	minPasswordLength = 4
)

var errPasswordNotConfigured = errors.New("admin password is not configured")

type verifyInput struct {
	Password string `json:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// checkAdminPassword prefers the bcrypt hash stored in settings and falls
// back to ADMIN_PASSWORD until a hash has been saved.
func checkAdminPassword(db *gorm.DB, password string) (bool, error) {
	var setting models.Setting
	err := db.Where(&models.Setting{Key: models.SettingAdminPasswordHash}).First(&setting).Error
	switch {
	case err == nil && setting.Value != "":
		return bcrypt.CompareHashAndPassword([]byte(setting.Value), []byte(password)) == nil, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return false, err
	}

	if config.AdminPassword == "" {
		return false, errPasswordNotConfigured
	}
	return password == config.AdminPassword, nil
}

func issueToken() (string, error) {
	claims := &config.JWTClaims{
		Username: adminUsername,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "timecard",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTKey)
}

func Verify(c *gin.Context) {
	var input verifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "パスワードが必要です"})
		return
	}

	ok, err := checkAdminPassword(models.DB, input.Password)
	if errors.Is(err, errPasswordNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "管理パスワードが設定されていません"})
		return
	}
	if err != nil {
		log.Printf("verify admin password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "パスワードが正しくありません"})
		return
	}

	token, err := issueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func ChangePassword(c *gin.Context) {
	var input changePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.CurrentPassword == "" || input.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "現在のパスワードと新しいパスワードが必要です"})
		return
	}
	if len([]rune(input.NewPassword)) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "パスワードは4文字以上で入力してください"})
		return
	}

	ok, err := checkAdminPassword(models.DB, input.CurrentPassword)
	if err != nil && !errors.Is(err, errPasswordNotConfigured) {
		log.Printf("verify admin password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "現在のパスワードが正しくありません"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setting := models.Setting{Key: models.SettingAdminPasswordHash, Value: string(hashed)}
	err = models.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		log.Printf("save admin password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードの保存に失敗しました: " + err.Error()})
		return
	}

	log.Printf("admin password changed by %s", c.GetString(middlewares.AdminContextKey))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "パスワードを変更しました"})
}
