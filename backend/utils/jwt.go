package utils

import (
	"errors"
	"fmt"
	"time"

	"questboard/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var ErrNoSession = errors.New("missing session cookie")

// GenerateSessionToken signs a token carrying the user id.
func GenerateSessionToken(userID uint, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(cfg.SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// SetSessionCookie identifies the client as userID on subsequent requests.
func SetSessionCookie(c *fiber.Ctx, userID uint, cfg *config.Config) error {
	token, err := GenerateSessionToken(userID, cfg)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func ClearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.ClearCookie(cfg.SessionCookie)
}

// ExtractUserIDFromCookie validates the session cookie and returns its user id.
func ExtractUserIDFromCookie(c *fiber.Ctx, cfg *config.Config) (uint, error) {
	tokenString := c.Cookies(cfg.SessionCookie)
	if tokenString == "" {
		return 0, ErrNoSession
	}
	return ParseSessionToken(tokenString, cfg)
}

func ParseSessionToken(tokenString string, cfg *config.Config) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid session token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return 0, errors.New("invalid user id in session token")
	}

	return uint(userIDFloat), nil
}
