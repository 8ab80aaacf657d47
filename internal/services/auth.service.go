package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService manages JWT token generation and validation for the agent's
// HTTP and WebSocket surface.
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// CustomClaims is the JWT claims structure.
type CustomClaims struct {
	HostName string `json:"host_name"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the authentication service. With an empty
// secretKey the key is loaded from ~/.hwpanel-secret-key, generated and
// persisted there on first run.
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	if secretKey == "" {
		homeDir, _ := os.UserHomeDir()
		keyFile := filepath.Join(homeDir, ".hwpanel-secret-key")
		if homeDir == "" {
			keyFile = filepath.Join(os.TempDir(), ".hwpanel-secret-key")
		}

		if data, err := os.ReadFile(keyFile); err == nil && len(data) > 0 {
			secretKey = strings.TrimSpace(string(data))
			log.Printf("[AUTH] Loaded persisted secret key from %s", keyFile)
		} else {
			hostname, err := os.Hostname()
			if err != nil {
				hostname = "hwpanel-agent"
			}

			randomBytes := make([]byte, 16)
			if _, err := rand.Read(randomBytes); err != nil {
				secretKey = fmt.Sprintf("hwpanel-%s-%d-backup", hostname, time.Now().UnixNano())
				log.Printf("[AUTH] Warning: random generation failed, using fallback key")
			} else {
				secretKey = fmt.Sprintf("hwpanel-%s-%s", hostname, hex.EncodeToString(randomBytes))
			}

			if err := os.WriteFile(keyFile, []byte(secretKey), 0600); err != nil {
				log.Printf("[AUTH] Warning: could not persist secret key to %s: %v", keyFile, err)
			} else {
				log.Printf("[AUTH] Generated and persisted secret key to %s", keyFile)
			}
		}
	}

	if tokenExpiry == 0 {
		tokenExpiry = 90 * 24 * time.Hour
	}

	secretKey = strings.TrimSpace(secretKey)

	// HMAC-SHA256 wants at least 32 key bytes.
	if len(secretKey) < 32 {
		needed := 32 - len(secretKey)
		paddingBytes := make([]byte, needed)
		_, _ = rand.Read(paddingBytes)
		secretKey = secretKey + hex.EncodeToString(paddingBytes)
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}

	return authService
}

// GenerateToken creates a new JWT token bound to this host.
func GenerateToken(hostName string) (string, error) {
	if authService == nil {
		return "", fmt.Errorf("auth service not initialized")
	}

	now := time.Now()
	claims := CustomClaims{
		HostName: hostName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authService.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hwpanel-agent",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authService.secretKey))
}

// ValidateToken verifies and parses a JWT token.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service not initialized")
	}

	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetAuthService returns the initialized auth service.
func GetAuthService() *AuthService {
	return authService
}
