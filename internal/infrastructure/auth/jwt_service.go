package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// JWTServiceImpl implements domain.TokenService. The signing key is loaded
// once from config and never mutated.
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(secretKey, issuer string, sessionTTL, resetTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

// IssueSessionToken implements domain.TokenService.
func (j *JWTServiceImpl) IssueSessionToken(userID uint, role domain.Role) (string, error) {
	return j.sign(userID, role, j.sessionTTL)
}

// IssueResetToken implements domain.TokenService. Same subject convention as
// session tokens: the account ID, not the email.
func (j *JWTServiceImpl) IssueResetToken(userID uint, role domain.Role) (string, error) {
	return j.sign(userID, role, j.resetTTL)
}

func (j *JWTServiceImpl) sign(userID uint, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", userID),
		"role": string(role),
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ExtractSubject implements domain.TokenService.
func (j *JWTServiceImpl) ExtractSubject(tokenString string) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}

// ExtractRole implements domain.TokenService.
func (j *JWTServiceImpl) ExtractRole(tokenString string) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return role, nil
}

// IsExpired implements domain.TokenService. Malformed tokens count as
// expired: they can never be accepted.
func (j *JWTServiceImpl) IsExpired(tokenString string) bool {
	claims, err := j.parse(tokenString)
	if err != nil {
		return true
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}
	return !time.Unix(int64(exp), 0).After(time.Now())
}

// Validate implements domain.TokenService. Parse failures propagate as a
// failed validation, never as a fault.
func (j *JWTServiceImpl) Validate(tokenString, expectedSubject string) bool {
	sub, err := j.ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return sub == expectedSubject && !j.IsExpired(tokenString)
}

// parse verifies the signature and returns the claims. The jwt library
// already rejects expired tokens during Parse; parse therefore only returns
// claims for structurally valid, correctly signed tokens.
func (j *JWTServiceImpl) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
