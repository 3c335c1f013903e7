package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ai-doctor-chat-app/entity"
)

type JWT struct {
	secretKey []byte
}

func NewJWT(secretKey []byte) *JWT {
	return &JWT{secretKey: secretKey}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"aud":     "ai-doctor-chat-app",
		"iss":     "ai-doctor-chat-app",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 1).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(j.secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func (j *JWT) GetUserIdFromToken(token string) (string, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", jwt.ErrInvalidKey
	}

	return userID, nil
}

func (j *JWT) SecretKey() []byte {
	return j.secretKey
}
