package upbit

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signer는 Upbit 인증 토큰을 생성합니다.
// 토큰은 HS512로 서명된 JWT이며 호출마다 새 nonce를 가집니다.
// 생성 후 읽기 전용이므로 여러 고루틴에서 공유해도 안전합니다.
type Signer struct {
	accessKey string
	secretKey []byte
}

// NewSigner는 API 키 쌍으로 서명자를 생성합니다
func NewSigner(accessKey, secretKey string) *Signer {
	return &Signer{
		accessKey: accessKey,
		secretKey: []byte(secretKey),
	}
}

// GenerateToken은 요청 파라미터에 대한 인증 토큰을 생성합니다.
// 파라미터가 있으면 정규 문자열의 SHA-512 해시를 페이로드에 포함합니다.
func (s *Signer) GenerateToken(params *Params) (string, error) {
	claims := jwt.MapClaims{
		"access_key": s.accessKey,
		"nonce":      uuid.NewString(),
	}

	if !params.IsEmpty() {
		claims["query_hash"] = QueryHash(params)
		claims["query_hash_alg"] = "SHA512"
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("인증 토큰 서명 실패: %w", err)
	}
	return token, nil
}

// QueryHash는 정규 파라미터 문자열의 SHA-512 해시를 16진수로 반환합니다
func QueryHash(params *Params) string {
	sum := sha512.Sum512([]byte(params.Canonical()))
	return hex.EncodeToString(sum[:])
}
