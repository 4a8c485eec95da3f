package exchange

import "fmt"

// 게이트웨이 에러 분류 체계. 어댑터 내부의 모든 에러(전송, 파싱,
// 도메인 값 생성 실패)는 게이트웨이 경계를 넘기 전에 이 다섯 변형 중
// 하나로 변환됩니다.

// NetworkError는 전송 실패 또는 거래소 서버 오류(5xx)입니다
type NetworkError struct {
	Code    string
	Message string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("네트워크 오류 [%s]: %s", e.Code, e.Message)
}

// AuthenticationError는 인증 실패(401)입니다
type AuthenticationError struct {
	Code    string
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("인증 오류 [%s]: %s", e.Code, e.Message)
}

// RateLimitError는 요청 한도 초과(429 또는 로컬 버킷 고갈)입니다
type RateLimitError struct {
	Code    string
	Message string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("요청 한도 초과 [%s]: %s", e.Code, e.Message)
}

// ApiError는 거래소의 업무 규칙 거절(그 외 4xx)입니다
type ApiError struct {
	Code    string
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("API 오류 [%s]: %s", e.Code, e.Message)
}

// InvalidResponseError는 응답을 도메인으로 변환할 수 없을 때 반환됩니다
type InvalidResponseError struct {
	Code    string
	Message string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("잘못된 응답 [%s]: %s", e.Code, e.Message)
}
