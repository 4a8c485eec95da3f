package upbit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

const defaultBaseURL = "https://api.upbit.com"

// Client는 Upbit REST API 클라이언트입니다.
// 모든 요청은 전송 전에 엔드포인트 그룹의 레이트리밋 버킷을 통과해야 하며,
// 프라이빗 엔드포인트는 JWT 토큰으로 서명됩니다.
type Client struct {
	signer     *Signer
	baseURL    string
	httpClient *http.Client
	limiter    *RateLimiter
	logger     zerolog.Logger
}

// ClientOption은 클라이언트 옵션입니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 요청 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL은 기본 URL을 변경합니다
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient는 커스텀 HTTP 클라이언트를 설정합니다
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger는 로거를 설정합니다
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient는 새로운 Upbit REST 클라이언트를 생성합니다
func NewClient(accessKey, secretKey string, opts ...ClientOption) *Client {
	c := &Client{
		signer:     NewSigner(accessKey, secretKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    NewRateLimiter(),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// getPublic은 시세 조회 엔드포인트를 호출합니다. 서명이 필요 없습니다.
func (c *Client) getPublic(ctx context.Context, path string, params *Params, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, GroupQuotation, false, out)
}

// getPrivate은 계정 조회 엔드포인트를 호출합니다
func (c *Client) getPrivate(ctx context.Context, path string, params *Params, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, GroupExchangeDefault, true, out)
}

// postPrivate은 주문 생성 엔드포인트를 호출합니다
func (c *Client) postPrivate(ctx context.Context, path string, params *Params, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, params, GroupOrder, true, out)
}

// deletePrivate은 주문 취소 엔드포인트를 호출합니다
func (c *Client) deletePrivate(ctx context.Context, path string, params *Params, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, params, GroupOrder, true, out)
}

// upbitErrorResponse는 거래소의 구조화된 에러 본문입니다
type upbitErrorResponse struct {
	Error struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// do는 레이트리밋 → 서명 → 전송 → 에러 분류를 수행하는 공통 경로입니다.
// 레이트리밋 고갈 시 대기 없이 즉시 실패합니다.
func (c *Client) do(ctx context.Context, method, path string, params *Params, group APIGroup, sign bool, out interface{}) error {
	if err := c.limiter.Allow(group); err != nil {
		return err
	}

	url := c.baseURL + path
	var body io.Reader

	switch method {
	case http.MethodPost:
		encoded, err := json.Marshal(params.ToMap())
		if err != nil {
			return fmt.Errorf("요청 본문 직렬화 실패: %w", err)
		}
		body = bytes.NewReader(encoded)
	default:
		if !params.IsEmpty() {
			url += "?" + params.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("요청 생성 실패: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	if sign {
		token, err := c.signer.GenerateToken(params)
		if err != nil {
			return &exchange.AuthenticationError{Code: "SIGNING_FAILED", Message: err.Error()}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &exchange.NetworkError{Code: "NETWORK_ERROR", Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &exchange.NetworkError{Code: "NETWORK_ERROR", Message: err.Error()}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &exchange.InvalidResponseError{
				Code:    "INVALID_RESPONSE",
				Message: fmt.Sprintf("응답 파싱 실패: %v", err),
			}
		}
		return nil
	}

	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Msg("요청 실패")

	return classifyHTTPError(resp.StatusCode, respBody)
}

// classifyHTTPError는 HTTP 상태 코드를 게이트웨이 에러로 변환합니다.
// 거래소의 에러 본문이 파싱되면 그 메시지를 사용합니다.
func classifyHTTPError(status int, body []byte) error {
	name, message := parseErrorBody(body, status)

	switch {
	case status == http.StatusUnauthorized:
		code := name
		if code == "" {
			code = "UNAUTHORIZED"
		}
		return &exchange.AuthenticationError{Code: code, Message: message}
	case status == http.StatusTooManyRequests:
		return &exchange.RateLimitError{Code: "RATE_LIMIT", Message: message}
	case status >= 400 && status < 500:
		return &exchange.ApiError{Code: "CLIENT_ERROR", Message: message}
	case status >= 500 && status < 600:
		return &exchange.NetworkError{Code: "SERVER_ERROR", Message: message}
	default:
		return &exchange.ApiError{Code: "UNKNOWN", Message: message}
	}
}

func parseErrorBody(body []byte, status int) (name, message string) {
	var parsed upbitErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Name, parsed.Error.Message
	}
	return "", fmt.Sprintf("HTTP %d", status)
}
