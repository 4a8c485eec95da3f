package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Market은 호가 통화 기준 시장을 나타냅니다
type Market string

const (
	MarketKRW  Market = "KRW"
	MarketBTC  Market = "BTC"
	MarketUSDT Market = "USDT"
)

// ParseMarket은 시장 코드 문자열을 Market으로 변환합니다
func ParseMarket(s string) (Market, error) {
	switch strings.ToUpper(s) {
	case "KRW":
		return MarketKRW, nil
	case "BTC":
		return MarketBTC, nil
	case "USDT":
		return MarketUSDT, nil
	default:
		return "", newDomainError(ErrInvalidTradingPair, "지원하지 않는 시장입니다: %s", s)
	}
}

// Currency는 자산 통화 코드입니다. 공백이 아니어야 하며 대문자로 정규화됩니다.
type Currency struct {
	value string
}

// 주요 통화 상수
var (
	CurrencyKRW  = Currency{value: "KRW"}
	CurrencyBTC  = Currency{value: "BTC"}
	CurrencyUSDT = Currency{value: "USDT"}
)

// NewCurrency는 통화 코드를 검증하고 대문자로 정규화합니다
func NewCurrency(code string) (Currency, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return Currency{}, newDomainError(ErrInvalidCurrency, "통화 코드는 공백일 수 없습니다")
	}
	return Currency{value: strings.ToUpper(trimmed)}, nil
}

// Value는 정규화된 통화 코드를 반환합니다
func (c Currency) Value() string { return c.value }

func (c Currency) String() string { return c.value }

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// TradingPair는 (시장, 티커) 쌍을 나타냅니다. 예: KRW-BTC
type TradingPair struct {
	market Market
	ticker string
}

// NewTradingPair는 시장과 티커로 거래쌍을 생성합니다.
// 티커는 대문자 영숫자만 허용합니다.
func NewTradingPair(market Market, ticker string) (TradingPair, error) {
	if market != MarketKRW && market != MarketBTC && market != MarketUSDT {
		return TradingPair{}, newDomainError(ErrInvalidTradingPair, "지원하지 않는 시장입니다: %s", market)
	}
	if !tickerPattern.MatchString(ticker) {
		return TradingPair{}, newDomainError(ErrInvalidTradingPair, "티커 형식이 올바르지 않습니다: %s", ticker)
	}
	return TradingPair{market: market, ticker: ticker}, nil
}

// ParseTradingPair는 "KRW-BTC" 형식의 문자열을 거래쌍으로 변환합니다
func ParseTradingPair(s string) (TradingPair, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TradingPair{}, newDomainError(ErrInvalidTradingPair, "거래쌍 형식이 올바르지 않습니다: %s", s)
	}
	market, err := ParseMarket(parts[0])
	if err != nil {
		return TradingPair{}, err
	}
	return NewTradingPair(market, parts[1])
}

// Market은 거래쌍의 시장을 반환합니다
func (p TradingPair) Market() Market { return p.market }

// Ticker는 거래쌍의 티커를 반환합니다
func (p TradingPair) Ticker() string { return p.ticker }

// Value는 "KRW-BTC" 형식의 거래쌍 코드를 반환합니다
func (p TradingPair) Value() string {
	return fmt.Sprintf("%s-%s", p.market, p.ticker)
}

func (p TradingPair) String() string { return p.Value() }
