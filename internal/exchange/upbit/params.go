package upbit

import (
	"net/url"
	"strings"
)

type paramEntry struct {
	key   string
	value string
	array bool
}

// Params는 요청 파라미터를 입력 순서 그대로 보존하는 컬렉션입니다.
// 서명용 정규 문자열은 파라미터의 원래 순서에 의존하므로
// url.Values를 쓸 수 없습니다.
type Params struct {
	entries []paramEntry
}

// NewParams는 빈 파라미터 컬렉션을 생성합니다
func NewParams() *Params {
	return &Params{}
}

// Add는 단일 값 파라미터를 추가합니다
func (p *Params) Add(key, value string) *Params {
	p.entries = append(p.entries, paramEntry{key: key, value: value})
	return p
}

// AddArray는 배열 파라미터를 추가합니다. 정규 문자열에서 key[]=value로
// 반복 표기됩니다.
func (p *Params) AddArray(key string, values []string) *Params {
	for _, v := range values {
		p.entries = append(p.entries, paramEntry{key: key, value: v, array: true})
	}
	return p
}

// IsEmpty는 파라미터가 없는지 확인합니다
func (p *Params) IsEmpty() bool {
	return p == nil || len(p.entries) == 0
}

// Canonical은 서명 해시 입력이 되는 정규 문자열을 반환합니다.
// key=value를 &로 연결하며 URL 인코딩을 하지 않습니다.
func (p *Params) Canonical() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(e.key)
		if e.array {
			b.WriteString("[]")
		}
		b.WriteByte('=')
		b.WriteString(e.value)
	}
	return b.String()
}

// Encode는 HTTP 쿼리 문자열용으로 URL 인코딩된 표현을 반환합니다
func (p *Params) Encode() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(e.key))
		if e.array {
			b.WriteString("%5B%5D")
		}
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.value))
	}
	return b.String()
}

// ToMap은 JSON 본문 직렬화용 맵을 반환합니다.
// 배열 파라미터는 키별로 슬라이스로 모읍니다.
func (p *Params) ToMap() map[string]interface{} {
	if p.IsEmpty() {
		return map[string]interface{}{}
	}
	m := make(map[string]interface{}, len(p.entries))
	for _, e := range p.entries {
		if e.array {
			existing, _ := m[e.key].([]string)
			m[e.key] = append(existing, e.value)
			continue
		}
		m[e.key] = e.value
	}
	return m
}
