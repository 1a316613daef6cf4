package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// PolicyKind — вид политики доверенных источников.
type PolicyKind string

const (
	// PolicyMapping — строгое соответствие тип → единственный источник.
	PolicyMapping PolicyKind = "mapping"
	// PolicyAllowList — плоский список разрешённых источников для любого типа.
	PolicyAllowList PolicyKind = "allowlist"
)

// DefaultMapping — соответствие по умолчанию.
func DefaultMapping() map[string]string {
	return map[string]string{
		"internship":  "Internshala",
		"hackathon":   "Devpost",
		"scholarship": "Scholarships.com",
		"grant":       "Govt Portal",
	}
}

// DefaultAllowList — список по умолчанию.
func DefaultAllowList() []string {
	return []string{"Internshala", "Devpost", "Scholarships.com", "HackerEarth"}
}

// TrustConfig — исходные данные для построения политики.
type TrustConfig struct {
	Kind      PolicyKind
	Mapping   map[string]string
	AllowList []string
}

// Policy — чистая функция (type, source) над неизменяемой конфигурацией.
type Policy interface {
	Kind() PolicyKind
	Check(opportunityType domain.OpportunityType, source string) error
	Listed(source string) bool
}

// NewPolicy — строит политику; неизвестный вид — ошибка конфигурации.
func NewPolicy(cfg TrustConfig) (Policy, error) {
	switch PolicyKind(strings.ToLower(strings.TrimSpace(string(cfg.Kind)))) {
	case PolicyMapping, "":
		return NewMappingPolicy(cfg.Mapping), nil
	case PolicyAllowList:
		return NewAllowListPolicy(cfg.AllowList), nil
	default:
		return nil, fmt.Errorf("unknown trust policy %q (want %q or %q)", cfg.Kind, PolicyMapping, PolicyAllowList)
	}
}

// MappingPolicy — политика "тип → источник".
// Вдобавок скрывает из списков записи с источниками вне значений соответствия:
// при смене конфигурации ранее сохранённые записи пропадают из выдачи, оставаясь в БД.
type MappingPolicy struct {
	expected map[domain.OpportunityType]string
	listed   map[string]struct{}
}

// NewMappingPolicy — копирует соответствие (ключи приводятся к нижнему регистру).
// Пустое соответствие → DefaultMapping.
func NewMappingPolicy(mapping map[string]string) *MappingPolicy {
	if len(mapping) == 0 {
		mapping = DefaultMapping()
	}
	p := &MappingPolicy{
		expected: make(map[domain.OpportunityType]string, len(mapping)),
		listed:   make(map[string]struct{}, len(mapping)),
	}
	for typ, source := range mapping {
		source = strings.TrimSpace(source)
		p.expected[domain.OpportunityType(domain.NormalizeType(typ))] = source
		p.listed[source] = struct{}{}
	}
	return p
}

func (p *MappingPolicy) Kind() PolicyKind { return PolicyMapping }

func (p *MappingPolicy) Check(opportunityType domain.OpportunityType, source string) error {
	expected, ok := p.Expected(opportunityType)
	if !ok || source != expected {
		return &domain.InvalidSourceError{Type: string(opportunityType), Source: source, Expected: expected}
	}
	return nil
}

func (p *MappingPolicy) Listed(source string) bool {
	_, ok := p.listed[source]
	return ok
}

// Expected — ожидаемый источник для типа (регистр и пробелы типа не важны).
func (p *MappingPolicy) Expected(opportunityType domain.OpportunityType) (string, bool) {
	s, ok := p.expected[domain.OpportunityType(domain.NormalizeType(string(opportunityType)))]
	return s, ok
}

// AllowListPolicy — политика "источник из списка", тип не учитывается.
type AllowListPolicy struct {
	allowed []string
}

// NewAllowListPolicy — копирует список (порядок сохраняется для сообщений).
// Список без непустых значений → DefaultAllowList.
func NewAllowListPolicy(sources []string) *AllowListPolicy {
	allowed := normalizeSources(sources)
	if len(allowed) == 0 {
		allowed = normalizeSources(DefaultAllowList())
	}
	return &AllowListPolicy{allowed: allowed}
}

// normalizeSources — обрезает пробелы, убирает пустые значения и дубликаты.
func normalizeSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func (p *AllowListPolicy) Kind() PolicyKind { return PolicyAllowList }

func (p *AllowListPolicy) Check(opportunityType domain.OpportunityType, source string) error {
	if !slices.Contains(p.allowed, source) {
		return &domain.InvalidSourceError{
			Type:    string(opportunityType),
			Source:  source,
			Allowed: p.Allowed(),
		}
	}
	return nil
}

// Listed — список не фильтрует выдачу.
func (p *AllowListPolicy) Listed(string) bool { return true }

// Allowed — копия списка разрешённых источников.
func (p *AllowListPolicy) Allowed() []string { return slices.Clone(p.allowed) }
