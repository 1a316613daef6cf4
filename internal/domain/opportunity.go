package domain

import (
	"fmt"
	"strings"
)

// OpportunityType — закрытый набор типов возможностей.
type OpportunityType string

const (
	TypeInternship  OpportunityType = "internship"
	TypeScholarship OpportunityType = "scholarship"
	TypeHackathon   OpportunityType = "hackathon"
	TypeGrant       OpportunityType = "grant"
)

// KnownTypes — все допустимые типы в порядке вывода в сообщениях об ошибках.
var KnownTypes = []OpportunityType{TypeInternship, TypeScholarship, TypeHackathon, TypeGrant}

// ParseOpportunityType — нормализует (trim + lower) и проверяет тип.
// Неизвестный тип → ErrUnknownType.
func ParseOpportunityType(raw string) (OpportunityType, error) {
	t := OpportunityType(NormalizeType(raw))
	for _, known := range KnownTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, raw)
}

// NormalizeType — каноническая форма строки типа (используется и в фильтрах).
func NormalizeType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Opportunity — стажировка/стипендия/хакатон/грант.
type Opportunity struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Type        OpportunityType `json:"type"`
	Deadline    Date            `json:"deadline"`
	Source      string          `json:"source"`
	ApplyLink   string          `json:"apply_link"`
	Eligibility string          `json:"eligibility"`
}

// OpportunityFilter — фильтры списка; nil/пустое значение не ограничивает выборку.
type OpportunityFilter struct {
	Type     string
	Interest string
	Month    *int
}

// IsEmpty — true, если ни один фильтр не задан.
func (f OpportunityFilter) IsEmpty() bool {
	return f.Type == "" && f.Interest == "" && f.Month == nil
}
