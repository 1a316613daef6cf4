package validate

import "github.com/Gunvolt24/oppify/internal/domain"

// OpportunityPayload — входное представление возможности, общее для HTTP, Kafka и CLI.
// id присваивает БД и во входе не принимается; ссылка допускается и как apply_link, и как link.
type OpportunityPayload struct {
	Title       string      `json:"title" binding:"required"`
	Type        string      `json:"type" binding:"required"`
	Deadline    domain.Date `json:"deadline"`
	Source      string      `json:"source" binding:"required"`
	ApplyLink   string      `json:"apply_link"`
	Link        string      `json:"link"`
	Eligibility *string     `json:"eligibility"`
}

// ToDomain — apply_link приоритетнее link; отсутствующий eligibility — пустая строка.
func (p *OpportunityPayload) ToDomain() *domain.Opportunity {
	opp := &domain.Opportunity{
		Title:     p.Title,
		Type:      domain.OpportunityType(p.Type),
		Deadline:  p.Deadline,
		Source:    p.Source,
		ApplyLink: p.ApplyLink,
	}
	if opp.ApplyLink == "" {
		opp.ApplyLink = p.Link
	}
	if p.Eligibility != nil {
		opp.Eligibility = *p.Eligibility
	}
	return opp
}
