//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/oppify/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeOpportunity — валидная стажировка с Internshala; поля правятся опциями.
func MakeOpportunity(opts ...func(*domain.Opportunity)) domain.Opportunity {
	o := domain.Opportunity{
		Title:       "Backend intern " + UniqSuffix(),
		Type:        domain.TypeInternship,
		Deadline:    domain.NewDate(2024, time.March, 15),
		Source:      "Internshala",
		ApplyLink:   "https://internshala.com/i/" + UniqSuffix(),
		Eligibility: "CS students interested in Go and AI",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithType(t domain.OpportunityType, source string) func(*domain.Opportunity) {
	return func(o *domain.Opportunity) {
		o.Type = t
		o.Source = source
	}
}

func WithDeadline(d domain.Date) func(*domain.Opportunity) {
	return func(o *domain.Opportunity) { o.Deadline = d }
}

func WithEligibility(s string) func(*domain.Opportunity) {
	return func(o *domain.Opportunity) { o.Eligibility = s }
}

// MakeUser — пользователь с уникальным email и заранее заданным хэшем.
func MakeUser() domain.User {
	return domain.User{
		Name:           "Student " + UniqSuffix(),
		Email:          "student-" + UniqSuffix() + "@example.com",
		HashedPassword: "$2a$04$placeholderhashplaceholderhashplaceholderhash",
		Skills:         []string{"go", "sql"},
		Interests:      []string{"ai"},
	}
}
