package domain

import "time"

// Application — отклик пользователя на возможность (связь многие-ко-многим).
type Application struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	OpportunityID int64     `json:"opportunity_id"`
	AppliedAt     time.Time `json:"applied_at"`
}
