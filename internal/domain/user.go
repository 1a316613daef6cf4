package domain

// User — учётная запись; пароль хранится только в виде хэша.
type User struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	HashedPassword    string   `json:"-"`
	TwelfthPercentage *float64 `json:"twelfth_percentage"`
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
}
