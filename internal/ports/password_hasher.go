package ports

// PasswordHasher — хэширование и сверка паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer — выпуск access-токенов.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}
