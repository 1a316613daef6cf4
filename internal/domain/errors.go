package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSource — источник не доверенный для заявленного типа.
	ErrInvalidSource = errors.New("invalid source")
	// ErrInvalidOpportunity — не заполнены обязательные поля.
	ErrInvalidOpportunity = errors.New("invalid opportunity")
	// ErrUnknownType — тип возможности вне закрытого набора.
	ErrUnknownType = errors.New("unknown opportunity type")
	// ErrNotFound — ссылка на несуществующую сущность.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidSourceError — отказ политики доверенных источников.
// Expected заполнен для политики по типам, Allowed — для списка разрешённых.
type InvalidSourceError struct {
	Type     string
	Source   string
	Expected string
	Allowed  []string
}

func (e *InvalidSourceError) Error() string {
	if e.Allowed != nil {
		return "Untrusted source. Allowed: " + strings.Join(e.Allowed, ", ")
	}
	expected := e.Expected
	if expected == "" {
		expected = "None"
	}
	return fmt.Sprintf("Invalid source for %s. Expected: %s", e.Type, expected)
}

// Is — errors.Is(err, ErrInvalidSource) для любого *InvalidSourceError.
func (e *InvalidSourceError) Is(target error) bool { return target == ErrInvalidSource }
