package model

import (
	"fmt"
	"time"
	"unicode"
)

// Usuario é a conta de acesso que pode estar vinculada a um cliente
type Usuario struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SignUpInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u *SignUpInput) Validate() error {
	if len(u.Username) < 3 || len(u.Username) > 50 {
		return fmt.Errorf("o username deve ter entre 3 e 50 caracteres")
	}

	// Verificação da força da senha
	if !isValidPassword(u.Password) {
		return fmt.Errorf("a senha deve ter no mínimo 8 caracteres, com letra maiúscula, minúscula, número e caractere especial")
	}

	return nil
}

func isValidPassword(password string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial && len(password) >= 8
}
