package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Cliente representa um cliente identificado pelo CPF. As referências para
// endereço e usuário são mantidas por id, sem navegação bidirecional.
type Cliente struct {
	ID         int64     `json:"id" db:"id"`
	Nome       string    `json:"nome" db:"nome"`
	Email      string    `json:"email" db:"email"`
	Cpf        string    `json:"cpf" db:"cpf"`
	Nascimento time.Time `json:"nascimento" db:"nascimento"`
	EnderecoID int64     `json:"endereco_id" db:"endereco_id"`
	UsuarioID  *int64    `json:"usuario_id,omitempty" db:"usuario_id"`
}

// ClienteRequest são os dados de entrada para o cadastro de um cliente
type ClienteRequest struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Cpf        string `json:"cpf"`
	Nascimento string `json:"nascimento"` // formato AAAA-MM-DD
	EnderecoID int64  `json:"endereco_id"`
	UsuarioID  *int64 `json:"usuario_id,omitempty"`
}

// Validate verifica os dados de entrada do cadastro de cliente
func (c *ClienteRequest) Validate() error {
	if n := len(strings.TrimSpace(c.Nome)); n < 10 || n > 50 {
		return fmt.Errorf("o nome deve ter entre 10 e 50 caracteres")
	}
	if !emailRegex.MatchString(c.Email) {
		return fmt.Errorf("o e-mail informado é inválido")
	}
	if !ValidarCPF(c.Cpf) {
		return fmt.Errorf("CPF inválido")
	}
	if _, err := time.Parse("2006-01-02", c.Nascimento); err != nil {
		return fmt.Errorf("o nascimento deve estar no formato AAAA-MM-DD")
	}
	if c.EnderecoID <= 0 {
		return fmt.Errorf("o endereço é obrigatório")
	}
	return nil
}
