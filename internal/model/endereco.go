package model

import (
	"fmt"
	"strings"
)

// Endereco representa um endereço de cliente. Dois clientes podem residir no
// mesmo endereço, então o id é uma chave técnica e não há unicidade de CEP.
type Endereco struct {
	ID          int64  `json:"id" db:"id"`
	Rua         string `json:"rua" db:"rua"`
	Numero      string `json:"numero" db:"numero"`
	Cep         string `json:"cep" db:"cep"`
	Complemento string `json:"complemento" db:"complemento"`
}

// Validate verifica os dados de entrada do cadastro de endereço
func (e *Endereco) Validate() error {
	if n := len(strings.TrimSpace(e.Rua)); n < 10 || n > 50 {
		return fmt.Errorf("o nome da rua deve ter entre 10 e 50 caracteres")
	}
	if strings.TrimSpace(e.Numero) == "" {
		return fmt.Errorf("o número não pode estar vazio")
	}
	if strings.TrimSpace(e.Cep) == "" {
		return fmt.Errorf("o CEP não pode estar vazio")
	}
	if strings.TrimSpace(e.Complemento) == "" {
		return fmt.Errorf("o complemento não pode estar vazio")
	}
	return nil
}
