package service

import "errors"

// Falhas possíveis da autorização de pagamento, na ordem em que as regras são
// avaliadas. São erros sentinela para que os chamadores decidam a resposta
// com errors.Is, sem inspecionar mensagens.
var (
	ErrValidacao            = errors.New("dados do pagamento inválidos")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado para este CPF")
	ErrCartaoNaoEncontrado  = errors.New("cartão inexistente")
	ErrCartaoDeOutroCliente = errors.New("cartão não pertence a esse cliente")
	ErrLimiteInsuficiente   = errors.New("limite insuficiente para a compra")
	ErrCvvIncorreto         = errors.New("código CVV incorreto, compra recusada")
)
