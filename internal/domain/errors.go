package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrProfileNotFound    = errors.New("perfil não encontrado")
	ErrOrderNotFound      = errors.New("pedido não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrBioDisabled        = errors.New("geração de biografia desativada")
)
