package tracking

import "errors"

var (
	ErrJobNotFound   = errors.New("job não encontrado")
	ErrJobInProgress = errors.New("já existe um relatório em geração para esta loja")
	ErrJobNotReady   = errors.New("relatório ainda não está pronto")
)
