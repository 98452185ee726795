package reporting

import (
	"errors"
	"fmt"

	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials = errors.New("token do marketplace inválido ou sem permissão")
	ErrTimeout            = errors.New("tempo limite de geração do relatório excedido")
	ErrNoData             = errors.New("nenhuma venda encontrada no período")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrPipelinePanic      = errors.New("falha inesperada na geração do relatório")
)

// ReportError é um erro com contexto adicional para a geração de relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsKnownError indica erros que o chamador sabe apresentar ao usuário
func IsKnownError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrNoData)
}

// classify converte falhas do marketplace nas categorias conhecidas
func classify(err error) error {
	if err == nil || IsKnownError(err) {
		return err
	}

	var statusErr *wbdomain.StatusError
	if errors.As(err, &statusErr) {
		return NewReportError(ErrInvalidCredentials, apiErrors.ErrReportInvalidCredentials, statusErr.Error())
	}

	return err
}

// ErrorCode mapeia o erro para o código da API
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Code != "" {
		return reportErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return apiErrors.ErrReportInvalidCredentials
	case errors.Is(err, ErrTimeout):
		return apiErrors.ErrReportTimeout
	case errors.Is(err, ErrNoData):
		return apiErrors.ErrReportNoData
	case errors.Is(err, ErrInvalidPeriod):
		return apiErrors.ErrInvalidRequest
	default:
		return apiErrors.ErrInternalServer
	}
}
