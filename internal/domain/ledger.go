package domain

import (
	"strconv"
	"strings"
)

// ProductKey identifica um artigo (SKU) em todas as fontes do relatório
type ProductKey string

// NewProductKey normaliza o identificador recebido de qualquer fonte
func NewProductKey(raw string) ProductKey {
	return ProductKey(strings.ToUpper(strings.TrimSpace(raw)))
}

// ProductKeyFromID converte o nm_id numérico do marketplace
func ProductKeyFromID(id int64) ProductKey {
	if id == 0 {
		return ""
	}
	return ProductKey(strconv.FormatInt(id, 10))
}

// IsZero indica uma linha de lançamento sem artigo (valor agregado do período)
func (k ProductKey) IsZero() bool {
	return k == "" || k == "0"
}

type DocType string

const (
	DocTypeSale   DocType = "Продажа"
	DocTypeReturn DocType = "Возврат"
)

// LedgerRecord é um evento financeiro bruto do relatório de realização
type LedgerRecord struct {
	RecordID          int64
	ProductKey        ProductKey
	DocType           DocType
	Quantity          float64
	RetailAmount      float64
	Remittance        float64
	DeliveryCount     float64
	DeliveryCost      float64
	Penalty           float64
	AdditionalPayment float64
	Cashback          float64
	StorageFee        float64
	AcceptanceFee     float64
	DeductionLabel    string
	Deduction         float64
	OperationName     string
}

// UnknownVendorCode é usado quando o artigo não existe no catálogo
const UnknownVendorCode = "Нераспознанный артикул"

// Directory mapeia artigo -> código do fornecedor
type Directory map[ProductKey]string

// VendorCode retorna o código do fornecedor ou o rótulo padrão
func (d Directory) VendorCode(key ProductKey) string {
	if code, ok := d[key]; ok && code != "" {
		return code
	}
	return UnknownVendorCode
}

type StorageCosts map[ProductKey]float64

type AcceptanceCosts map[ProductKey]float64

// AdFragment é o gasto estimado de um artigo em um dia e posicionamento
type AdFragment struct {
	ProductKey ProductKey
	Date       string
	Placement  int
	Amount     float64
}

// AdCampaign traz o valor efetivamente cobrado e os fragmentos estimados
type AdCampaign struct {
	ID        int64
	Billed    float64
	Fragments []AdFragment
}

// RawTotal soma os fragmentos estimados da campanha
func (c AdCampaign) RawTotal() float64 {
	var total float64
	for _, f := range c.Fragments {
		total += f.Amount
	}
	return total
}
