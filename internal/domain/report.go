package domain

import "time"

// ProductRow é a linha final do relatório, uma por artigo
type ProductRow struct {
	ProductKey         ProductKey
	VendorCode         string
	UnitsSold          float64
	GrossRevenue       float64
	Remittance         float64
	DeliveryCount      float64
	DeliveryCost       float64
	Penalty            float64
	AdditionalPayment  float64
	ReturnRemittance   float64
	StorageCost        float64
	AdSpend            float64
	SubscriptionShare  float64
	AcceptanceFee      float64
	UtilizationShare   float64
	ReviewDeduction    float64
	OtherWithholdings  float64
	Cashback           float64
	NetSettlement      float64
	ReturnQuantity     float64
	ReturnRetailAmount float64
}

// ComputeNetSettlement aplica a fórmula do valor que chega à conta do vendedor
func (r ProductRow) ComputeNetSettlement() float64 {
	return r.Remittance -
		r.DeliveryCost -
		r.Penalty +
		r.AdditionalPayment -
		r.ReturnRemittance -
		r.StorageCost -
		r.AdSpend -
		r.SubscriptionShare -
		r.AcceptanceFee -
		r.UtilizationShare -
		r.ReviewDeduction -
		r.OtherWithholdings -
		r.Cashback
}

// Values retorna as colunas numéricas na ordem fixa da planilha
func (r ProductRow) Values() []float64 {
	return []float64{
		r.UnitsSold,
		r.GrossRevenue,
		r.Remittance,
		r.DeliveryCount,
		r.DeliveryCost,
		r.Penalty,
		r.AdditionalPayment,
		r.ReturnRemittance,
		r.StorageCost,
		r.AdSpend,
		r.SubscriptionShare,
		r.AcceptanceFee,
		r.UtilizationShare,
		r.ReviewDeduction,
		r.OtherWithholdings,
		r.Cashback,
		r.NetSettlement,
	}
}

// ReportColumns define a ordem fixa das colunas da planilha
var ReportColumns = []string{
	"Артикул WB",
	"Артикул поставщика",
	"Кол-во продаж",
	"Общая выручка",
	"К Перечислению",
	"Логистика, шт",
	"Логистика, руб",
	"Штрафы",
	"Доплаты",
	"Возвраты",
	"Хранение",
	"ВБ.Продвижение",
	"Подписка «Джем»",
	"Приемка",
	"Утилизация",
	"Списание за отзывы",
	"Прочие удержания",
	"Баллы программы лояльности",
	"На расчетный счет",
}

type Report struct {
	StoreName string
	Period    Period
	Rows      []ProductRow
}

// ReportRequest são os parâmetros recebidos da camada do bot
type ReportRequest struct {
	Token      string
	StoreName  string
	UserID     int64
	StoreID    int64
	Period     Period
	DocNumbers []int64
}

// ReportEntry é o registro de um relatório gerado
type ReportEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	StoreID     int64     `json:"store_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Path        string    `json:"path"`
	CreatedAt   time.Time `json:"created_at"`
}
