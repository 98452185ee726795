package wbdomain

// ReportDetailRow é uma linha do relatório de realização (reportDetailByPeriod)
type ReportDetailRow struct {
	RrdID             int64   `json:"rrd_id"`
	NmID              int64   `json:"nm_id"`
	SaName            string  `json:"sa_name"`
	DocTypeName       string  `json:"doc_type_name"`
	Quantity          float64 `json:"quantity"`
	RetailAmount      float64 `json:"retail_amount"`
	PpvzForPay        float64 `json:"ppvz_for_pay"`
	DeliveryAmount    float64 `json:"delivery_amount"`
	DeliveryRub       float64 `json:"delivery_rub"`
	Penalty           float64 `json:"penalty"`
	AdditionalPayment float64 `json:"additional_payment"`
	CashbackAmount    float64 `json:"cashback_amount"`
	StorageFee        float64 `json:"storage_fee"`
	Acceptance        float64 `json:"acceptance"`
	BonusTypeName     string  `json:"bonus_type_name"`
	Deduction         float64 `json:"deduction"`
	SupplierOperName  string  `json:"supplier_oper_name"`
}
