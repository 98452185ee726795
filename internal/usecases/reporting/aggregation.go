package reporting

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

const (
	labelUtilization  = "утилизац"
	labelSubscription = "джем"
	labelReview       = "списание за отзыв"
	labelPromotion    = "продвижение"
	operationWithhold = "удержание"
)

var reviewProductPattern = regexp.MustCompile(`(?i)товар\s+(\d+)`)

type AggregationInput struct {
	Ledger    []domain.LedgerRecord
	Directory domain.Directory
	Campaigns []domain.AdCampaign
	// Storage nil usa a taxa de armazenamento do próprio relatório de realização
	Storage domain.StorageCosts
	// Acceptance nil usa a aceitação lançada no relatório de realização
	Acceptance domain.AcceptanceCosts
}

type lumpSums struct {
	utilization  float64
	subscription float64
	other        float64
	reviews      map[domain.ProductKey]float64
}

type returnTotals struct {
	quantity   float64
	retail     float64
	remittance float64
}

// Aggregate reconcilia o relatório de realização e os dados auxiliares em uma linha por artigo
func Aggregate(input AggregationInput) ([]domain.ProductRow, error) {
	lumps := extractLumpSums(input.Ledger)
	sales, returns := groupByProduct(input.Ledger)

	attributed := make(map[domain.ProductKey]struct{}, len(sales)+len(returns))
	for key := range sales {
		attributed[key] = struct{}{}
	}
	for key := range returns {
		attributed[key] = struct{}{}
	}

	if len(attributed) == 0 {
		return nil, ErrNoData
	}

	utilizationShare := utils.SplitEvenly(lumps.utilization, len(attributed))
	subscriptionShare := utils.SplitEvenly(lumps.subscription, len(attributed))
	otherShare := utils.SplitEvenly(lumps.other, len(attributed))

	storage := input.Storage
	if storage == nil {
		storage = storageFromLedger(input.Ledger)
	}
	adSpend := AdSpendByProduct(input.Campaigns)

	keys := make(map[domain.ProductKey]struct{}, len(attributed))
	for key := range attributed {
		keys[key] = struct{}{}
	}
	for key := range storage {
		keys[domain.NewProductKey(string(key))] = struct{}{}
	}
	for key := range adSpend {
		keys[key] = struct{}{}
	}
	for key := range input.Acceptance {
		keys[domain.NewProductKey(string(key))] = struct{}{}
	}

	rows := make([]domain.ProductRow, 0, len(keys))
	for key := range keys {
		if key.IsZero() {
			if amount := adSpend[key]; amount != 0 {
				logrus.WithFields(logrus.Fields{
					"product_key": string(key),
					"ad_spend":    amount,
				}).Warn("reporting: gasto de publicidade sem artigo descartado")
			}
			continue
		}

		row := domain.ProductRow{ProductKey: key}
		if sale, ok := sales[key]; ok {
			row = *sale
		}
		row.VendorCode = input.Directory.VendorCode(key)

		if ret, ok := returns[key]; ok {
			row.ReturnQuantity = ret.quantity
			row.ReturnRetailAmount = ret.retail
			row.ReturnRemittance = ret.remittance
		}

		if _, ok := attributed[key]; ok {
			row.UtilizationShare = utilizationShare
			row.SubscriptionShare = subscriptionShare
			row.OtherWithholdings = otherShare
		}

		if input.Acceptance != nil {
			row.AcceptanceFee = input.Acceptance[key]
		}

		row.StorageCost = storage[key]
		row.AdSpend = adSpend[key]
		row.ReviewDeduction = lumps.reviews[key]
		row.NetSettlement = row.ComputeNetSettlement()

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProductKey < rows[j].ProductKey
	})

	return rows, nil
}

// extractLumpSums soma as retenções do período que não pertencem a um artigo específico
func extractLumpSums(records []domain.LedgerRecord) lumpSums {
	lumps := lumpSums{reviews: make(map[domain.ProductKey]float64)}

	for _, r := range records {
		if r.Deduction != 0 {
			label := strings.ToLower(r.DeductionLabel)

			switch {
			case strings.Contains(label, labelUtilization):
				lumps.utilization += r.Deduction
			case strings.Contains(label, labelSubscription):
				lumps.subscription += r.Deduction
			case strings.Contains(label, labelReview):
				if match := reviewProductPattern.FindStringSubmatch(r.DeductionLabel); match != nil {
					lumps.reviews[domain.NewProductKey(match[1])] += r.Deduction
				} else {
					lumps.other += r.Deduction
				}
			case strings.Contains(label, labelPromotion):
				// já contabilizado pelo gasto de publicidade
			default:
				lumps.other += r.Deduction
			}
		}

		if r.ProductKey.IsZero() && r.Penalty != 0 {
			lumps.other += r.Penalty
		}

		if r.AdditionalPayment != 0 && strings.Contains(strings.ToLower(r.OperationName), operationWithhold) {
			lumps.other += r.AdditionalPayment
		}
	}

	return lumps
}

// groupByProduct separa vendas e devoluções por artigo, ignorando linhas sem artigo
func groupByProduct(records []domain.LedgerRecord) (map[domain.ProductKey]*domain.ProductRow, map[domain.ProductKey]*returnTotals) {
	sales := make(map[domain.ProductKey]*domain.ProductRow)
	returns := make(map[domain.ProductKey]*returnTotals)

	for _, r := range records {
		if r.ProductKey.IsZero() {
			continue
		}
		key := domain.NewProductKey(string(r.ProductKey))

		if r.DocType == domain.DocTypeReturn {
			ret, ok := returns[key]
			if !ok {
				ret = &returnTotals{}
				returns[key] = ret
			}
			ret.quantity += r.Quantity
			ret.retail += r.RetailAmount
			ret.remittance += r.Remittance
			continue
		}

		row, ok := sales[key]
		if !ok {
			row = &domain.ProductRow{ProductKey: key}
			sales[key] = row
		}

		if r.DocType == domain.DocTypeSale {
			row.UnitsSold += r.Quantity
		}
		row.GrossRevenue += r.RetailAmount
		row.Remittance += r.Remittance
		row.DeliveryCount += r.DeliveryCount
		row.DeliveryCost += r.DeliveryCost
		row.Penalty += r.Penalty
		row.AdditionalPayment += r.AdditionalPayment
		row.Cashback += r.Cashback
		row.AcceptanceFee += r.AcceptanceFee
	}

	return sales, returns
}

func storageFromLedger(records []domain.LedgerRecord) domain.StorageCosts {
	costs := make(domain.StorageCosts)
	for _, r := range records {
		if r.ProductKey.IsZero() || r.StorageFee == 0 {
			continue
		}
		costs[domain.NewProductKey(string(r.ProductKey))] += r.StorageFee
	}

	for key, total := range costs {
		costs[key] = utils.RoundWithTwoDecimalPlace(total)
	}
	return costs
}
