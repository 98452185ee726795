package wildberries

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/settlement-report-api/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

type Integrator interface {
	GetLedger(ctx context.Context, token string, period domain.Period) ([]domain.LedgerRecord, error)
	GetDirectory(ctx context.Context, token string) (domain.Directory, error)
	GetStorageCosts(ctx context.Context, token string, period domain.Period) (domain.StorageCosts, error)
	GetAcceptanceCosts(ctx context.Context, token string, period domain.Period) (domain.AcceptanceCosts, error)
	GetAdCampaigns(ctx context.Context, token string, period domain.Period, docNumbers []int64) ([]domain.AdCampaign, error)
}

type WildberriesService struct {
	cfg    config.Wildberries
	Client wbclient.Client
}

func New(cfg *config.Config, client wbclient.Client) Integrator {
	return &WildberriesService{
		cfg:    cfg.Wildberries,
		Client: client,
	}
}

func (s *WildberriesService) GetLedger(ctx context.Context, token string, period domain.Period) ([]domain.LedgerRecord, error) {
	rows, err := s.Client.GetReportDetail(ctx, token, period)
	if err != nil {
		return nil, err
	}

	records := make([]domain.LedgerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.LedgerRecord{
			RecordID:          row.RrdID,
			ProductKey:        domain.ProductKeyFromID(row.NmID),
			DocType:           domain.DocType(row.DocTypeName),
			Quantity:          row.Quantity,
			RetailAmount:      row.RetailAmount,
			Remittance:        row.PpvzForPay,
			DeliveryCount:     row.DeliveryAmount,
			DeliveryCost:      row.DeliveryRub,
			Penalty:           row.Penalty,
			AdditionalPayment: row.AdditionalPayment,
			Cashback:          row.CashbackAmount,
			StorageFee:        row.StorageFee,
			AcceptanceFee:     row.Acceptance,
			DeductionLabel:    row.BonusTypeName,
			Deduction:         row.Deduction,
			OperationName:     row.SupplierOperName,
		})
	}

	return records, nil
}

func (s *WildberriesService) GetDirectory(ctx context.Context, token string) (domain.Directory, error) {
	cards, err := s.Client.GetCards(ctx, token)
	if err != nil {
		return nil, err
	}

	directory := make(domain.Directory, len(cards))
	for _, card := range cards {
		key := domain.ProductKeyFromID(card.NmID)
		if key.IsZero() {
			continue
		}
		directory[key] = card.VendorCode
	}

	return directory, nil
}

func (s *WildberriesService) GetStorageCosts(ctx context.Context, token string, period domain.Period) (domain.StorageCosts, error) {
	rows, err := s.Client.GetPaidStorage(ctx, token, period)
	if err != nil {
		return nil, err
	}

	costs := make(domain.StorageCosts)
	for _, row := range rows {
		key := domain.ProductKeyFromID(row.NmID)
		if key.IsZero() {
			continue
		}
		costs[key] += row.WarehousePrice
	}

	for key, total := range costs {
		costs[key] = utils.RoundWithTwoDecimalPlace(total)
	}

	return costs, nil
}

func (s *WildberriesService) GetAcceptanceCosts(ctx context.Context, token string, period domain.Period) (domain.AcceptanceCosts, error) {
	rows, err := s.Client.GetAcceptanceReport(ctx, token, period)
	if err != nil {
		return nil, err
	}

	costs := make(domain.AcceptanceCosts)
	for _, row := range rows {
		key := domain.ProductKeyFromID(row.NmID)
		if key.IsZero() {
			continue
		}
		costs[key] += row.Total
	}

	return costs, nil
}

// GetAdCampaigns lista os documentos de cobrança, filtra pelos números informados e
// busca o detalhamento estimado das campanhas cobradas
func (s *WildberriesService) GetAdCampaigns(ctx context.Context, token string, period domain.Period, docNumbers []int64) ([]domain.AdCampaign, error) {
	if len(docNumbers) == 0 {
		return []domain.AdCampaign{}, nil
	}

	wanted := make(map[int64]struct{}, len(docNumbers))
	for _, n := range docNumbers {
		wanted[n] = struct{}{}
	}

	from := period.End.AddDate(0, 0, -s.cfg.AdLookbackDays)
	to := period.End

	documents, err := s.Client.GetAdDocuments(ctx, token, from, to)
	if err != nil {
		return nil, err
	}

	billed := make(map[int64]float64)
	for _, doc := range documents {
		if _, ok := wanted[doc.UpdNum]; !ok {
			continue
		}
		billed[doc.AdvertID] += doc.UpdSum
	}

	if len(billed) == 0 {
		logrus.WithField("documents", docNumbers).Warn("wildberries: nenhum documento de publicidade encontrado")
		return []domain.AdCampaign{}, nil
	}

	ids := make([]int64, 0, len(billed))
	for id := range billed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dates := utils.DatesInRange(from, to)
	requests := make([]wbdomain.FullStatsRequest, 0, len(ids))
	for _, id := range ids {
		requests = append(requests, wbdomain.FullStatsRequest{ID: id, Dates: dates})
	}

	stats, err := s.Client.GetAdFullStats(ctx, token, requests)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.AdCampaign, 0, len(stats))
	for _, stat := range stats {
		campaign := domain.AdCampaign{
			ID:     stat.AdvertID,
			Billed: billed[stat.AdvertID],
		}

		for _, day := range stat.Days {
			for _, app := range day.Apps {
				for _, nm := range app.Nm {
					campaign.Fragments = append(campaign.Fragments, domain.AdFragment{
						ProductKey: domain.ProductKeyFromID(nm.NmID),
						Date:       dayOf(day.Date),
						Placement:  app.AppType,
						Amount:     nm.Sum,
					})
				}
			}
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func dayOf(timestamp string) string {
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return timestamp
}
