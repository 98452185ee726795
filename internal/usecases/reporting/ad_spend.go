package reporting

import "github.com/vfg2006/settlement-report-api/internal/domain"

// CampaignScale converte o gasto estimado da campanha no valor efetivamente cobrado.
// Sem estimativa positiva o fator é 1 e o valor cobrado não é atribuído a nenhum artigo.
func CampaignScale(campaign domain.AdCampaign) float64 {
	raw := campaign.RawTotal()
	if raw > 0 {
		return campaign.Billed / raw
	}
	return 1.0
}

// AdSpendByProduct distribui o valor cobrado de cada campanha pelos fragmentos estimados
func AdSpendByProduct(campaigns []domain.AdCampaign) map[domain.ProductKey]float64 {
	spend := make(map[domain.ProductKey]float64)

	for _, campaign := range campaigns {
		scale := CampaignScale(campaign)
		for _, fragment := range campaign.Fragments {
			key := domain.NewProductKey(string(fragment.ProductKey))
			spend[key] += fragment.Amount * scale
		}
	}

	return spend
}
