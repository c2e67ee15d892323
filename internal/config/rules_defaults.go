package config

import "github.com/vfg2006/ad-report-analyzer/internal/domain"

// DefaultRules devolve a configuração de classificação embutida.
// As regras são avaliadas em ordem; as mais específicas de cada source vêm primeiro.
func DefaultRules() *domain.Rules {
	return &domain.Rules{
		Columns:     defaultColumns(),
		Conversions: defaultConversions(),
		Channels:    defaultChannels(),
	}
}

func defaultColumns() domain.ColumnMapping {
	return domain.ColumnMapping{
		Date:         "paid_date",
		Cost:         "content_cost",
		Impressions:  "content_impressions",
		Clicks:       "content_clicks",
		Source:       "utm_source",
		Medium:       "utm_medium",
		Campaign:     "utm_campaign",
		CampaignName: "campaign_name",
		CampaignID:   "campaign_id",
		AdGroupName:  "adgroup_name",
		AdGroupID:    "adgroup_id",
		Total:        "total_tier1cv_cnt",
		ExtraNumeric: []string{"allocation_ratio"},
	}
}

func defaultConversions() domain.ConversionTaxonomy {
	return domain.ConversionTaxonomy{
		TierA: domain.ConversionGroup{
			Label:    "Solicitação de material",
			Color:    "#F59E0B",
			TotalKey: "total_siryo_cnt",
			Metrics: []domain.ConversionMetric{
				{Field: "generate_lead_ai_uu", Label: "Atendente IA - download de material"},
				{Field: "generate_lead_0abj_uu", Label: "Atendimento automático - download de material"},
				{Field: "generate_lead_push_uu", Label: "Push telefônico - download de material"},
				{Field: "generate_lead_midep_uu", Label: "MiDEP - download de material"},
				{Field: "cost_sim_complete_uu", Label: "Simulação de custo concluída"},
			},
		},
		TierB: domain.ConversionGroup{
			Label:    "Conta gratuita",
			Color:    "#10B981",
			TotalKey: "total_free_acount_cnt",
			Metrics: []domain.ConversionMetric{
				{Field: "account_reg_ivr_uu", Label: "Conta gratuita (IVR)"},
				{Field: "account_reg_ivr_num_uu", Label: "Conta gratuita (número IVR)"},
				{Field: "account_reg_none_uu", Label: "Conta gratuita (outros)"},
			},
		},
		Other: domain.ConversionGroup{
			Label: "Outros",
			Color: "#9CA3AF",
			Metrics: []domain.ConversionMetric{
				{Field: "generate_lead_aifax_uu", Label: "AI FAX - download de material"},
				{Field: "generate_lead_democall_dl_uu", Label: "Chamada demo - download"},
				{Field: "account_reg_num_uu", Label: "Cadastro de conta (número)"},
				{Field: "generate_lead_ivr_uu", Label: "Lead (IVR)"},
				{Field: "generate_lead_ivr_num_uu", Label: "Lead (número IVR)"},
				{Field: "generate_lead_num_uu", Label: "Lead (número)"},
				{Field: "generate_lead_none_uu", Label: "Lead (outros)"},
			},
		},
	}
}

func defaultChannels() []domain.ClassificationRule {
	return []domain.ClassificationRule{
		// Google
		{Source: "google", Campaign: []string{"pmax"}, CampaignName: []string{"p-max", "pmax"}, Name: "Google P-MAX", Color: "#0F9D58"},
		{Source: "google", Campaign: []string{"demandgen"}, CampaignName: []string{"ディマンドジェネレーション", "demand gen"}, Name: "Google Demand Gen", Color: "#F4B400"},
		{Source: "google", Name: "Google Search", Color: "#4285F4"},
		// Yahoo
		{Source: "yahoo", Medium: "display", Name: "Yahoo! Display", Color: "#FF6699"},
		{Source: "yahoo", Name: "Yahoo! Search", Color: "#FF0033"},
		// Microsoft
		{Source: "msn", Medium: "display", Name: "Microsoft Display", Color: "#7FBA00"},
		{Source: "msn", Name: "Microsoft Search", Color: "#00A4EF"},
		// Meta
		{Source: "facebook", Name: "Facebook", Color: "#FF6D2E"},
	}
}
