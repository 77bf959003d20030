package ai

import "github.com/bds22000-prog/kyclean/internal/report"

// SummaryInput - показатели месяца, которые уходят модели для сводки.
type SummaryInput struct {
	Month          string               `json:"month"`
	Weights        report.BucketWeights `json:"weights"`
	RevenueKZT     int64                `json:"revenue_kzt"`
	ReceivablesKZT int64                `json:"receivables_kzt"`
	PETRevenueKZT  int64                `json:"pet_revenue_kzt"`
	PlasticSorted  int64                `json:"plastic_sorted"`
	ActiveStaff    int                  `json:"active_staff"`
}
