package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

// HouseShare é a fração da venda bruta que fica com a casa
var HouseShare = decimal.NewFromFloat(0.30)

// HouseReport é o relatório de lucro da casa. Profit é informativo e não
// financia nenhuma bolsa.
type HouseReport struct {
	GrossSales     float64 `json:"grossSales"`
	HouseShare     float64 `json:"houseShare"`
	Withdrawals    float64 `json:"withdrawals"`
	Profit         float64 `json:"profit"`
	CartonsCounted int     `json:"cartonsCounted"`
}

// HouseProfit soma o preço de cada cartão pela jornada a que pertence e
// desconta os saques aprovados de 30% dessa venda
func HouseProfit(s *domain.Snapshot) HouseReport {
	prices := make(map[string]decimal.Decimal, len(s.Jornadas))
	for _, j := range s.Jornadas {
		prices[j.ID] = decimal.NewFromFloat(j.CartonPrice)
	}

	var rep HouseReport
	gross := decimal.Zero
	for _, c := range s.Cartons {
		price, ok := prices[c.JornadaID]
		if !ok {
			continue
		}
		gross = gross.Add(price)
		rep.CartonsCounted++
	}

	paid := decimal.Zero
	for _, w := range s.Withdrawals {
		if w.Status == domain.RequestApproved {
			paid = paid.Add(decimal.NewFromFloat(w.Amount))
		}
	}

	share := gross.Mul(HouseShare)
	rep.GrossSales = gross.InexactFloat64()
	rep.HouseShare = share.InexactFloat64()
	rep.Withdrawals = paid.InexactFloat64()
	rep.Profit = share.Sub(paid).InexactFloat64()
	return rep
}
