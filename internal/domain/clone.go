package domain

// Clone devolve uma cópia profunda do snapshot; mutações na cópia
// nunca alcançam o original
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Teams = append([]Team(nil), s.Teams...)
	out.Users = append([]RegisteredUser(nil), s.Users...)

	out.Jornadas = make([]Jornada, len(s.Jornadas))
	for i := range s.Jornadas {
		out.Jornadas[i] = s.Jornadas[i].clone()
	}
	out.Cartons = make([]Carton, len(s.Cartons))
	for i := range s.Cartons {
		out.Cartons[i] = s.Cartons[i].clone()
	}

	out.Recharges = make([]RechargeRequest, len(s.Recharges))
	for i, r := range s.Recharges {
		r.ProcessedAt = clonePtr(r.ProcessedAt)
		out.Recharges[i] = r
	}
	out.SellerRecharges = make([]SellerRechargeRequest, len(s.SellerRecharges))
	for i, r := range s.SellerRecharges {
		r.ProcessedAt = clonePtr(r.ProcessedAt)
		out.SellerRecharges[i] = r
	}
	out.Withdrawals = make([]WithdrawalRequest, len(s.Withdrawals))
	for i, w := range s.Withdrawals {
		w.ProcessedAt = clonePtr(w.ProcessedAt)
		out.Withdrawals[i] = w
	}
	return &out
}

func (j Jornada) clone() Jornada {
	out := j
	out.Matches = make([]Match, len(j.Matches))
	for i, m := range j.Matches {
		if m.Result != nil {
			r := *m.Result
			m.Result = &r
		}
		out.Matches[i] = m
	}
	if j.BotinResult != nil {
		b := *j.BotinResult
		out.BotinResult = &b
	}
	return out
}

func (c Carton) clone() Carton {
	out := c
	if c.Predictions != nil {
		out.Predictions = make(map[string]Outcome, len(c.Predictions))
		for k, v := range c.Predictions {
			out.Predictions[k] = v
		}
	}
	if c.BotinPrediction != nil {
		bp := *c.BotinPrediction
		out.BotinPrediction = &bp
	}
	if c.Hits != nil {
		h := *c.Hits
		out.Hits = &h
	}
	if c.PrizeWon != nil {
		p := *c.PrizeWon
		out.PrizeWon = &p
	}
	if c.PrizeDetails != nil {
		d := PrizeDetails{}
		if c.PrizeDetails.Jornada != nil {
			t := *c.PrizeDetails.Jornada
			d.Jornada = &t
		}
		if c.PrizeDetails.Gordito != nil {
			g := *c.PrizeDetails.Gordito
			d.Gordito = &g
		}
		if c.PrizeDetails.Botin != nil {
			b := *c.PrizeDetails.Botin
			d.Botin = &b
		}
		out.PrizeDetails = &d
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
