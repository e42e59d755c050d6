package dashboard

// KPIs são os indicadores consolidados do painel.
type KPIs struct {
	ReceitaTotal         float64 `json:"receitaTotal"`
	CustosTotal          float64 `json:"custosTotal"`
	LucroTotal           float64 `json:"lucroTotal"`
	MargemLucro          float64 `json:"margemLucro"` // percentual, 2 casas
	TotalFretes          int64   `json:"totalFretes"`
	MotoristasAtivos     int64   `json:"motoristasAtivos"`
	CaminhoesDisponiveis int64   `json:"caminhoesDisponiveis"`
}

// EstatisticaRota agrega os fretes de um par origem/destino.
type EstatisticaRota struct {
	Origem       string  `json:"origem"`
	Destino      string  `json:"destino"`
	TotalFretes  int64   `json:"totalFretes"`
	ReceitaTotal float64 `json:"receitaTotal"`
	CustosTotal  float64 `json:"custosTotal"`
	LucroTotal   float64 `json:"lucroTotal"`
}
