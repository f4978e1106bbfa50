package topics

const (
	// Jornadas
	JornadaResults = "jornada_results"
	JornadaSettled = "jornada_settled"

	// Saldos
	BalanceChanged = "balance_changed"

	// DLQs
	JornadaResultsDLQ = "jornada_results_dlq"
)
