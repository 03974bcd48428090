package finance

import "time"

type TransactionKind string

const (
	TransactionDeposit TransactionKind = "deposit"
	TransactionBalance TransactionKind = "balance"
	TransactionPending TransactionKind = "pending"
)

type Transaction struct {
	AppointmentID string          `json:"appointment_id"`
	ClientName    string          `json:"client_name"`
	ServiceName   string          `json:"service_name"`
	Kind          TransactionKind `json:"kind"`
	Amount        float64         `json:"amount"`
	Method        string          `json:"method,omitempty"`
	Date          time.Time       `json:"date"`
}

type MonthSummary struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	Received     float64       `json:"received"`
	Pending      float64       `json:"pending"`
	Forecast     float64       `json:"forecast"`
	Transactions []Transaction `json:"transactions"`
}
