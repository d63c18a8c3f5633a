package entity

import "time"

// ErrorReport registro diagnóstico de falha, append-only, lido apenas por admin.
type ErrorReport struct {
	ID           string
	Component    string
	ErrorMessage string
	ErrorStack   string // opcional
	UserID       string // opcional
	UserEmail    string // opcional
	Timestamp    time.Time
}
