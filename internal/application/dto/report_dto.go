package dto

import "time"

// ErrorReportResponse relatório de erro devolvido à visão de admin.
type ErrorReportResponse struct {
	ID           string    `json:"id"`
	Component    string    `json:"component"`
	ErrorMessage string    `json:"errorMessage"`
	ErrorStack   string    `json:"errorStack,omitempty"`
	UserID       string    `json:"userId,omitempty"`
	UserEmail    string    `json:"userEmail,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
