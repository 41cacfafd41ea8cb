package models

import "time"

// TransactionReport is a materialized view over the ledger: every
// transaction of one user whose date falls inside the inclusive
// [StartDate, EndDate] window, comparing calendar dates only.
//
// ID may be zero for reports reconstructed from cache.
type TransactionReport struct {
	ID           uint          `gorm:"primarykey" json:"report_id"`
	Username     string        `gorm:"index;not null" json:"username"`
	StartDate    time.Time     `gorm:"not null" json:"start_date"`
	EndDate      time.Time     `gorm:"not null" json:"end_date"`
	Transactions []Transaction `gorm:"many2many:report_transactions" json:"transactions"`
}

// TransactionReportRequest asks for a report over an inclusive date window.
type TransactionReportRequest struct {
	Username  string    `json:"username"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// InWindow reports whether a transaction timestamp falls inside the
// request's window. Time of day is ignored; boundary dates are included.
func (r TransactionReportRequest) InWindow(ts time.Time) bool {
	day := dateOnly(ts)
	return !day.Before(dateOnly(r.StartDate)) && !day.After(dateOnly(r.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
