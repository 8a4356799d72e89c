package model

import (
	"time"
)

type Loan struct {
	LoanID     string     `json:"loanId"`
	Username   string     `json:"username"`
	Item       MediaItem  `json:"item"`
	BorrowDate time.Time  `json:"borrowDate"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
}

func NewLoan(loanID, username string, item MediaItem, borrowDate time.Time) Loan {
	borrowDate = Day(borrowDate)
	return Loan{
		LoanID:     loanID,
		Username:   username,
		Item:       item,
		BorrowDate: borrowDate,
		DueDate:    borrowDate.AddDate(0, 0, item.BorrowingPeriodDays()),
	}
}

func (l Loan) Active() bool {
	return l.ReturnDate == nil
}

func (l Loan) IsOverdue(today time.Time) bool {
	return l.Active() && Day(today).After(l.DueDate)
}

func (l Loan) OverdueDays(today time.Time) int {
	if !l.Active() {
		return 0
	}
	return max(0, DaysBetween(l.DueDate, today))
}

func (l Loan) Fine(today time.Time) int {
	return l.OverdueDays(today) * l.Item.FinePerDay()
}

// Close sets the return date once; a closed loan is left untouched.
func (l *Loan) Close(returnDate time.Time) bool {
	if !l.Active() {
		return false
	}
	d := Day(returnDate)
	l.ReturnDate = &d
	return true
}

type LoanLine struct {
	Loan        Loan `json:"loan"`
	OverdueDays int  `json:"overdueDays"`
	Fine        int  `json:"fine"`
}

type LoanReport struct {
	Username  string     `json:"username,omitempty"`
	Date      string     `json:"date"`
	Loans     []LoanLine `json:"loans"`
	TotalFine int        `json:"totalFine"`
}

func NewLoanReport(username string, loans []Loan, today time.Time) LoanReport {
	r := LoanReport{
		Username: username,
		Date:     FormatDate(today),
		Loans:    make([]LoanLine, 0, len(loans)),
	}
	for _, l := range loans {
		line := LoanLine{Loan: l, OverdueDays: l.OverdueDays(today), Fine: l.Fine(today)}
		r.TotalFine += line.Fine
		r.Loans = append(r.Loans, line)
	}
	return r
}
