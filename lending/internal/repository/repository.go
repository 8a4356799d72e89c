package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
)

// LoanRecord is a persisted loan row; the item is resolved by identifier on load.
type LoanRecord struct {
	LoanID     string     `db:"loan_id"`
	Username   string     `db:"username"`
	Identifier string     `db:"identifier"`
	BorrowDate time.Time  `db:"borrow_date"`
	ReturnDate *time.Time `db:"return_date"`
}

func NewLoanRecord(l model.Loan) LoanRecord {
	return LoanRecord{
		LoanID:     l.LoanID,
		Username:   l.Username,
		Identifier: l.Item.Identifier,
		BorrowDate: l.BorrowDate,
		ReturnDate: l.ReturnDate,
	}
}

type CatalogRepository interface {
	LoadItems(ctx context.Context) ([]model.MediaItem, error)
	AppendItem(ctx context.Context, item model.MediaItem) error
	SaveItems(ctx context.Context, items []model.MediaItem) error
}

type CopyRepository interface {
	LoadCopies(ctx context.Context) ([]model.MediaCopy, error)
	SaveCopies(ctx context.Context, copies []model.MediaCopy) error
}

type LoanRepository interface {
	LoadLoans(ctx context.Context) ([]LoanRecord, error)
	AppendLoan(ctx context.Context, rec LoanRecord) error
	SaveLoans(ctx context.Context, recs []LoanRecord) error
}

type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (model.User, error)
}

type Repository interface {
	CatalogRepository
	CopyRepository
	LoanRepository
	UserRepository
	Close() error
}
