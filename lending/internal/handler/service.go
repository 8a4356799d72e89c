package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	Login(ctx context.Context, username string) (context.Context, error)
	BorrowMediaItem(ctx context.Context, identifier string) (model.Loan, error)
	ReturnItem(ctx context.Context, loanID string) (model.Loan, error)
	CompleteReturn(ctx context.Context, loanID string) (model.Loan, error)
	ViewLoans(ctx context.Context) (model.LoanReport, error)
	OverdueReport(ctx context.Context) (model.LoanReport, error)
	AvailableItems(ctx context.Context) ([]model.MediaItem, error)
	FindItem(ctx context.Context, identifier string) (model.MediaItem, error)
	CopiesFor(ctx context.Context, identifier string) ([]model.MediaCopy, error)
	Search(ctx context.Context, field model.SearchField, query string) ([]model.MediaItem, error)
	AddMediaItem(ctx context.Context, item model.MediaItem, copies int) (model.MediaItem, error)
	AddCopies(ctx context.Context, identifier string, count int, available bool) ([]model.MediaCopy, error)
	SetCopyAvailable(ctx context.Context, copyID string, available bool) (model.MediaCopy, error)
	NotifyWhenAvailable(ctx context.Context, identifier string) error
	ItemHistory(ctx context.Context, identifier string) ([]model.Loan, error)
}

var _ LendingService = (*service.Service)(nil)
