package loans

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

// Catalog is the part of the media catalog the ledger depends on.
type Catalog interface {
	FindByIdentifier(identifier string) (model.MediaItem, bool)
	RefreshAvailability(ctx context.Context, identifier string) error
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithUsers makes loading set aside loans whose user no longer exists.
func WithUsers(users repository.UserRepository) Option {
	return func(l *Ledger) {
		l.users = users
	}
}

// Ledger holds every loan, open and closed. The loan store is authoritative for
// which items are out.
type Ledger struct {
	mu    sync.RWMutex
	loans []model.Loan

	// unresolved rows name an unknown item or user; they are hidden from queries
	// but still block their item and are written back untouched.
	unresolved []repository.LoanRecord

	repo    repository.LoanRepository
	catalog Catalog
	users   repository.UserRepository
	now     func() time.Time
	log     *zap.Logger
}

func New(ctx context.Context, repo repository.LoanRepository, catalog Catalog, log *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
		log:     log.Named("loans"),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.load(ctx)
	return l
}

func (l *Ledger) load(ctx context.Context) {
	recs, err := l.repo.LoadLoans(ctx)
	if err != nil {
		l.log.Error("load loans, starting empty", zap.Error(err))
		return
	}
	loans := make([]model.Loan, 0, len(recs))
	var unresolved []repository.LoanRecord
	for _, rec := range recs {
		item, ok := l.catalog.FindByIdentifier(rec.Identifier)
		if !ok {
			l.log.Warn("loan of unknown item kept aside", zap.String("loanId", rec.LoanID), zap.String("identifier", rec.Identifier))
			unresolved = append(unresolved, rec)
			continue
		}
		if !l.knownUser(ctx, rec.Username) {
			l.log.Warn("loan of unknown user kept aside", zap.String("loanId", rec.LoanID), zap.String("username", rec.Username))
			unresolved = append(unresolved, rec)
			continue
		}
		loan := model.NewLoan(rec.LoanID, rec.Username, item, rec.BorrowDate)
		if rec.ReturnDate != nil {
			loan.Close(*rec.ReturnDate)
		}
		loans = append(loans, loan)
	}
	l.loans = loans
	l.unresolved = unresolved
	l.log.Debug("loans loaded", zap.Int("loans", len(loans)), zap.Int("unresolved", len(unresolved)))
}

func (l *Ledger) knownUser(ctx context.Context, username string) bool {
	if l.users == nil {
		return true
	}
	_, err := l.users.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errs.ErrNotFound):
		return false
	default:
		l.log.Warn("user lookup failed, keeping loan", zap.String("username", username), zap.Error(err))
		return true
	}
}

// Borrow opens a loan dated today. Callers check policy first; an unavailable item here
// means the ledgers disagree and is reported as ErrItemUnavailable.
func (l *Ledger) Borrow(ctx context.Context, username string, identifier string) (model.Loan, error) {
	item, ok := l.catalog.FindByIdentifier(identifier)
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	if !item.Available {
		return model.Loan{}, errs.ErrItemUnavailable
	}

	loan, err := l.open(ctx, username, item)
	if err != nil {
		return model.Loan{}, err
	}
	// The loan is already stored; the next refresh repairs the flag.
	if err := l.catalog.RefreshAvailability(ctx, item.Identifier); err != nil {
		l.log.Error("refresh availability after borrow", zap.String("identifier", item.Identifier), zap.Error(err))
	}
	l.log.Info("loan opened",
		zap.String("loanId", loan.LoanID),
		zap.String("username", username),
		zap.String("identifier", item.Identifier),
		zap.String("due", model.FormatDate(loan.DueDate)))
	return loan, nil
}

func (l *Ledger) open(ctx context.Context, username string, item model.MediaItem) (model.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasActiveLoan(item.Identifier) {
		return model.Loan{}, errs.ErrItemUnavailable
	}
	loan := model.NewLoan(uuid.New().String(), username, item, l.now())
	if err := l.repo.AppendLoan(ctx, repository.NewLoanRecord(loan)); err != nil {
		l.log.Error("append loan", zap.Error(err))
		return model.Loan{}, err
	}
	l.loans = append(l.loans, loan)
	return loan, nil
}

// ReturnLoan closes an active loan on returnDate, today when nil.
func (l *Ledger) ReturnLoan(ctx context.Context, loanID string, returnDate *time.Time) (model.Loan, error) {
	closed, err := l.close(ctx, loanID, returnDate)
	if err != nil {
		return model.Loan{}, err
	}
	if err := l.catalog.RefreshAvailability(ctx, closed.Item.Identifier); err != nil {
		l.log.Error("refresh availability after return", zap.String("identifier", closed.Item.Identifier), zap.Error(err))
	}
	l.log.Info("loan closed", zap.String("loanId", loanID), zap.String("identifier", closed.Item.Identifier))
	return closed, nil
}

func (l *Ledger) close(ctx context.Context, loanID string, returnDate *time.Time) (model.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(loanID)
	if i < 0 || !l.loans[i].Active() {
		return model.Loan{}, errs.ErrNotFound
	}
	when := l.now()
	if returnDate != nil {
		when = *returnDate
	}
	l.loans[i].Close(when)

	recs := make([]repository.LoanRecord, 0, len(l.loans)+len(l.unresolved))
	for _, loan := range l.loans {
		recs = append(recs, repository.NewLoanRecord(loan))
	}
	recs = append(recs, l.unresolved...)
	if err := l.repo.SaveLoans(ctx, recs); err != nil {
		l.loans[i].ReturnDate = nil
		l.log.Error("rewrite loans", zap.Error(err))
		return model.Loan{}, err
	}
	return l.loans[i], nil
}

func (l *Ledger) FindByID(loanID string) (model.Loan, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(loanID)
	if i < 0 {
		return model.Loan{}, false
	}
	return l.loans[i], true
}

func (l *Ledger) ActiveLoansForUser(username string) []model.Loan {
	return l.filter(func(loan model.Loan) bool {
		return loan.Active() && loan.Username == username
	})
}

func (l *Ledger) AllActiveLoans() []model.Loan {
	return l.filter(model.Loan.Active)
}

func (l *Ledger) OverdueLoans(today time.Time) []model.Loan {
	return l.filter(func(loan model.Loan) bool {
		return loan.IsOverdue(today)
	})
}

// LoansForItem is the loan history of an item, oldest first.
func (l *Ledger) LoansForItem(identifier string) []model.Loan {
	return l.filter(func(loan model.Loan) bool {
		return strings.EqualFold(loan.Item.Identifier, identifier)
	})
}

func (l *Ledger) HasActiveLoan(identifier string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasActiveLoan(identifier)
}

func (l *Ledger) hasActiveLoan(identifier string) bool {
	for _, loan := range l.loans {
		if loan.Active() && strings.EqualFold(loan.Item.Identifier, identifier) {
			return true
		}
	}
	for _, rec := range l.unresolved {
		if rec.ReturnDate == nil && strings.EqualFold(rec.Identifier, identifier) {
			return true
		}
	}
	return false
}

func (l *Ledger) indexOf(loanID string) int {
	for i := range l.loans {
		if l.loans[i].LoanID == loanID {
			return i
		}
	}
	return -1
}

func (l *Ledger) filter(keep func(model.Loan) bool) []model.Loan {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Loan, 0)
	for _, loan := range l.loans {
		if keep(loan) {
			out = append(out, loan)
		}
	}
	return out
}
