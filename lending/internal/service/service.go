package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/catalog"
	"github.com/Astemirdum/lending-service/lending/internal/copies"
	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/loans"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/notify"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/auth"
)

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service applies the lending policy on top of the ledgers. Operations act on behalf
// of the user bound to the context by Login.
type Service struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	copies   *copies.Ledger
	loans    *loans.Ledger
	users    repository.UserRepository
	hub      *notify.Hub
	notifier notify.Notifier
	now      func() time.Time
	log      *zap.Logger
}

func NewService(
	catalog *catalog.Catalog,
	copies *copies.Ledger,
	loans *loans.Ledger,
	users repository.UserRepository,
	hub *notify.Hub,
	notifier notify.Notifier,
	log *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		catalog:  catalog,
		copies:   copies,
		loans:    loans,
		users:    users,
		hub:      hub,
		notifier: notifier,
		now:      time.Now,
		log:      log.Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login resolves username in the user directory and binds it to the returned context.
func (s *Service) Login(ctx context.Context, username string) (context.Context, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ctx, errs.ErrNotLoggedIn
		}
		return ctx, errors.Wrap(err, "find user")
	}
	return auth.SetAuthContext(ctx, auth.Auth{
		UserName: user.Username,
		Role:     string(user.Role),
		Email:    user.Email,
	}), nil
}

func (s *Service) currentUser(ctx context.Context) (model.User, error) {
	a, err := auth.FromContext(ctx)
	if err != nil {
		return model.User{}, errs.ErrNotLoggedIn
	}
	return model.User{Username: a.UserName, Role: model.Role(a.Role), Email: a.Email}, nil
}

func (s *Service) manager(ctx context.Context) (model.User, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return model.User{}, err
	}
	if !user.Role.CanManage() {
		return model.User{}, errs.ErrForbidden
	}
	return user, nil
}

// BorrowMediaItem lends an available item to the current user. Users with an overdue
// loan or any unpaid fine cannot borrow.
func (s *Service) BorrowMediaItem(ctx context.Context, identifier string) (model.Loan, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return model.Loan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog.FindByIdentifier(identifier)
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	if !item.Available {
		return model.Loan{}, errs.ErrItemUnavailable
	}

	today := s.now()
	total := 0
	for _, l := range s.loans.ActiveLoansForUser(user.Username) {
		if l.IsOverdue(today) {
			return model.Loan{}, errs.ErrOverdueLoans
		}
		total += l.Fine(today)
	}
	if total > 0 {
		return model.Loan{}, &errs.FineError{Amount: total}
	}

	return s.loans.Borrow(ctx, user.Username, item.Identifier)
}

// ReturnItem closes the current user's loan unless a fine is owed; then the loan stays
// active and the returned FineError carries the amount.
func (s *Service) ReturnItem(ctx context.Context, loanID string) (model.Loan, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return model.Loan{}, err
	}

	closed, err := func() (model.Loan, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		loan, err := s.activeLoan(loanID)
		if err != nil {
			return model.Loan{}, err
		}
		if loan.Username != user.Username {
			return model.Loan{}, errs.ErrNotOwner
		}
		if fine := loan.Fine(s.now()); fine > 0 {
			return model.Loan{}, &errs.FineError{LoanID: loan.LoanID, Amount: fine}
		}
		return s.loans.ReturnLoan(ctx, loan.LoanID, nil)
	}()
	if err != nil {
		return model.Loan{}, err
	}
	s.publishIfAvailable(ctx, closed.Item.Identifier)
	return closed, nil
}

// CompleteReturn closes a loan whatever its fine, once the fine has been settled.
func (s *Service) CompleteReturn(ctx context.Context, loanID string) (model.Loan, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return model.Loan{}, err
	}

	closed, err := func() (model.Loan, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		loan, err := s.activeLoan(loanID)
		if err != nil {
			return model.Loan{}, err
		}
		s.log.Info("complete return",
			zap.String("loanId", loan.LoanID),
			zap.String("by", user.Username),
			zap.Int("fine", loan.Fine(s.now())))
		return s.loans.ReturnLoan(ctx, loan.LoanID, nil)
	}()
	if err != nil {
		return model.Loan{}, err
	}
	s.publishIfAvailable(ctx, closed.Item.Identifier)
	return closed, nil
}

func (s *Service) activeLoan(loanID string) (model.Loan, error) {
	loan, ok := s.loans.FindByID(loanID)
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	if !loan.Active() {
		return model.Loan{}, errs.ErrLoanClosed
	}
	return loan, nil
}

func (s *Service) publishIfAvailable(ctx context.Context, identifier string) {
	item, ok := s.catalog.FindByIdentifier(identifier)
	if !ok || !item.Available {
		return
	}
	s.hub.PublishAvailable(ctx, item.Identifier)
}

func (s *Service) ViewLoans(ctx context.Context) (model.LoanReport, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return model.LoanReport{}, err
	}
	return model.NewLoanReport(user.Username, s.loans.ActiveLoansForUser(user.Username), s.now()), nil
}

func (s *Service) AvailableItems(ctx context.Context) ([]model.MediaItem, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Available(), nil
}

func (s *Service) FindItem(ctx context.Context, identifier string) (model.MediaItem, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return model.MediaItem{}, err
	}
	item, ok := s.catalog.FindByIdentifier(identifier)
	if !ok {
		return model.MediaItem{}, errs.ErrNotFound
	}
	return item, nil
}

func (s *Service) CopiesFor(ctx context.Context, identifier string) ([]model.MediaCopy, error) {
	item, err := s.FindItem(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.copies.CopiesFor(item.Identifier), nil
}

func (s *Service) Search(ctx context.Context, field model.SearchField, query string) ([]model.MediaItem, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}
	switch field {
	case model.SearchByTitle:
		return s.catalog.SearchByTitle(query), nil
	case model.SearchByAuthor:
		return s.catalog.SearchByAuthor(query), nil
	case model.SearchByIdentifier:
		return s.catalog.SearchByIdentifier(query), nil
	default:
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "search field %q", field)
	}
}

// AddMediaItem catalogs a new item and registers its initial copies.
func (s *Service) AddMediaItem(ctx context.Context, item model.MediaItem, copies int) (model.MediaItem, error) {
	if _, err := s.manager(ctx); err != nil {
		return model.MediaItem{}, err
	}
	if !item.Kind.Valid() {
		return model.MediaItem{}, errors.Wrapf(errs.ErrInvalidArgument, "kind %q", item.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Save(ctx, item); err != nil {
		return model.MediaItem{}, err
	}
	if copies > 0 {
		if _, err := s.copies.AddCopies(ctx, item.Identifier, copies, true); err != nil {
			return model.MediaItem{}, err
		}
	}
	saved, _ := s.catalog.FindByIdentifier(item.Identifier)
	s.log.Info("item added", zap.String("identifier", saved.Identifier), zap.String("kind", string(saved.Kind)), zap.Int("copies", copies))
	return saved, nil
}

func (s *Service) AddCopies(ctx context.Context, identifier string, count int, available bool) ([]model.MediaCopy, error) {
	if _, err := s.manager(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copies.AddCopies(ctx, identifier, count, available)
}

func (s *Service) SetCopyAvailable(ctx context.Context, copyID string, available bool) (model.MediaCopy, error) {
	if _, err := s.manager(ctx); err != nil {
		return model.MediaCopy{}, err
	}

	cp, err := func() (model.MediaCopy, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.copies.SetCopyAvailable(ctx, copyID, available)
	}()
	if err != nil {
		return model.MediaCopy{}, err
	}
	s.publishIfAvailable(ctx, cp.Identifier)
	return cp, nil
}

// OverdueReport lists every overdue loan with its fine as of today.
func (s *Service) OverdueReport(ctx context.Context) (model.LoanReport, error) {
	if _, err := s.manager(ctx); err != nil {
		return model.LoanReport{}, err
	}
	today := s.now()
	return model.NewLoanReport("", s.loans.OverdueLoans(today), today), nil
}

// ItemHistory lists every loan of an item, oldest first.
func (s *Service) ItemHistory(ctx context.Context, identifier string) ([]model.Loan, error) {
	if _, err := s.manager(ctx); err != nil {
		return nil, err
	}
	item, ok := s.catalog.FindByIdentifier(identifier)
	if !ok {
		return nil, errs.ErrNotFound
	}
	return s.loans.LoansForItem(item.Identifier), nil
}

// NotifyWhenAvailable subscribes the current user to the next availability of an item.
func (s *Service) NotifyWhenAvailable(ctx context.Context, identifier string) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	item, ok := s.catalog.FindByIdentifier(identifier)
	if !ok {
		return errs.ErrNotFound
	}
	s.hub.Subscribe(item.Identifier, s.notifier.ObserverFor(user))
	return nil
}
