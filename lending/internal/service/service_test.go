package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/catalog"
	"github.com/Astemirdum/lending-service/lending/internal/copies"
	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/loans"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/notify"
	"github.com/Astemirdum/lending-service/lending/internal/repository/file"
	"github.com/Astemirdum/lending-service/lending/internal/service"
)

var day0 = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

const users = `alice;secret;customer;alice@example.com;2024-01-01
bob;secret;customer;bob@example.com;2024-01-01
libby;secret;librarian;libby@example.com;2024-01-01
`

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

type notified struct {
	username   string
	identifier string
}

type recorder struct{ got []notified }

func (r *recorder) ObserverFor(user model.User) notify.Observer {
	return notify.ObserverFunc(func(_ context.Context, identifier string) error {
		r.got = append(r.got, notified{username: user.Username, identifier: identifier})
		return nil
	})
}

type env struct {
	svc      *service.Service
	clock    *clock
	notified *recorder
}

func newEnv(t *testing.T) env {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.txt"), []byte(users), 0o644))

	log := zap.NewNop()
	repo := file.NewRepository(file.Config{
		Dir:        dir,
		BooksFile:  "books.txt",
		CDsFile:    "cds.txt",
		CopiesFile: "copies.txt",
		LoansFile:  "loans.txt",
		UsersFile:  "users.txt",
	}, log)
	clk := &clock{t: day0}
	cat := catalog.New(ctx, repo, log)
	cp := copies.New(ctx, repo, cat, log)
	ln := loans.New(ctx, repo, cat, log, loans.WithClock(clk.now), loans.WithUsers(repo))
	cat.SetCopyCounter(cp)
	cat.SetLoanIndex(ln)
	require.NoError(t, cat.RefreshAll(ctx))

	rec := &recorder{}
	svc := service.NewService(cat, cp, ln, repo, notify.NewHub(log), rec, log, service.WithClock(clk.now))
	return env{svc: svc, clock: clk, notified: rec}
}

func (e env) login(t *testing.T, username string) context.Context {
	t.Helper()
	ctx, err := e.svc.Login(context.Background(), username)
	require.NoError(t, err)
	return ctx
}

func (e env) seed(t *testing.T) {
	t.Helper()
	ctx := e.login(t, "libby")
	_, err := e.svc.AddMediaItem(ctx, model.MediaItem{Kind: model.KindBook, Identifier: "B1", Title: "Dune", Author: "Frank Herbert"}, 0)
	require.NoError(t, err)
	_, err = e.svc.AddMediaItem(ctx, model.MediaItem{Kind: model.KindCD, Identifier: "C1", Title: "Kind of Blue", Author: "Miles Davis"}, 0)
	require.NoError(t, err)
	_, err = e.svc.AddMediaItem(ctx, model.MediaItem{Kind: model.KindBook, Identifier: "B2", Title: "Emma", Author: "Jane Austen"}, 2)
	require.NoError(t, err)
}

func TestService_NotLoggedIn(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	ctx := context.Background()

	_, err := e.svc.BorrowMediaItem(ctx, "B1")
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)
	_, err = e.svc.ReturnItem(ctx, "any")
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)
	_, err = e.svc.CompleteReturn(ctx, "any")
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)
	_, err = e.svc.ViewLoans(ctx)
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)
	_, err = e.svc.AvailableItems(ctx)
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)

	_, err = e.svc.Login(ctx, "mallory")
	require.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestService_OverdueBookScenario(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")

	loan, err := e.svc.BorrowMediaItem(alice, "B1")
	require.NoError(t, err)
	require.Equal(t, model.Day(day0).AddDate(0, 0, 28), loan.DueDate)

	e.clock.advance(40)
	report, err := e.svc.ViewLoans(alice)
	require.NoError(t, err)
	require.Len(t, report.Loans, 1)
	require.Equal(t, 12, report.Loans[0].OverdueDays)
	require.Equal(t, 120, report.TotalFine)

	_, err = e.svc.ReturnItem(alice, loan.LoanID)
	require.ErrorIs(t, err, errs.ErrOutstandingFine)
	var fineErr *errs.FineError
	require.True(t, errors.As(err, &fineErr))
	require.Equal(t, 120, fineErr.Amount)
	require.Equal(t, loan.LoanID, fineErr.LoanID)

	_, err = e.svc.BorrowMediaItem(alice, "C1")
	require.ErrorIs(t, err, errs.ErrOverdueLoans)

	report, err = e.svc.ViewLoans(alice)
	require.NoError(t, err)
	require.Len(t, report.Loans, 1, "refused return leaves the loan active")

	closed, err := e.svc.CompleteReturn(alice, loan.LoanID)
	require.NoError(t, err)
	require.False(t, closed.Active())

	item, err := e.svc.FindItem(alice, "B1")
	require.NoError(t, err)
	require.True(t, item.Available)

	_, err = e.svc.CompleteReturn(alice, loan.LoanID)
	require.ErrorIs(t, err, errs.ErrLoanClosed)
	_, err = e.svc.ReturnItem(alice, loan.LoanID)
	require.ErrorIs(t, err, errs.ErrLoanClosed)

	_, err = e.svc.BorrowMediaItem(alice, "C1")
	require.NoError(t, err)
}

func TestService_CDReturnedOnTime(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")

	loan, err := e.svc.BorrowMediaItem(alice, "C1")
	require.NoError(t, err)

	e.clock.advance(3)
	closed, err := e.svc.ReturnItem(alice, loan.LoanID)
	require.NoError(t, err)
	require.Equal(t, 0, closed.Fine(e.clock.now()))
	require.Equal(t, model.Day(e.clock.now()), *closed.ReturnDate)

	report, err := e.svc.ViewLoans(alice)
	require.NoError(t, err)
	require.Empty(t, report.Loans)
}

func TestService_BorrowRefusals(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")
	bob := e.login(t, "bob")

	_, err := e.svc.BorrowMediaItem(alice, "X9")
	require.ErrorIs(t, err, errs.ErrNotFound)

	loan, err := e.svc.BorrowMediaItem(alice, "b1")
	require.NoError(t, err)

	_, err = e.svc.BorrowMediaItem(bob, "B1")
	require.ErrorIs(t, err, errs.ErrItemUnavailable)

	_, err = e.svc.ReturnItem(bob, loan.LoanID)
	require.ErrorIs(t, err, errs.ErrNotOwner)
	_, err = e.svc.ReturnItem(bob, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)

	available, err := e.svc.AvailableItems(bob)
	require.NoError(t, err)
	ids := make([]string, 0, len(available))
	for _, it := range available {
		ids = append(ids, it.Identifier)
	}
	require.ElementsMatch(t, []string{"C1", "B2"}, ids)
}

func TestService_NotifyWhenAvailable(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")
	bob := e.login(t, "bob")

	loan, err := e.svc.BorrowMediaItem(alice, "B1")
	require.NoError(t, err)
	require.NoError(t, e.svc.NotifyWhenAvailable(bob, "B1"))
	require.ErrorIs(t, e.svc.NotifyWhenAvailable(bob, "X9"), errs.ErrNotFound)

	_, err = e.svc.ReturnItem(alice, loan.LoanID)
	require.NoError(t, err)
	require.Equal(t, []notified{{username: "bob", identifier: "B1"}}, e.notified.got)

	loan, err = e.svc.BorrowMediaItem(bob, "B1")
	require.NoError(t, err)
	_, err = e.svc.ReturnItem(bob, loan.LoanID)
	require.NoError(t, err)
	require.Len(t, e.notified.got, 1, "subscriptions are one-shot")
}

func TestService_LibrarianOperations(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	libby := e.login(t, "libby")
	alice := e.login(t, "alice")

	_, err := e.svc.AddMediaItem(alice, model.MediaItem{Kind: model.KindBook, Identifier: "B3", Title: "x", Author: "y"}, 0)
	require.ErrorIs(t, err, errs.ErrForbidden)
	_, err = e.svc.OverdueReport(alice)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = e.svc.AddMediaItem(libby, model.MediaItem{Kind: model.KindCD, Identifier: "b1", Title: "x", Author: "y"}, 0)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	_, err = e.svc.AddMediaItem(libby, model.MediaItem{Kind: "DVD", Identifier: "D1", Title: "x", Author: "y"}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	created, err := e.svc.AddCopies(libby, "B2", 2, true)
	require.NoError(t, err)
	require.Equal(t, "B2-3", created[0].CopyID)
	require.Equal(t, "B2-4", created[1].CopyID)

	for _, id := range []string{"B2-1", "B2-2", "B2-3", "B2-4"} {
		_, err = e.svc.SetCopyAvailable(libby, id, false)
		require.NoError(t, err)
	}
	item, err := e.svc.FindItem(alice, "B2")
	require.NoError(t, err)
	require.False(t, item.Available, "no loanable copy left")

	cps, err := e.svc.CopiesFor(alice, "B2")
	require.NoError(t, err)
	require.Len(t, cps, 4)

	_, err = e.svc.BorrowMediaItem(alice, "C1")
	require.NoError(t, err)
	e.clock.advance(10)
	report, err := e.svc.OverdueReport(libby)
	require.NoError(t, err)
	require.Len(t, report.Loans, 1)
	require.Equal(t, 60, report.TotalFine)
}

func TestService_Search(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")

	items, err := e.svc.Search(alice, model.SearchByAuthor, "davis")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "C1", items[0].Identifier)

	items, err = e.svc.Search(alice, model.SearchByTitle, "E")
	require.NoError(t, err)
	require.Len(t, items, 3)

	items, err = e.svc.Search(alice, model.SearchByIdentifier, "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = e.svc.Search(alice, "year", "1999")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestService_ItemHistory(t *testing.T) {
	e := newEnv(t)
	e.seed(t)
	alice := e.login(t, "alice")
	libby := e.login(t, "libby")

	first, err := e.svc.BorrowMediaItem(alice, "C1")
	require.NoError(t, err)
	e.clock.advance(2)
	_, err = e.svc.ReturnItem(alice, first.LoanID)
	require.NoError(t, err)
	second, err := e.svc.BorrowMediaItem(e.login(t, "bob"), "C1")
	require.NoError(t, err)

	_, err = e.svc.ItemHistory(alice, "C1")
	require.ErrorIs(t, err, errs.ErrForbidden)
	_, err = e.svc.ItemHistory(libby, "X9")
	require.ErrorIs(t, err, errs.ErrNotFound)

	history, err := e.svc.ItemHistory(libby, "c1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, first.LoanID, history[0].LoanID)
	require.False(t, history[0].Active())
	require.Equal(t, second.LoanID, history[1].LoanID)
	require.True(t, history[1].Active())
}
