package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

func newTestRepo(t *testing.T) (*Repository, Config) {
	t.Helper()
	cfg := Config{
		Dir:        t.TempDir(),
		BooksFile:  "books.txt",
		CDsFile:    "cds.txt",
		CopiesFile: "copies.txt",
		LoansFile:  "loans.txt",
		UsersFile:  "users.txt",
	}
	return NewRepository(cfg, zap.NewNop()), cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRepository_LoadItemsMissingFiles(t *testing.T) {
	r, _ := newTestRepo(t)
	items, err := r.LoadItems(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRepository_LoadItemsLegacyRows(t *testing.T) {
	r, cfg := newTestRepo(t)
	writeFile(t, cfg.path(cfg.BooksFile), "Dune;Herbert;B1\nEmma;Austen;B2;false\n\nbroken;row\n")
	writeFile(t, cfg.path(cfg.CDsFile), "Kind of Blue;Davis;C1;true\n")

	items, err := r.LoadItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.MediaItem{
		{Kind: model.KindBook, Title: "Dune", Author: "Herbert", Identifier: "B1", Available: true},
		{Kind: model.KindBook, Title: "Emma", Author: "Austen", Identifier: "B2", Available: false},
		{Kind: model.KindCD, Title: "Kind of Blue", Author: "Davis", Identifier: "C1", Available: true},
	}, items)
}

func TestRepository_SaveItemsSplitsByKind(t *testing.T) {
	r, cfg := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AppendItem(ctx, model.MediaItem{Kind: model.KindCD, Title: "T", Author: "A", Identifier: "C9", Available: true}))
	require.Equal(t, "T;A;C9;true\n", readFile(t, cfg.path(cfg.CDsFile)))

	require.NoError(t, r.SaveItems(ctx, []model.MediaItem{
		{Kind: model.KindBook, Title: "Dune", Author: "Herbert", Identifier: "B1", Available: false},
		{Kind: model.KindCD, Title: "T", Author: "A", Identifier: "C9", Available: true},
	}))
	require.Equal(t, "Dune;Herbert;B1;false\n", readFile(t, cfg.path(cfg.BooksFile)))
	require.Equal(t, "T;A;C9;true\n", readFile(t, cfg.path(cfg.CDsFile)))

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp", "temp files are cleaned up")
	}
}

func TestRepository_AppendItemUnknownKind(t *testing.T) {
	r, _ := newTestRepo(t)
	require.Error(t, r.AppendItem(context.Background(), model.MediaItem{Kind: "VINYL", Identifier: "V1"}))
}

func TestRepository_CopiesRoundTrip(t *testing.T) {
	r, cfg := newTestRepo(t)
	ctx := context.Background()
	copies := []model.MediaCopy{
		{CopyID: "B1-1", Identifier: "B1", Available: true},
		{CopyID: "B1-2", Identifier: "B1", Available: false},
	}
	require.NoError(t, r.SaveCopies(ctx, copies))
	require.Equal(t, "B1-1;B1;true\nB1-2;B1;false\n", readFile(t, cfg.path(cfg.CopiesFile)))

	got, err := r.LoadCopies(ctx)
	require.NoError(t, err)
	require.Equal(t, copies, got)
}

func TestRepository_LoansRoundTrip(t *testing.T) {
	r, cfg := newTestRepo(t)
	ctx := context.Background()

	borrowed, err := model.ParseDate("2024-01-01")
	require.NoError(t, err)
	returned := borrowed.AddDate(0, 0, 3)

	open := repository.LoanRecord{LoanID: "l1", Username: "alice", Identifier: "B1", BorrowDate: borrowed}
	closed := repository.LoanRecord{LoanID: "l2", Username: "bob", Identifier: "C1", BorrowDate: borrowed, ReturnDate: &returned}

	require.NoError(t, r.AppendLoan(ctx, open))
	require.NoError(t, r.AppendLoan(ctx, closed))
	require.Equal(t, "l1;alice;B1;2024-01-01;NULL\nl2;bob;C1;2024-01-01;2024-01-04\n", readFile(t, cfg.path(cfg.LoansFile)))

	got, err := r.LoadLoans(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.LoanRecord{open, closed}, got)

	require.NoError(t, r.SaveLoans(ctx, got[:1]))
	require.Equal(t, "l1;alice;B1;2024-01-01;NULL\n", readFile(t, cfg.path(cfg.LoansFile)))
}

func TestRepository_LoadLoansSkipsMalformed(t *testing.T) {
	r, cfg := newTestRepo(t)
	writeFile(t, cfg.path(cfg.LoansFile), "l1;alice;B1;yesterday;NULL\nl2;alice;B1\nl3;bob;C1;2024-02-01;NULL\n")

	got, err := r.LoadLoans(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "l3", got[0].LoanID)
	require.Nil(t, got[0].ReturnDate)
}

func TestRepository_FindUserByUsername(t *testing.T) {
	r, cfg := newTestRepo(t)
	writeFile(t, cfg.path(cfg.UsersFile), "alice;secret;CUSTOMER;alice@example.com;2024-01-01\nlib;pw;librarian\n")
	ctx := context.Background()

	u, err := r.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, model.User{
		Username: "alice", Password: "secret", Role: model.RoleCustomer,
		Email: "alice@example.com", LastLoginDate: "2024-01-01",
	}, u)

	u, err = r.FindUserByUsername(ctx, "lib")
	require.NoError(t, err)
	require.Equal(t, model.RoleLibrarian, u.Role)
	require.Empty(t, u.Email)

	_, err = r.FindUserByUsername(ctx, "ALICE")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestConfig_PathKeepsAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.txt")
	cfg := Config{Dir: "data"}
	require.Equal(t, abs, cfg.path(abs))
	require.Equal(t, filepath.Join("data", "books.txt"), cfg.path("books.txt"))
}
