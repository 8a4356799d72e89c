package copies_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/catalog"
	"github.com/Astemirdum/lending-service/lending/internal/copies"
	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository/file"
)

type fixture struct {
	dir     string
	repo    *file.Repository
	catalog *catalog.Catalog
	ledger  *copies.Ledger
}

func newFixture(t *testing.T, dir string) fixture {
	t.Helper()
	ctx := context.Background()
	repo := file.NewRepository(file.Config{
		Dir:        dir,
		BooksFile:  "books.txt",
		CDsFile:    "cds.txt",
		CopiesFile: "copies.txt",
		LoansFile:  "loans.txt",
		UsersFile:  "users.txt",
	}, zap.NewNop())
	cat := catalog.New(ctx, repo, zap.NewNop())
	ledger := copies.New(ctx, repo, cat, zap.NewNop())
	cat.SetCopyCounter(ledger)
	return fixture{dir: dir, repo: repo, catalog: cat, ledger: ledger}
}

func TestLedger_AddCopiesSequence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := newFixture(t, dir)
	require.NoError(t, f.catalog.Save(ctx, model.MediaItem{Kind: model.KindBook, Identifier: "978-3-16", Title: "Dune", Author: "Herbert"}))

	created, err := f.ledger.AddCopies(ctx, "978-3-16", 2, true)
	require.NoError(t, err)
	require.Equal(t, []string{"978-3-16-1", "978-3-16-2"}, copyIDs(created))

	created, err = f.ledger.AddCopies(ctx, "978-3-16", 2, false)
	require.NoError(t, err)
	require.Equal(t, []string{"978-3-16-3", "978-3-16-4"}, copyIDs(created))

	require.Equal(t, 2, f.ledger.AvailableCount("978-3-16"))
	require.Len(t, f.ledger.CopiesFor("978-3-16"), 4)

	reloaded := newFixture(t, dir)
	require.Equal(t, 2, reloaded.ledger.AvailableCount("978-3-16"))
	require.Equal(t, f.ledger.CopiesFor("978-3-16"), reloaded.ledger.CopiesFor("978-3-16"))
}

func TestLedger_AddCopiesEdgeCases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, t.TempDir())

	created, err := f.ledger.AddCopies(ctx, "B1", 0, true)
	require.NoError(t, err)
	require.Empty(t, created)

	_, err = f.ledger.AddCopies(ctx, "B1", 2, true)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.False(t, f.ledger.HasCopies("B1"))
	require.Empty(t, f.ledger.CopiesFor("B1"))
}

func TestLedger_MalformedSuffix(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.txt"), []byte("Dune;Herbert;B1;true\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "copies.txt"), []byte("B1-x;B1;true\nB1-2;B1;false\n"), 0o644))

	f := newFixture(t, dir)
	created, err := f.ledger.AddCopies(ctx, "B1", 1, true)
	require.NoError(t, err)
	require.Equal(t, "B1-3", created[0].CopyID)
	require.Equal(t, 2, f.ledger.AvailableCount("B1"))
}

func TestLedger_AvailabilityFollowsCopies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, t.TempDir())
	require.NoError(t, f.catalog.Save(ctx, model.MediaItem{Kind: model.KindCD, Identifier: "C1", Title: "Blue", Author: "Davis"}))

	_, err := f.ledger.AddCopies(ctx, "C1", 1, false)
	require.NoError(t, err)
	item, _ := f.catalog.FindByIdentifier("C1")
	require.False(t, item.Available)

	cp, err := f.ledger.SetCopyAvailable(ctx, "C1-1", true)
	require.NoError(t, err)
	require.True(t, cp.Available)
	item, _ = f.catalog.FindByIdentifier("C1")
	require.True(t, item.Available)

	_, err = f.ledger.SetCopyAvailable(ctx, "C1-9", true)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func copyIDs(cs []model.MediaCopy) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.CopyID)
	}
	return out
}
