package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

func Test_upsertItemsQuery(t *testing.T) {
	items := []model.MediaItem{
		{Kind: model.KindBook, Identifier: "B1", Title: "Dune", Author: "Herbert", Available: true},
		{Kind: model.KindCD, Identifier: "C1", Title: "Blue", Author: "Mitchell"},
	}

	q, args, err := upsertItemsQuery(items, false)
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO media_items (identifier,kind,title,author,available) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)", q)
	require.Equal(t, []interface{}{"B1", "BOOK", "Dune", "Herbert", true, "C1", "CD", "Blue", "Mitchell", false}, args)

	q, _, err = upsertItemsQuery(items[:1], true)
	require.NoError(t, err)
	require.Contains(t, q, "on conflict (identifier) do update")
}

func Test_upsertLoansQuery(t *testing.T) {
	borrowed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	returned := borrowed.AddDate(0, 0, 3)
	q, args, err := upsertLoansQuery([]repository.LoanRecord{
		{LoanID: "l1", Username: "alice", Identifier: "B1", BorrowDate: borrowed},
		{LoanID: "l2", Username: "bob", Identifier: "C1", BorrowDate: borrowed, ReturnDate: &returned},
	})
	require.NoError(t, err)
	require.Contains(t, q, "coalesce(loans.return_date, excluded.return_date)")
	require.Equal(t, []interface{}{
		"l1", "alice", "B1", "2024-01-01", nil,
		"l2", "bob", "C1", "2024-01-01", "2024-01-04",
	}, args)
}

func Test_upsertCopiesQuery(t *testing.T) {
	q, args, err := upsertCopiesQuery([]model.MediaCopy{{CopyID: "B1-1", Identifier: "B1", Available: true}})
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO media_copies (copy_id,identifier,available) VALUES ($1,$2,$3) on conflict (copy_id) do update set available = excluded.available", q)
	require.Equal(t, []interface{}{"B1-1", "B1", true}, args)
}

func Test_batchedSplitsLargeRewrites(t *testing.T) {
	borrowed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recs := make([]repository.LoanRecord, 2500)
	for i := range recs {
		recs[i] = repository.LoanRecord{LoanID: fmt.Sprintf("l%d", i), Username: "alice", Identifier: "B1", BorrowDate: borrowed}
	}

	stmts, err := batched(recs, upsertLoansQuery)
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	rows := 0
	for _, st := range stmts {
		require.LessOrEqual(t, len(st.args), 65535)
		require.Contains(t, st.q, "on conflict (loan_id)")
		require.NotContains(t, st.q, fmt.Sprintf("$%d,", batchRows*5+1))
		rows += len(st.args) / 5
	}
	require.Equal(t, len(recs), rows)
	require.Equal(t, "l2000", stmts[2].args[0])
	require.Equal(t, 500*5, len(stmts[2].args))

	stmts, err = batched([]model.MediaCopy{}, upsertCopiesQuery)
	require.NoError(t, err)
	require.Empty(t, stmts)

	items := make([]model.MediaItem, batchRows)
	for i := range items {
		items[i] = model.MediaItem{Kind: model.KindBook, Identifier: fmt.Sprintf("B%d", i), Title: "t", Author: "a"}
	}
	stmts, err = batched(items, func(batch []model.MediaItem) (string, []interface{}, error) {
		return upsertItemsQuery(batch, true)
	})
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, batchRows, strings.Count(stmts[0].q, "),(")+1)
}

func Test_isUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "insert")))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	require.False(t, isUniqueViolation(errors.New("boom")))
}
