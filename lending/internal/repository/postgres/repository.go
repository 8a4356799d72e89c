package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

const (
	itemsTableName  = `media_items`
	copiesTableName = `media_copies`
	loansTableName  = `loans`
	usersTableName  = `users`
)

// batchRows keeps every multi-row insert well under the 65535 bind parameter limit.
const batchRows = 1000

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type statement struct {
	q    string
	args []interface{}
}

// batched splits rows into insert statements of at most batchRows rows each.
func batched[T any](rows []T, build func([]T) (string, []interface{}, error)) ([]statement, error) {
	stmts := make([]statement, 0, (len(rows)+batchRows-1)/batchRows)
	for start := 0; start < len(rows); start += batchRows {
		q, args, err := build(rows[start:min(start+batchRows, len(rows))])
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, statement{q: q, args: args})
	}
	return stmts, nil
}

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ repository.Repository = (*Repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.Named("pg-repo"),
	}
}

func (r *Repository) LoadItems(ctx context.Context) ([]model.MediaItem, error) {
	q, args, err := qb.Select("kind", "identifier", "title", "author", "available").
		From(itemsTableName).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.MediaItem
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "select items")
	}
	return items, nil
}

func (r *Repository) AppendItem(ctx context.Context, item model.MediaItem) error {
	q, args, err := upsertItemsQuery([]model.MediaItem{item}, false)
	if err != nil {
		return err
	}
	if _, err = r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		r.log.Error("AppendItem", zap.String("q", q), zap.Any("args", args))
		return errors.Wrap(err, "insert item")
	}
	return nil
}

func (r *Repository) SaveItems(ctx context.Context, items []model.MediaItem) error {
	stmts, err := batched(items, func(batch []model.MediaItem) (string, []interface{}, error) {
		return upsertItemsQuery(batch, true)
	})
	if err != nil {
		return err
	}
	return r.inTx(ctx, stmts)
}

func upsertItemsQuery(items []model.MediaItem, upsert bool) (string, []interface{}, error) {
	b := qb.Insert(itemsTableName).
		Columns("identifier", "kind", "title", "author", "available")
	for _, it := range items {
		b = b.Values(it.Identifier, string(it.Kind), it.Title, it.Author, it.Available)
	}
	if upsert {
		b = b.Suffix(`on conflict (identifier) do update set
	title = excluded.title, author = excluded.author, available = excluded.available`)
	}
	return b.ToSql()
}

func (r *Repository) LoadCopies(ctx context.Context) ([]model.MediaCopy, error) {
	q, args, err := qb.Select("copy_id", "identifier", "available").
		From(copiesTableName).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.MediaCopy
	if err := r.db.SelectContext(ctx, &copies, q, args...); err != nil {
		return nil, errors.Wrap(err, "select copies")
	}
	return copies, nil
}

func (r *Repository) SaveCopies(ctx context.Context, copies []model.MediaCopy) error {
	stmts, err := batched(copies, upsertCopiesQuery)
	if err != nil {
		return err
	}
	return r.inTx(ctx, stmts)
}

func upsertCopiesQuery(copies []model.MediaCopy) (string, []interface{}, error) {
	b := qb.Insert(copiesTableName).
		Columns("copy_id", "identifier", "available")
	for _, c := range copies {
		b = b.Values(c.CopyID, c.Identifier, c.Available)
	}
	return b.Suffix(`on conflict (copy_id) do update set available = excluded.available`).ToSql()
}

func (r *Repository) LoadLoans(ctx context.Context) ([]repository.LoanRecord, error) {
	q, args, err := qb.Select("loan_id", "username", "identifier", "borrow_date", "return_date").
		From(loansTableName).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	var recs []repository.LoanRecord
	if err := r.db.SelectContext(ctx, &recs, q, args...); err != nil {
		return nil, errors.Wrap(err, "select loans")
	}
	for i := range recs {
		recs[i].BorrowDate = model.Day(recs[i].BorrowDate)
		if recs[i].ReturnDate != nil {
			d := model.Day(*recs[i].ReturnDate)
			recs[i].ReturnDate = &d
		}
	}
	return recs, nil
}

func (r *Repository) AppendLoan(ctx context.Context, rec repository.LoanRecord) error {
	q, args, err := upsertLoansQuery([]repository.LoanRecord{rec})
	if err != nil {
		return err
	}
	if _, err = r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("AppendLoan", zap.String("q", q), zap.Any("args", args))
		return errors.Wrap(err, "insert loan")
	}
	return nil
}

func (r *Repository) SaveLoans(ctx context.Context, recs []repository.LoanRecord) error {
	stmts, err := batched(recs, upsertLoansQuery)
	if err != nil {
		return err
	}
	return r.inTx(ctx, stmts)
}

// upsertLoansQuery only ever fills a missing return date, keeping it immutable once set.
func upsertLoansQuery(recs []repository.LoanRecord) (string, []interface{}, error) {
	b := qb.Insert(loansTableName).
		Columns("loan_id", "username", "identifier", "borrow_date", "return_date")
	for _, rec := range recs {
		var returned interface{}
		if rec.ReturnDate != nil {
			returned = model.FormatDate(*rec.ReturnDate)
		}
		b = b.Values(rec.LoanID, rec.Username, rec.Identifier, model.FormatDate(rec.BorrowDate), returned)
	}
	return b.Suffix(`on conflict (loan_id) do update set
	return_date = coalesce(loans.return_date, excluded.return_date)`).ToSql()
}

func (r *Repository) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("username", "password", "lower(role) as role", "email", "last_login_date").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, errors.Wrap(err, "select user")
	}
	return u, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) inTx(ctx context.Context, stmts []statement) error {
	if len(stmts) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	for _, st := range stmts {
		if _, err = tx.ExecContext(ctx, st.q, st.args...); err != nil {
			_ = tx.Rollback()
			r.log.Error("inTx", zap.String("q", st.q), zap.Int("args", len(st.args)), zap.Error(err))
			return errors.Wrap(err, "exec")
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
