package file

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

const nullDate = "NULL"

type Config struct {
	Dir        string `envconfig:"DATA_DIR" default:"data"`
	BooksFile  string `envconfig:"BOOKS_FILE" default:"books.txt"`
	CDsFile    string `envconfig:"CDS_FILE" default:"cds.txt"`
	CopiesFile string `envconfig:"COPIES_FILE" default:"copies.txt"`
	LoansFile  string `envconfig:"LOANS_FILE" default:"loans.txt"`
	UsersFile  string `envconfig:"USERS_FILE" default:"users.txt"`
}

func (c Config) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

type Repository struct {
	catalog map[model.Kind]*table
	copies  *table
	loans   *table
	users   *table
	log     *zap.Logger
}

var _ repository.Repository = (*Repository)(nil)

func NewRepository(cfg Config, log *zap.Logger) *Repository {
	return &Repository{
		catalog: map[model.Kind]*table{
			model.KindBook: newTable(cfg.path(cfg.BooksFile)),
			model.KindCD:   newTable(cfg.path(cfg.CDsFile)),
		},
		copies: newTable(cfg.path(cfg.CopiesFile)),
		loans:  newTable(cfg.path(cfg.LoansFile)),
		users:  newTable(cfg.path(cfg.UsersFile)),
		log:    log.Named("file-repo"),
	}
}

var catalogKinds = []model.Kind{model.KindBook, model.KindCD}

// LoadItems reads books then CDs. Rows without the availability column are legacy rows and default to available.
func (r *Repository) LoadItems(_ context.Context) ([]model.MediaItem, error) {
	var items []model.MediaItem
	for _, kind := range catalogKinds {
		records, err := r.catalog[kind].readAll()
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			if len(rec) < 3 {
				r.log.Warn("skip malformed catalog row", zap.String("kind", string(kind)), zap.Strings("row", rec))
				continue
			}
			item := model.MediaItem{
				Kind:       kind,
				Title:      rec[0],
				Author:     rec[1],
				Identifier: rec[2],
				Available:  true,
			}
			if len(rec) > 3 {
				item.Available = parseBool(rec[3], true)
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *Repository) AppendItem(_ context.Context, item model.MediaItem) error {
	t, ok := r.catalog[item.Kind]
	if !ok {
		return errors.Errorf("unknown media kind %q", item.Kind)
	}
	return t.append(itemRecord(item))
}

func (r *Repository) SaveItems(_ context.Context, items []model.MediaItem) error {
	byKind := make(map[model.Kind][][]string, len(catalogKinds))
	for _, item := range items {
		byKind[item.Kind] = append(byKind[item.Kind], itemRecord(item))
	}
	for _, kind := range catalogKinds {
		if err := r.catalog[kind].rewrite(byKind[kind]); err != nil {
			return err
		}
	}
	return nil
}

func itemRecord(item model.MediaItem) []string {
	return []string{item.Title, item.Author, item.Identifier, strconv.FormatBool(item.Available)}
}

func (r *Repository) LoadCopies(_ context.Context) ([]model.MediaCopy, error) {
	records, err := r.copies.readAll()
	if err != nil {
		return nil, err
	}
	copies := make([]model.MediaCopy, 0, len(records))
	for _, rec := range records {
		if len(rec) < 3 {
			r.log.Warn("skip malformed copy row", zap.Strings("row", rec))
			continue
		}
		copies = append(copies, model.MediaCopy{
			CopyID:     rec[0],
			Identifier: rec[1],
			Available:  parseBool(rec[2], false),
		})
	}
	return copies, nil
}

func (r *Repository) SaveCopies(_ context.Context, copies []model.MediaCopy) error {
	records := make([][]string, 0, len(copies))
	for _, c := range copies {
		records = append(records, []string{c.CopyID, c.Identifier, strconv.FormatBool(c.Available)})
	}
	return r.copies.rewrite(records)
}

func (r *Repository) LoadLoans(_ context.Context) ([]repository.LoanRecord, error) {
	records, err := r.loans.readAll()
	if err != nil {
		return nil, err
	}
	loans := make([]repository.LoanRecord, 0, len(records))
	for _, rec := range records {
		loan, err := parseLoan(rec)
		if err != nil {
			r.log.Warn("skip malformed loan row", zap.Strings("row", rec), zap.Error(err))
			continue
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

func (r *Repository) AppendLoan(_ context.Context, rec repository.LoanRecord) error {
	return r.loans.append(loanRecord(rec))
}

func (r *Repository) SaveLoans(_ context.Context, recs []repository.LoanRecord) error {
	records := make([][]string, 0, len(recs))
	for _, rec := range recs {
		records = append(records, loanRecord(rec))
	}
	return r.loans.rewrite(records)
}

func parseLoan(rec []string) (repository.LoanRecord, error) {
	if len(rec) < 5 {
		return repository.LoanRecord{}, errors.Errorf("want 5 fields, got %d", len(rec))
	}
	borrowed, err := model.ParseDate(rec[3])
	if err != nil {
		return repository.LoanRecord{}, errors.Wrap(err, "borrow date")
	}
	loan := repository.LoanRecord{
		LoanID:     rec[0],
		Username:   rec[1],
		Identifier: rec[2],
		BorrowDate: borrowed,
	}
	if rec[4] != nullDate && rec[4] != "" {
		returned, err := model.ParseDate(rec[4])
		if err != nil {
			return repository.LoanRecord{}, errors.Wrap(err, "return date")
		}
		loan.ReturnDate = &returned
	}
	return loan, nil
}

func loanRecord(rec repository.LoanRecord) []string {
	returned := nullDate
	if rec.ReturnDate != nil {
		returned = model.FormatDate(*rec.ReturnDate)
	}
	return []string{rec.LoanID, rec.Username, rec.Identifier, model.FormatDate(rec.BorrowDate), returned}
}

// FindUserByUsername scans the user file; matching is case-sensitive like the login it serves.
func (r *Repository) FindUserByUsername(_ context.Context, username string) (model.User, error) {
	records, err := r.users.readAll()
	if err != nil {
		return model.User{}, err
	}
	for _, rec := range records {
		if len(rec) < 3 || rec[0] != username {
			continue
		}
		u := model.User{Username: rec[0], Password: rec[1], Role: model.Role(strings.ToLower(rec[2]))}
		if len(rec) > 3 {
			u.Email = rec[3]
		}
		if len(rec) > 4 {
			u.LastLoginDate = rec[4]
		}
		return u, nil
	}
	return model.User{}, errs.ErrNotFound
}

func (r *Repository) Close() error {
	return nil
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}
