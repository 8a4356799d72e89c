package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
)

// fieldBreakers would split a stored row.
const fieldBreakers = ";\r\n"

// CopyCounter answers how many loanable copies an item has.
type CopyCounter interface {
	HasCopies(identifier string) bool
	AvailableCount(identifier string) int
}

// LoanIndex answers whether an item is currently out on loan.
type LoanIndex interface {
	HasActiveLoan(identifier string) bool
}

// Catalog is the in-memory working copy of every media item, written through to its repository.
type Catalog struct {
	mu    sync.RWMutex
	items []model.MediaItem
	repo  repository.CatalogRepository
	log   *zap.Logger

	copies CopyCounter
	loans  LoanIndex
}

func New(ctx context.Context, repo repository.CatalogRepository, log *zap.Logger) *Catalog {
	c := &Catalog{
		repo: repo,
		log:  log.Named("catalog"),
	}
	items, err := repo.LoadItems(ctx)
	if err != nil {
		c.log.Error("load catalog, starting empty", zap.Error(err))
		items = nil
	}
	c.items = items
	c.log.Debug("catalog loaded", zap.Int("items", len(items)))
	return c
}

// SetCopyCounter wires the copy ledger after both are constructed.
func (c *Catalog) SetCopyCounter(cc CopyCounter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.copies = cc
}

// SetLoanIndex wires the loan ledger after both are constructed.
func (c *Catalog) SetLoanIndex(li LoanIndex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loans = li
}

func (c *Catalog) Save(ctx context.Context, item model.MediaItem) error {
	if !item.Kind.Valid() {
		return errors.Errorf("unknown media kind %q", item.Kind)
	}
	for _, field := range []string{item.Identifier, item.Title, item.Author} {
		if field == "" || strings.ContainsAny(field, fieldBreakers) {
			return errors.Wrapf(errs.ErrInvalidArgument, "field %q", field)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(item.Identifier) >= 0 {
		return errs.ErrAlreadyExists
	}
	item.Available = true
	if err := c.repo.AppendItem(ctx, item); err != nil {
		c.log.Error("append item", zap.String("identifier", item.Identifier), zap.Error(err))
		return err
	}
	c.items = append(c.items, item)
	return nil
}

func (c *Catalog) FindByIdentifier(identifier string) (model.MediaItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(identifier)
	if i < 0 {
		return model.MediaItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) SearchByIdentifier(identifier string) []model.MediaItem {
	item, ok := c.FindByIdentifier(identifier)
	if !ok {
		return []model.MediaItem{}
	}
	return []model.MediaItem{item}
}

func (c *Catalog) SearchByTitle(substr string) []model.MediaItem {
	return c.filter(func(it model.MediaItem) bool {
		return containsFold(it.Title, substr)
	})
}

func (c *Catalog) SearchByAuthor(substr string) []model.MediaItem {
	return c.filter(func(it model.MediaItem) bool {
		return containsFold(it.Author, substr)
	})
}

func (c *Catalog) Available() []model.MediaItem {
	return c.filter(func(it model.MediaItem) bool {
		return it.Available
	})
}

// ListAll returns a copy; callers cannot reach the cached items.
func (c *Catalog) ListAll() []model.MediaItem {
	return c.filter(func(model.MediaItem) bool { return true })
}

// RefreshAvailability recomputes one item's flag and rewrites the whole catalog.
// An item is available when it is not out on loan and, if copies are tracked for it,
// at least one copy is available. Items without tracked copies count as a single copy.
func (c *Catalog) RefreshAvailability(ctx context.Context, identifier string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(identifier)
	if i < 0 {
		return errs.ErrNotFound
	}
	c.items[i].Available = c.derive(c.items[i].Identifier)
	return c.persist(ctx)
}

// RefreshAll reconciles every item, used once the ledgers are loaded.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i := range c.items {
		available := c.derive(c.items[i].Identifier)
		if available != c.items[i].Available {
			c.items[i].Available = available
			changed++
		}
	}
	if changed == 0 {
		return nil
	}
	c.log.Info("availability reconciled", zap.Int("changed", changed))
	return c.persist(ctx)
}

func (c *Catalog) derive(identifier string) bool {
	if c.loans != nil && c.loans.HasActiveLoan(identifier) {
		return false
	}
	if c.copies != nil && c.copies.HasCopies(identifier) {
		return c.copies.AvailableCount(identifier) > 0
	}
	return true
}

func (c *Catalog) persist(ctx context.Context) error {
	if err := c.repo.SaveItems(ctx, c.items); err != nil {
		c.log.Error("rewrite catalog", zap.Error(err))
		return err
	}
	return nil
}

func (c *Catalog) indexOf(identifier string) int {
	for i := range c.items {
		if strings.EqualFold(c.items[i].Identifier, identifier) {
			return i
		}
	}
	return -1
}

func (c *Catalog) filter(keep func(model.MediaItem) bool) []model.MediaItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.MediaItem, 0, len(c.items))
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
