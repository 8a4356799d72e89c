package copies

import (
	"context"
	"strings"
	"sync"

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

// Ledger tracks the physical copies of catalog items.
type Ledger struct {
	mu      sync.RWMutex
	copies  []model.MediaCopy
	repo    repository.CopyRepository
	catalog Catalog
	log     *zap.Logger
}

func New(ctx context.Context, repo repository.CopyRepository, catalog Catalog, log *zap.Logger) *Ledger {
	l := &Ledger{
		repo:    repo,
		catalog: catalog,
		log:     log.Named("copies"),
	}
	copies, err := repo.LoadCopies(ctx)
	if err != nil {
		l.log.Error("load copies, starting empty", zap.Error(err))
		copies = nil
	}
	l.copies = copies
	return l
}

// AddCopies registers count new copies of a catalog item. Sequence numbers continue
// from the highest existing suffix for the identifier.
func (l *Ledger) AddCopies(ctx context.Context, identifier string, count int, available bool) ([]model.MediaCopy, error) {
	if count <= 0 {
		return []model.MediaCopy{}, nil
	}
	item, ok := l.catalog.FindByIdentifier(identifier)
	if !ok {
		l.log.Warn("add copies for unknown item", zap.String("identifier", identifier))
		return nil, errs.ErrNotFound
	}

	created, err := l.addCopies(ctx, item.Identifier, count, available)
	if err != nil {
		return nil, err
	}
	if err := l.catalog.RefreshAvailability(ctx, item.Identifier); err != nil {
		return created, err
	}
	l.log.Info("copies added", zap.String("identifier", item.Identifier), zap.Int("count", count))
	return created, nil
}

func (l *Ledger) addCopies(ctx context.Context, identifier string, count int, available bool) ([]model.MediaCopy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seq := 0
	for _, c := range l.copies {
		if strings.EqualFold(c.Identifier, identifier) {
			seq = max(seq, model.CopySequence(c.CopyID))
		}
	}

	created := make([]model.MediaCopy, 0, count)
	for i := 1; i <= count; i++ {
		created = append(created, model.MediaCopy{
			CopyID:     model.CopyID(identifier, seq+i),
			Identifier: identifier,
			Available:  available,
		})
	}

	next := make([]model.MediaCopy, 0, len(l.copies)+count)
	next = append(next, l.copies...)
	next = append(next, created...)
	if err := l.repo.SaveCopies(ctx, next); err != nil {
		l.log.Error("rewrite copies", zap.Error(err))
		return nil, err
	}
	l.copies = next
	return created, nil
}

// SetCopyAvailable flips one copy, e.g. when it is reported damaged or found again.
func (l *Ledger) SetCopyAvailable(ctx context.Context, copyID string, available bool) (model.MediaCopy, error) {
	updated, err := l.setCopyAvailable(ctx, copyID, available)
	if err != nil {
		return model.MediaCopy{}, err
	}
	if err := l.catalog.RefreshAvailability(ctx, updated.Identifier); err != nil {
		return updated, err
	}
	return updated, nil
}

func (l *Ledger) setCopyAvailable(ctx context.Context, copyID string, available bool) (model.MediaCopy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := -1
	for j := range l.copies {
		if strings.EqualFold(l.copies[j].CopyID, copyID) {
			i = j
			break
		}
	}
	if i < 0 {
		return model.MediaCopy{}, errs.ErrNotFound
	}
	if l.copies[i].Available == available {
		return l.copies[i], nil
	}

	prev := l.copies[i].Available
	l.copies[i].Available = available
	if err := l.repo.SaveCopies(ctx, l.copies); err != nil {
		l.copies[i].Available = prev
		l.log.Error("rewrite copies", zap.Error(err))
		return model.MediaCopy{}, err
	}
	return l.copies[i], nil
}

func (l *Ledger) AvailableCount(identifier string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, c := range l.copies {
		if c.Available && strings.EqualFold(c.Identifier, identifier) {
			n++
		}
	}
	return n
}

func (l *Ledger) HasCopies(identifier string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, c := range l.copies {
		if strings.EqualFold(c.Identifier, identifier) {
			return true
		}
	}
	return false
}

func (l *Ledger) CopiesFor(identifier string) []model.MediaCopy {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.MediaCopy, 0)
	for _, c := range l.copies {
		if strings.EqualFold(c.Identifier, identifier) {
			out = append(out, c)
		}
	}
	return out
}
