package file

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const fieldSeparator = ";"

// table is a line-per-record text file with ';' separated fields.
type table struct {
	mu   sync.Mutex
	path string
}

func newTable(path string) *table {
	return &table{path: path}
}

// readAll returns every non-blank line split into fields; a missing file is an empty table.
func (t *table) readAll() ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "open %s", t.path)
	}
	defer f.Close()

	var records [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, fieldSeparator))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", t.path)
	}
	return records, nil
}

func (t *table) append(record []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", t.path)
	}
	if _, err = f.WriteString(strings.Join(record, fieldSeparator) + "\n"); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "append %s", t.path)
	}
	return f.Close()
}

// rewrite replaces the whole file through a temp file and rename.
func (t *table) rewrite(records [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err = w.WriteString(strings.Join(rec, fieldSeparator) + "\n"); err != nil {
			_ = tmp.Close()
			return errors.Wrapf(err, "write %s", tmp.Name())
		}
	}
	if err = w.Flush(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "flush")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), t.path), "rename to %s", t.path)
}
