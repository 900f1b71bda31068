package tsfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"tscat/internal/domain/entities"
)

// Ext is the file extension of translation sources.
const Ext = ".ts"

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string) (*entities.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Path = path
	return cat, nil
}

// SaveFile encodes cat to path, replacing the file only once the whole
// document has been written. An existing file keeps its permissions; a new
// one is created 0644.
func SaveFile(path string, cat *entities.Catalog) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cat); err != nil {
		return err
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// LoadDir loads every catalog in dir concurrently. Catalogs are returned
// sorted by language, then path.
func LoadDir(ctx context.Context, dir string) ([]*entities.Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	cats := make([]*entities.Catalog, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := LoadFile(p)
			if err != nil {
				return err
			}
			cats[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Language != cats[j].Language {
			return cats[i].Language < cats[j].Language
		}
		return cats[i].Path < cats[j].Path
	})
	return cats, nil
}
