package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/project"
	"purefix/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты разбора заголовков по хешу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the parse result of one header for fast rescans.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash project.Digest

	Classes []*cppast.ClassDecl
	Diags   []diag.Diagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "headers".
	return filepath.Join(c.dir, "headers", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey включает версию схемы, чтобы смена формата инвалидировала
// записи без ручной очистки.
func cacheKey(file *source.File) project.Digest {
	schema := project.HashBytes(fmt.Appendf(nil, "purefix-dcache-v%d", diskCacheSchemaVersion))
	return project.Combine(project.Digest(file.Hash), schema)
}

func cacheLookup(c *DiskCache, file *source.File) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := c.Get(cacheKey(file), &payload)
	if err != nil || !ok {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	if payload.ContentHash != project.Digest(file.Hash) {
		return nil, false
	}
	return &payload, true
}

func cacheStore(c *DiskCache, file *source.File, res FileResult) {
	if c == nil {
		return
	}
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: project.Digest(file.Hash),
		Classes:     res.Classes,
		Diags:       res.Bag.Items(),
	}
	// Ошибка записи в кеш не мешает анализу
	_ = c.Put(cacheKey(file), payload)
}

// toFileResult восстанавливает FileResult из закешированного payload,
// подменяя FileID на актуальный для этого запуска: смещения спанов
// валидны (содержимое то же), а идентификаторы файлов — нет.
func (p *DiskPayload) toFileResult(path string, id source.FileID) FileResult {
	for _, c := range p.Classes {
		remapClass(c, id)
	}
	bag := diag.NewBag(len(p.Diags))
	for _, d := range p.Diags {
		d.Primary.File = id
		for i := range d.Notes {
			d.Notes[i].Span.File = id
		}
		bag.Add(d)
	}
	return FileResult{
		Path:    path,
		FileID:  id,
		Classes: p.Classes,
		Bag:     bag,
	}
}

func remapClass(c *cppast.ClassDecl, id source.FileID) {
	c.File = id
	c.Span.File = id
	c.BodySpan.File = id
	for i := range c.Bases {
		c.Bases[i].Span.File = id
	}
	for _, m := range c.Methods {
		m.Span.File = id
	}
}
