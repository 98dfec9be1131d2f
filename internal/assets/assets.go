// Package assets handles resource loading and caching.
//
// Files are looked up in a stack of sources: usually the resource directory on
// disk, layered over embedded defaults. The last added source wins.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/logger"
	"github.com/Faultbox/glade/pkg/formats"
)

type source struct {
	name string
	fsys fs.FS
}

// Manager handles asset loading from layered file systems.
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
	log     *zap.Logger
}

// NewManager creates a new asset manager with no sources.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// AddDir adds a directory on disk as a source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("resource dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("resource dir %s: not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// AddFS adds a file system as a source. Sources are searched in reverse
// order (last added = highest priority).
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	m.mu.Unlock()
}

// Load returns the contents of a slash-separated path.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i].fsys, name)
		if err == nil {
			m.log.Debug("loaded", zap.String("path", name), zap.String("source", m.sources[i].name), zap.Int("bytes", len(data)))
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

// LoadOBJ loads and parses a Wavefront OBJ file.
func (m *Manager) LoadOBJ(name string) (*formats.OBJ, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, &LoadError{Kind: KindGeometry, Path: name, Err: err}
	}
	obj, err := formats.ParseOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Kind: KindGeometry, Path: name, Err: err}
	}
	for _, w := range obj.Warnings {
		m.log.Debug("obj warning", zap.String("path", name), zap.String("warning", w))
	}
	return obj, nil
}

// LoadImage loads and decodes an image in any registered format.
func (m *Manager) LoadImage(name string) (image.Image, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: name, Err: err}
	}
	img, _, err := decodeImage(data)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: name, Err: err}
	}
	return img, nil
}

// LoadShaderSource loads a shader source file as text.
func (m *Manager) LoadShaderSource(name string) (string, error) {
	data, err := m.Load(name)
	if err != nil {
		return "", &LoadError{Kind: KindShader, Path: name, Err: err}
	}
	return string(data), nil
}

// Exists reports whether any source has the path.
func (m *Manager) Exists(name string) bool {
	name = path.Clean(name)
	if _, ok := m.cache.Get(name); ok {
		return true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.sources) - 1; i >= 0; i-- {
		if _, err := fs.Stat(m.sources[i].fsys, name); err == nil {
			return true
		}
	}
	return false
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = nil
	m.cache.Clear()
}

// Cache returns the manager's byte cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
