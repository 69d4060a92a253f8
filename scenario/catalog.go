package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Catalog indexes scenarios by name. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*Scenario
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Scenario)}
}

// Builtin returns a fresh catalog holding the embedded scenarios.
func Builtin() *Catalog {
	c := NewCatalog()
	if err := c.loadFS(builtinFS, "builtin"); err != nil {
		panic(fmt.Sprintf("scenario: embedded scenarios: %v", err))
	}

	return c
}

// Add registers s. Names are unique.
func (c *Catalog) Add(s *Scenario) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byName[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Name)
	}
	c.byName[s.Name] = s

	return nil
}

// Get returns the scenario called name.
func (c *Catalog) Get(name string) (*Scenario, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}

	return s, nil
}

// Names lists the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of scenarios.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byName)
}

// LoadDir adds every *.yaml and *.yml file in dir (not recursive).
func (c *Catalog) LoadDir(dir string) error {
	return c.loadFS(os.DirFS(dir), ".")
}

func (c *Catalog) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("scenario: read dir: %w", err)
	}
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		name := e.Name()
		if dir != "." {
			name = dir + "/" + name
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("scenario: read %s: %w", name, err)
		}
		s, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := c.Add(s); err != nil {
			return err
		}
	}

	return nil
}
