// Package store keeps saved notes keyed by their derived title, plus the
// favorites list, and snapshots both to a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"marknote/internal/markup"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrNoTitle  = errors.New("document has no title line")
)

// Entry is one saved document.
type Entry struct {
	Content    string    `json:"content"`
	PageCount  int       `json:"page_count"`
	IsFavorite bool      `json:"is_favorite"`
	SavedAt    time.Time `json:"saved_at"`
}

// Store maps titles to entries. Saving under an existing title replaces it.
type Store struct {
	cache *cache.Cache
	now   func() time.Time
}

func New() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, 0),
		now:   time.Now,
	}
}

func (s *Store) Save(title string, e Entry) {
	if e.SavedAt.IsZero() {
		e.SavedAt = s.now()
	}
	s.cache.Set(title, e, cache.NoExpiration)
}

func (s *Store) Get(title string) (Entry, error) {
	if x, found := s.cache.Get(title); found {
		return x.(Entry), nil
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, title)
}

func (s *Store) Delete(title string) { s.cache.Delete(title) }

func (s *Store) Len() int { return s.cache.ItemCount() }

// Titles returns all keys sorted.
func (s *Store) Titles() []string {
	items := s.cache.Items()
	out := make([]string, 0, len(items))
	for k := range items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// AutoSave stores buffer under its title unless the title is empty or still
// the placeholder, or the buffer is blank.
func (s *Store) AutoSave(buffer string, pageCount int, favorite bool) (string, bool) {
	title := markup.TitleOf(buffer)
	if title == "" || title == markup.PlaceholderTitle || strings.TrimSpace(buffer) == "" {
		return title, false
	}
	s.Save(title, Entry{Content: buffer, PageCount: pageCount, IsFavorite: favorite})
	return title, true
}

// ReadText reads a plain text note with line endings normalised to "\n".
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// Import stores the note at path under its title. Page breaks already in the
// text count towards its pages.
func (s *Store) Import(path string) (string, error) {
	text, err := ReadText(path)
	if err != nil {
		return "", err
	}
	title := markup.TitleOf(text)
	if title == "" {
		return "", fmt.Errorf("import %s: %w", path, ErrNoTitle)
	}
	s.Save(title, Entry{Content: text, PageCount: strings.Count(text, markup.PageBreak) + 1})
	return title, nil
}

// Favorites is an insertion-ordered set of titles.
type Favorites struct {
	titles []string
}

func (f *Favorites) Contains(title string) bool {
	for _, t := range f.titles {
		if t == title {
			return true
		}
	}
	return false
}

// Add appends title unless it is already present.
func (f *Favorites) Add(title string) {
	if !f.Contains(title) {
		f.titles = append(f.titles, title)
	}
}

func (f *Favorites) Remove(title string) {
	out := f.titles[:0]
	for _, t := range f.titles {
		if t != title {
			out = append(out, t)
		}
	}
	f.titles = out
}

func (f *Favorites) List() []string { return append([]string(nil), f.titles...) }

func (f *Favorites) Len() int { return len(f.titles) }

type snapshot struct {
	Documents map[string]Entry `json:"documents"`
	Favorites []string         `json:"favorites"`
}

// SaveFile writes the store and favorites to path, creating its directory.
func SaveFile(path string, s *Store, favs *Favorites) error {
	snap := snapshot{Documents: map[string]Entry{}, Favorites: favs.List()}
	for k, it := range s.cache.Items() {
		snap.Documents[k] = it.Object.(Entry)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode documents: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write documents: %w", err)
	}
	return nil
}

// LoadFile reads a snapshot. A missing file yields an empty store.
func LoadFile(path string) (*Store, *Favorites, error) {
	s, favs := New(), &Favorites{}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, favs, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read documents: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("parse documents JSON: %w", err)
	}
	for k, e := range snap.Documents {
		s.Save(k, e)
	}
	for _, t := range snap.Favorites {
		favs.Add(t)
	}
	return s, favs, nil
}
