package scaledstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/ports"
)

const defaultScaledDir = "scaled"

// JSONStore writes scaled-recipe artifacts as pretty-printed JSON files
// under the workspace's scaled directory.
type JSONStore struct {
	rootDir       string
	scaledDirName string
	writeIndex    bool
	now           func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: scaled/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	scaledDir := cfg.Paths.ScaledDir
	if strings.TrimSpace(scaledDir) == "" {
		scaledDir = defaultScaledDir
	}

	s := &JSONStore{
		rootDir:       root,
		scaledDirName: scaledDir,
		writeIndex:    cfg.Artifacts.Index,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ScaledStore = (*JSONStore)(nil)

func (s *JSONStore) SaveScaled(art domain.ScaledArtifact) (string, error) {
	dir := filepath.Join(s.rootDir, s.scaledDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "scaledstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := art.ScaledAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := art
	if toSave.ScaledAt.IsZero() {
		toSave.ScaledAt = ts
	}

	namePart := art.RecipeName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(art.RecipePath), filepath.Ext(art.RecipePath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "recipe"
	}

	filename := fmt.Sprintf("%s_%s_x%d.json", ts.Format("20060102T150405Z"), slug, art.ToServings)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "scaledstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "scaledstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "scaledstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, art domain.ScaledArtifact) error {
	type idx struct {
		ID       string    `json:"id"`
		File     string    `json:"file"`
		Recipe   string    `json:"recipe"`
		From     int       `json:"from_servings"`
		To       int       `json:"to_servings"`
		ScaledAt time.Time `json:"scaled_at"`
	}
	line, err := json.Marshal(idx{
		ID:       id,
		File:     filename,
		Recipe:   art.RecipeName,
		From:     art.FromServings,
		To:       art.ToServings,
		ScaledAt: art.ScaledAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
