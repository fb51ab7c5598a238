package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"

	pkgLog "plansync/pkg/log"
)

// dailyNameRe allows suffixes such as "2024-07-15 - Planning.md".
var dailyNameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}).*\.md$`)

type implRepository struct {
	l           pkgLog.Logger
	root        string // absolute
	dailyFolder string // vault-relative, no leading or trailing slash
}

// New creates a Repository rooted at root.
func New(l pkgLog.Logger, root, dailyFolder string) (Repository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root %s is not a directory", abs)
	}

	return &implRepository{
		l:           l,
		root:        abs,
		dailyFolder: strings.Trim(filepath.ToSlash(dailyFolder), "/"),
	}, nil
}

// Resolve normalizes path to its vault-relative form.
func (r *implRepository) Resolve(p string) (string, error) {
	if p == "" {
		return "", ErrNotFound
	}

	abs := p
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.root, filepath.FromSlash(p))
	}
	rel, err := filepath.Rel(r.root, filepath.Clean(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, p)
	}
	if !strings.EqualFold(filepath.Ext(rel), noteExt) {
		return "", fmt.Errorf("%w: %s", ErrNotMarkdown, p)
	}
	return filepath.ToSlash(rel), nil
}

func (r *implRepository) abs(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

func (r *implRepository) Read(ctx context.Context, p string) (Note, error) {
	rel, err := r.Resolve(p)
	if err != nil {
		return Note{}, err
	}

	full := r.abs(rel)
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Note{}, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return Note{}, fmt.Errorf("read %s: %w", rel, err)
	}
	info, err := os.Stat(full)
	if err != nil {
		return Note{}, fmt.Errorf("stat %s: %w", rel, err)
	}

	return Note{Path: rel, Text: string(data), ModTime: info.ModTime()}, nil
}

func (r *implRepository) Write(ctx context.Context, note Note, text string) error {
	rel, err := r.Resolve(note.Path)
	if err != nil {
		return err
	}

	full := r.abs(rel)
	current, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConflict, rel)
		}
		return fmt.Errorf("read %s: %w", rel, err)
	}
	if string(current) != note.Text {
		r.l.Warnf(ctx, "vault.Write: %s changed since it was read, not writing", rel)
		return fmt.Errorf("%w: %s", ErrConflict, rel)
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(full); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := atomic.WriteFile(full, strings.NewReader(text)); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	// atomic.WriteFile does not carry the old permissions over
	if err := os.Chmod(full, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", rel, err)
	}

	r.l.Debugf(ctx, "vault.Write: committed %s (%d bytes)", rel, len(text))
	return nil
}

// IsDailyNote: the note lives directly in the daily folder (or the root when
// no folder is set) and its name starts with a date.
func (r *implRepository) IsDailyNote(p string) bool {
	rel, err := r.Resolve(p)
	if err != nil {
		return false
	}
	if path.Dir(rel) != r.dailyDir() {
		return false
	}
	_, ok := r.NoteDate(rel)
	return ok
}

// NoteDate returns the date a note is named after.
func (r *implRepository) NoteDate(p string) (string, bool) {
	m := dailyNameRe.FindStringSubmatch(path.Base(filepath.ToSlash(p)))
	if m == nil {
		return "", false
	}
	return m[1], validDate(m[1])
}

func (r *implRepository) DailyNotePath(date string) string {
	return path.Join(r.dailyDir(), date+noteExt)
}

func (r *implRepository) EnsureDailyNote(ctx context.Context, date string) (Note, bool, error) {
	if !validDate(date) {
		return Note{}, false, fmt.Errorf("invalid date %q", date)
	}

	rel := r.DailyNotePath(date)
	note, err := r.Read(ctx, rel)
	if err == nil {
		return note, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Note{}, false, err
	}

	full := r.abs(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return Note{}, false, fmt.Errorf("create daily folder: %w", err)
	}
	text := "# " + date + "\n\n"
	if err := atomic.WriteFile(full, strings.NewReader(text)); err != nil {
		return Note{}, false, fmt.Errorf("create %s: %w", rel, err)
	}
	if err := os.Chmod(full, 0o644); err != nil {
		return Note{}, false, fmt.Errorf("chmod %s: %w", rel, err)
	}

	r.l.Infof(ctx, "vault.EnsureDailyNote: created %s", rel)
	created, err := r.Read(ctx, rel)
	return created, true, err
}

func (r *implRepository) dailyDir() string {
	if r.dailyFolder == "" {
		return "."
	}
	return r.dailyFolder
}
