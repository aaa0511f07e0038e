// Package usecase implements image ingestion for property listings.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
)

// allowedExtensions is the upload allow-list. Files with any other extension
// are silently skipped; rejection is policy filtering, not a user-facing error.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".gif":  {},
}

// Upload is one file submitted through a multipart form.
// Open defers reading so skipped files are never opened.
type Upload struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// FileStore abstracts the filesystem tree holding uploaded images.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FileStore interface {
	// List returns the filenames already present in the directory.
	// A missing directory is not an error; it lists as empty.
	List(dir string) ([]string, error)

	// Save writes the reader's content to dir/name, creating dir as needed.
	Save(dir, name string, r io.Reader) error

	// Remove deletes dir/name.
	Remove(dir, name string) error
}

// ImageRecorder persists one image row per stored file.
type ImageRecorder interface {
	AddImage(ctx context.Context, propertyID uint, filename string) error
}

// AllowedFile reports whether the filename's extension is in the allow-list.
// The check is case-insensitive.
func AllowedFile(name string) bool {
	_, ok := allowedExtensions[strings.ToLower(path.Ext(name))]
	return ok
}

// SanitizeFilename strips path components and replaces unsafe characters so
// the result is a single safe filename. Returns "" when nothing usable is
// left, in which case the upload is skipped.
func SanitizeFilename(name string) string {
	// Normalize Windows separators before taking the base name.
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" || strings.Trim(out, "_") == "" {
		return ""
	}
	return out
}

// NextAvailableName returns candidate unchanged when it does not collide with
// existing, otherwise the first "base_N.ext" (N = 1, 2, ...) that is free.
// Pure function; deterministic for a given set of existing names.
func NextAvailableName(existing []string, candidate string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		taken[n] = struct{}{}
	}
	if _, ok := taken[candidate]; !ok {
		return candidate
	}

	ext := path.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}

// IngestUsecase validates, deduplicates-by-rename, and persists uploaded
// images under a per-property directory, recording one row per stored file.
type IngestUsecase struct {
	store  FileStore
	images ImageRecorder
}

// NewIngestUsecase creates a new IngestUsecase instance.
func NewIngestUsecase(store FileStore, images ImageRecorder) *IngestUsecase {
	return &IngestUsecase{store: store, images: images}
}

// Ingest stores each acceptable upload for the property and returns the final
// stored filenames. Files with empty or disallowed names are skipped without
// error. A file that fails to write is skipped with a log entry and the loop
// continues; a row that fails to insert removes the just-written file so rows
// and files stay consistent.
func (u *IngestUsecase) Ingest(ctx context.Context, propertyID uint, files []Upload) ([]string, error) {
	dir := strconv.FormatUint(uint64(propertyID), 10)
	existing, err := u.store.List(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory: %w", err)
	}

	var saved []string
	for _, f := range files {
		if f.Filename == "" || !AllowedFile(f.Filename) {
			continue
		}
		name := SanitizeFilename(f.Filename)
		if name == "" {
			continue
		}
		name = NextAvailableName(existing, name)

		src, err := f.Open()
		if err != nil {
			slog.Error("failed to open upload", "filename", f.Filename, "error", err)
			continue
		}
		err = u.store.Save(dir, name, src)
		src.Close()
		if err != nil {
			slog.Error("failed to store upload", "filename", name, "error", err)
			continue
		}

		if err := u.images.AddImage(ctx, propertyID, dir+"/"+name); err != nil {
			slog.Error("failed to record image row", "filename", name, "error", err)
			if rmErr := u.store.Remove(dir, name); rmErr != nil {
				slog.Warn("orphaned upload left on disk", "filename", name, "error", rmErr)
			}
			continue
		}

		existing = append(existing, name)
		saved = append(saved, name)
	}
	return saved, nil
}
