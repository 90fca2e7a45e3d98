package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// pathSpecialChars are the characters with a meaning in gjson/sjson paths.
const pathSpecialChars = `\.*?|#@!:=<>%,`

// JSONManifestRepository implements repositories.ManifestRepository for package.json files.
// The document is edited in place, so key order, unrelated fields and indentation survive a rewrite.
type JSONManifestRepository struct {
	fs afero.Fs
}

// NewManifestRepository creates a manifest repository on the given filesystem.
func NewManifestRepository(fs afero.Fs) repositories.ManifestRepository {
	return &JSONManifestRepository{fs: fs}
}

// Read parses the dependency sections of the manifest in declaration order.
// Sections that are absent or not objects are left out; entries whose value
// is not a string are skipped with a warning.
func (r *JSONManifestRepository) Read(path string) (*entities.Manifest, error) {
	data, err := r.readDocument(path)
	if err != nil {
		return nil, err
	}

	manifest := entities.NewManifest(path)
	for _, section := range entities.Sections {
		value := gjson.GetBytes(data, section)
		if !value.IsObject() {
			continue
		}

		var entries []entities.ManifestEntry
		value.ForEach(func(key, specifier gjson.Result) bool {
			if specifier.Type != gjson.String {
				logger.Warnf("Skipping %s in %s: specifier is not a string", key.String(), section)
				return true
			}
			entries = append(entries, entities.ManifestEntry{
				Name:      key.String(),
				Section:   section,
				Specifier: specifier.String(),
			})
			return true
		})
		manifest.AddSection(section, entries)
	}

	return manifest, nil
}

// ApplyUpdates rewrites the specifier of each dependency under its own section.
// The whole document is rebuilt in memory before anything touches the disk.
func (r *JSONManifestRepository) ApplyUpdates(path string, deps []entities.Dependency) error {
	data, err := r.readDocument(path)
	if err != nil {
		return err
	}

	document := data
	changed := false
	for _, dep := range deps {
		key := dep.Section + "." + escapePathComponent(dep.Name)
		current := gjson.GetBytes(document, key)
		if current.Type != gjson.String {
			logger.Warnf("Skipping %s: not declared in %s", dep.Name, dep.Section)
			continue
		}

		updated := dep.UpdatedSpecifier()
		if current.String() == updated {
			continue
		}

		document, err = sjson.SetBytes(document, key, updated)
		if err != nil {
			return fmt.Errorf("%w: failed to update %s: %v", entities.ErrWrite, dep.Name, err)
		}
		changed = true
		logger.Debugf("Updated %s in %s: %s -> %s", dep.Name, dep.Section, current.String(), updated)
	}

	if !changed {
		return nil
	}
	return r.writeDocument(path, document)
}

// readDocument loads the manifest and checks that it holds a JSON object.
func (r *JSONManifestRepository) readDocument(path string) ([]byte, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: %s", entities.ErrManifestParse, path)
	}
	return data, nil
}

// writeDocument replaces the manifest through a temporary sibling file so a
// failed write never leaves a truncated manifest behind.
func (r *JSONManifestRepository) writeDocument(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := r.fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(r.fs, filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", entities.ErrWrite, writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", entities.ErrWrite, closeErr)
	}
	if chmodErr := r.fs.Chmod(tmpName, mode); chmodErr != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", entities.ErrWrite, chmodErr)
	}
	if renameErr := r.fs.Rename(tmpName, path); renameErr != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", entities.ErrWrite, renameErr)
	}

	return nil
}

// escapePathComponent makes a package name usable as a single gjson/sjson path component.
func escapePathComponent(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if strings.ContainsRune(pathSpecialChars, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
