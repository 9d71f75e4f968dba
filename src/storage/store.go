package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Sub-directories of the media root, relative and slash separated.
const (
	MediaDir            = "acervo"
	AudioDescriptionDir = "acervo/audiodescricoes"
	QRCodeDir           = "acervo/qrcodes"
)

var ErrInvalidPath = errors.New("caminho de arquivo inválido")

// Upload is a file received from a client or fetched from a remote source.
type Upload struct {
	Reader       io.Reader
	OriginalName string
	ContentType  string
	Size         int64
}

// Store keeps media files addressed by slash-separated names relative to its root.
type Store interface {
	Save(dir, name string, r io.Reader) (string, error)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
	Path(name string) (string, error)
	Remove(name string) error
}

type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Root() string {
	return s.root
}

// Path resolves name inside the root, rejecting anything that escapes it.
func (s *LocalStore) Path(name string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Save writes r under dir using the base name of name. When the name is taken
// a short unique suffix is added before the extension. It returns the stored
// name relative to the root.
func (s *LocalStore) Save(dir, name string, r io.Reader) (string, error) {
	absDir, err := s.Path(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", err
	}

	base := BaseName(name)
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		f, err := os.OpenFile(filepath.Join(absDir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			candidate = withSuffix(base, uuid.NewString()[:7])
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			_ = os.Remove(f.Name())
			return "", err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(f.Name())
			return "", err
		}
		return path.Join(dir, candidate), nil
	}
	return "", fmt.Errorf("não foi possível gerar um nome único para %s", base)
}

func (s *LocalStore) ReadFile(name string) ([]byte, error) {
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (s *LocalStore) Stat(name string) (fs.FileInfo, error) {
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

// Remove deletes name. A missing file is not an error.
func (s *LocalStore) Remove(name string) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveAll deletes every name and returns the joined failures.
func RemoveAll(store Store, names []string) error {
	var errs []error
	for _, n := range names {
		if n == "" {
			continue
		}
		if err := store.Remove(n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n, err))
		}
	}
	return errors.Join(errs...)
}

// BaseName strips directories from a client supplied file name and replaces
// characters that are unsafe in a path.
func BaseName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = path.Base(name)
	if name == "/" || name == "." {
		return "arquivo"
	}
	name = strings.ReplaceAll(name, "..", "")
	name = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "arquivo"
	}
	return name
}

func withSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}

// Extension returns the lower-case extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// ExtensionAllowed reports whether name ends with one of allowed.
func ExtensionAllowed(name string, allowed []string) bool {
	ext := Extension(name)
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// ExtensionError is the message shown when a file has a rejected extension.
func ExtensionError(name string, allowed []string) string {
	return fmt.Sprintf("A extensão de arquivo “%s” não é permitida. As extensões válidas são: %s .", Extension(name), strings.Join(allowed, ", "))
}
