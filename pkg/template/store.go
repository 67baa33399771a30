package template

import (
	"iter"
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/logging"
	"github.com/arthur-debert/unii/pkg/paths"
	"gopkg.in/yaml.v3"
)

// Store reads and writes template definitions
type Store struct {
	fs    filesystem.FS
	paths paths.Paths
}

// NewStore returns a store over fs laid out by p
func NewStore(fs filesystem.FS, p paths.Paths) *Store {
	return &Store{fs: fs, paths: p}
}

// Path returns where the definition of name is stored in scope
func (s *Store) Path(scope Scope, name string) string {
	return Path(s.paths, scope, name)
}

// Create writes an empty definition for name. It fails if one already exists.
func (s *Store) Create(scope Scope, name, pluralizedName string) (*Template, error) {
	logger := logging.GetLogger("template.store")

	if err := paths.ValidateName("template name", name); err != nil {
		return nil, err
	}

	path := s.Path(scope, name)
	exists, err := filesystem.Exists(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
	}
	if exists {
		return nil, errors.TemplateAlreadyExists(name)
	}

	if err := s.fs.MkdirAll(scope.Dir(s.paths), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create templates directory for %s", scope)
	}

	t := New(name, pluralizedName)
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialize, "failed to serialize template")
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().
		Str("name", name).
		Str("scope", scope.String()).
		Str("path", path).
		Msg("Template created")
	return t, nil
}

// Open reads the definition of name. It returns nil, nil when there is none.
func (s *Store) Open(scope Scope, name string) (*Template, error) {
	if err := paths.ValidateName("template name", name); err != nil {
		return nil, err
	}

	path := s.Path(scope, name)
	exists, err := filesystem.Exists(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
	}
	if !exists {
		return nil, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	t := &Template{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDeserialize, "failed to parse template %s", path).
			WithDetail("name", name)
	}
	t.name = name
	return t, nil
}

// Get is Open that treats a missing definition as TemplateDoesNotExist
func (s *Store) Get(scope Scope, name string) (*Template, error) {
	t, err := s.Open(scope, name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.TemplateDoesNotExist(scope.Course(), name)
	}
	return t, nil
}

// All lists the definitions in scope. A listing failure is returned
// immediately; a definition that fails to open is yielded as an error and
// enumeration carries on. A scope with no templates directory is empty.
func (s *Store) All(scope Scope) (iter.Seq2[*Template, error], error) {
	dir := scope.Dir(s.paths)

	exists, err := filesystem.Exists(s.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", dir)
	}
	if !exists {
		return func(func(*Template, error) bool) {}, nil
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
	}

	suffix := "." + paths.DefinitionExt
	return func(yield func(*Template, error) bool) {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), suffix)

			t, err := s.Open(scope, name)
			if err == nil && t == nil {
				continue
			}
			if !yield(t, err) {
				return
			}
		}
	}, nil
}
