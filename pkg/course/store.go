package course

import (
	"iter"
	"regexp"
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/logging"
	"github.com/arthur-debert/unii/pkg/paths"
	"gopkg.in/yaml.v3"
)

// Store creates, opens, lists and deletes courses under the root
type Store struct {
	fs      filesystem.FS
	paths   paths.Paths
	pattern *regexp.Regexp
}

// NewStore returns a course store. A nil pattern accepts every valid code.
func NewStore(fs filesystem.FS, p paths.Paths, pattern *regexp.Regexp) *Store {
	return &Store{fs: fs, paths: p, pattern: pattern}
}

// ValidateCode checks that code is a single path segment and, when a pattern
// is configured, that it matches
func (s *Store) ValidateCode(code string) error {
	if err := paths.ValidateName("course code", code); err != nil {
		return err
	}
	if strings.HasPrefix(code, ".") {
		return errors.Newf(errors.ErrInvalidInput, "course code %q cannot start with '.'", code)
	}
	if s.pattern != nil && !s.pattern.MatchString(code) {
		return errors.CourseCodeDidNotMatch(code, s.pattern.String())
	}
	return nil
}

// Create makes the course directory and writes its record
func (s *Store) Create(code string, info Information) (*Course, error) {
	logger := logging.GetLogger("course.store")

	if err := paths.ValidateName("course code", code); err != nil {
		return nil, err
	}

	exists, err := filesystem.Exists(s.fs, s.paths.CourseDir(code))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check course %s", code)
	}
	if exists {
		return nil, errors.CourseAlreadyExists(code)
	}

	if err := s.ValidateCode(code); err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	c := &Course{code: code, Info: info}
	if err := s.write(c); err != nil {
		return nil, err
	}

	logger.Info().Str("code", code).Str("dir", c.Dir(s.paths)).Msg("Course created")
	return c, nil
}

// Open reads the record of code. It returns nil, nil when there is no course.
func (s *Store) Open(code string) (*Course, error) {
	if err := paths.ValidateName("course code", code); err != nil {
		return nil, err
	}

	path := s.paths.CourseFilePath(code)
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

	c := &Course{code: code}
	if err := yaml.Unmarshal(data, &c.Info); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDeserialize, "failed to parse course record %s", path).
			WithDetail("code", code)
	}
	return c, nil
}

// Get is Open that treats a missing course as CourseDoesNotExist
func (s *Store) Get(code string) (*Course, error) {
	c, err := s.Open(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.CourseDoesNotExist(code)
	}
	return c, nil
}

// OpenOrCreate opens code, writing a record with info when there is none. A
// directory that exists without a record is adopted as the course.
func (s *Store) OpenOrCreate(code string, info Information) (*Course, error) {
	c, err := s.Open(code)
	if err != nil || c != nil {
		return c, err
	}

	if err := s.ValidateCode(code); err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	c = &Course{code: code, Info: info}
	if err := s.write(c); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("course.store")
	logger.Info().Str("code", code).Msg("Course record written")
	return c, nil
}

// SetInfo replaces the information of c and rewrites its record
func (s *Store) SetInfo(c *Course, info Information) error {
	if err := info.Validate(); err != nil {
		return err
	}
	c.Info = info
	return s.write(c)
}

// Delete removes the course directory and everything in it
func (s *Store) Delete(code string) error {
	c, err := s.Get(code)
	if err != nil {
		return err
	}

	dir := c.Dir(s.paths)
	if err := s.fs.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove %s", dir)
	}

	logger := logging.GetLogger("course.store")
	logger.Info().Str("code", code).Msg("Course deleted")
	return nil
}

// All lists the courses under the root. Directories without a course record
// are skipped. A missing root is empty.
func (s *Store) All() (iter.Seq2[*Course, error], error) {
	return s.list(false)
}

// Adopt lists the courses under the root like All, but gives every directory
// without a course record an empty one first. Directories whose name is not a
// valid course code are yielded as errors.
func (s *Store) Adopt() (iter.Seq2[*Course, error], error) {
	return s.list(true)
}

func (s *Store) list(adopt bool) (iter.Seq2[*Course, error], error) {
	root := s.paths.Root()

	exists, err := filesystem.Exists(s.fs, root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", root)
	}
	if !exists {
		return func(func(*Course, error) bool) {}, nil
	}

	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", root)
	}

	return func(yield func(*Course, error) bool) {
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			var c *Course
			var err error
			if adopt {
				c, err = s.OpenOrCreate(entry.Name(), Information{})
			} else {
				c, err = s.Open(entry.Name())
				if err == nil && c == nil {
					continue
				}
			}
			if !yield(c, err) {
				return
			}
		}
	}, nil
}

func (s *Store) write(c *Course) error {
	dir := s.paths.CourseUniiDir(c.code)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}

	data, err := yaml.Marshal(&c.Info)
	if err != nil {
		return errors.Wrap(err, errors.ErrSerialize, "failed to serialize course record")
	}

	path := s.paths.CourseFilePath(c.code)
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
