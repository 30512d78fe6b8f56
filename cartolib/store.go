package cartolib

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// Store reads and writes dataset documents and other artifacts on a
// filesystem. All writes are atomic: data is written into a temporary
// file in the same directory which is renamed afterwards.
type Store struct {
	fs     afero.Fs
	logger Logger
}

// Load reads a dataset from the given path. Absent file is an empty
// dataset.
func (s *Store) Load(ctx context.Context, path string) (*Dataset, error) {
	file, err := s.fs.Open(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return NewDataset(), nil
	case err != nil:
		return nil, errors.Annotatef(err, "cannot open %s", path)
	}

	defer file.Close()

	dataset, err := DecodeDataset(ctx, file, s.logger)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot load %s", path)
	}

	return dataset, nil
}

// Save writes a dataset into the given path.
func (s *Store) Save(path string, dataset *Dataset) error {
	data, err := dataset.MarshalJSON()
	if err != nil {
		return errors.Annotate(err, "cannot serialize dataset")
	}

	buf := bytes.Buffer{}

	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return errors.Annotate(err, "cannot format dataset")
	}

	buf.WriteByte('\n')

	return s.WriteFile(path, buf.Bytes())
}

// WriteFile atomically replaces a content of the file.
func (s *Store) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Annotatef(err, "cannot create directory %s", dir)
	}

	file, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Annotate(err, "cannot create temporary file")
	}

	tmpName := file.Name()

	if err := s.writeTemp(file, data); err != nil {
		s.fs.Remove(tmpName) // nolint: errcheck

		return err
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName) // nolint: errcheck

		return errors.Annotatef(err, "cannot move file into %s", path)
	}

	return nil
}

func (s *Store) writeTemp(file afero.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		file.Close()

		return errors.Annotate(err, "cannot write temporary file")
	}

	if err := file.Sync(); err != nil {
		file.Close()

		return errors.Annotate(err, "cannot sync temporary file")
	}

	if err := file.Close(); err != nil {
		return errors.Annotate(err, "cannot close temporary file")
	}

	return nil
}

func NewStore(fs afero.Fs, logger Logger) *Store {
	return &Store{
		fs:     fs,
		logger: logger,
	}
}
