package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StagedFile is fully written content waiting next to its destination.
// Exactly one of Commit or Discard should be called.
type StagedFile struct {
	tmpPath string
	path    string
}

// StageFile streams content into a temporary file in the directory of path.
// The file is synced and closed before StageFile returns; on failure nothing
// is left behind.
func StageFile(path string, write func(io.Writer) error) (staged *StagedFile, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = write(tmp); err != nil {
		return nil, fmt.Errorf("write output file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return nil, fmt.Errorf("sync output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("close output file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return nil, fmt.Errorf("chmod output file: %w", err)
	}
	return &StagedFile{tmpPath: tmpPath, path: path}, nil
}

// Path is the final destination.
func (s *StagedFile) Path() string {
	return s.path
}

// Commit renames the staged file into place.
func (s *StagedFile) Commit() error {
	if err := os.Rename(s.tmpPath, s.path); err != nil {
		os.Remove(s.tmpPath)
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}

// Discard removes the staged file without touching the destination.
func (s *StagedFile) Discard() {
	os.Remove(s.tmpPath)
}

// WriteFileAtomic stages content next to path and renames it into place.
// On failure path is left untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	staged, err := StageFile(path, write)
	if err != nil {
		return err
	}
	return staged.Commit()
}

// CommitAll commits staged files in order. When one commit fails, the files
// already committed are removed and the remaining ones discarded, so either
// every destination is written or none is.
func CommitAll(staged ...*StagedFile) error {
	for i, s := range staged {
		if err := s.Commit(); err != nil {
			for _, done := range staged[:i] {
				os.Remove(done.path)
			}
			for _, rest := range staged[i+1:] {
				rest.Discard()
			}
			return err
		}
	}
	return nil
}
