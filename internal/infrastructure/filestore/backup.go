package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// BackupSuffix marks the rotated copy of the previous file contents.
const BackupSuffix = ".bak.gz"

// rotateBackup gzips the current contents of path to path+BackupSuffix
// before the file is overwritten. A missing file means a first save and is
// not an error.
func rotateBackup(path string) error {
	prev, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	f, err := os.Create(path + BackupSuffix)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(prev); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadBackup decompresses a rotated backup, returning the previous AHBS
// container bytes.
func ReadBackup(path string) ([]byte, error) {
	f, err := os.Open(path + BackupSuffix)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open backup %s: %w", path+BackupSuffix, err)
	}
	defer zr.Close()

	return io.ReadAll(zr)
}
