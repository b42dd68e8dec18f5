// SPDX-License-Identifier: EPL-2.0

// Package fileutil writes files so readers never see a partial result.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ossrs/go-oryx-lib/errors"
)

// WriteAtomic calls write with a temporary file next to path and renames it
// over path once write, sync and close all succeed. On any failure the
// temporary file is removed and path is left as it was.
func WriteAtomic(path string, write func(f *os.File) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "create %v", tmp)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "sync %v", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %v", tmp)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %v", tmp)
	}

	return nil
}
