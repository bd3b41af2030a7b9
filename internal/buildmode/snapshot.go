// Copyright 2026 The pathless Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package buildmode

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/sgex/pathless/internal/pathless"
	"github.com/sgex/pathless/internal/x/errorchain"
)

type fileState struct {
	path    string
	content []byte
	mode    fs.FileMode
}

// Snapshot holds the original contents of a set of files which are about to be modified.
type Snapshot struct {
	files []fileState
}

func TakeSnapshot(paths ...string) (*Snapshot, error) {
	snap := &Snapshot{files: make([]fileState, 0, len(paths))}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathless.ErrBuild, "failed to snapshot %s", path).CausedBy(err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errorchain.NewWithMessagef(pathless.ErrBuild, "failed to snapshot %s", path).CausedBy(err)
		}

		snap.files = append(snap.files, fileState{path: path, content: content, mode: info.Mode().Perm()})
	}

	return snap, nil
}

func (s *Snapshot) Paths() []string {
	paths := make([]string, len(s.files))
	for idx, file := range s.files {
		paths[idx] = file.path
	}

	return paths
}

// Restore writes the original contents back and verifies them. All files are attempted even if
// some of them fail.
func (s *Snapshot) Restore() error {
	var errs []error

	for _, file := range s.files {
		if err := os.WriteFile(file.path, file.content, file.mode); err != nil {
			errs = append(errs, errorchain.NewWithMessagef(pathless.ErrBuild, "failed to restore %s", file.path).
				CausedBy(err))

			continue
		}

		written, err := os.ReadFile(file.path)
		if err != nil || !bytes.Equal(written, file.content) {
			errs = append(errs, errorchain.NewWithMessagef(pathless.ErrBuild,
				"verification of restored %s failed", file.path).CausedBy(err))
		}
	}

	return errors.Join(errs...)
}

// WithSnapshot snapshots the given files, runs fn and restores the files on every exit path,
// including a panic raised by fn. A restore error is joined with the error returned by fn.
func WithSnapshot(paths []string, fn func() error) (err error) {
	snap, err := TakeSnapshot(paths...)
	if err != nil {
		return err
	}

	defer func() {
		if restoreErr := snap.Restore(); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	return fn()
}
