// Copyright 2025 AppWatch HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appwatchhq/review-relay/internal/appstore"
	relayerrors "github.com/appwatchhq/review-relay/internal/errors"
)

// ReviewWriter defines the interface for persisting a country's review list.
// This abstraction keeps the fetch pipeline independent of the on-disk
// format and makes the writer easy to fake in tests.
type ReviewWriter interface {
	// WriteReviews writes the given reviews under the given file name and
	// returns the full path of the written file. A pre-existing file of the
	// same name is overwritten.
	WriteReviews(filename string, reviews []appstore.Review) (string, error)

	// Count returns the number of files written so far.
	Count() int
}

// FileWriter writes review lists into a destination directory. The directory
// is created lazily on the first write, so a run that produces no output
// leaves the filesystem untouched.
type FileWriter struct {
	dir   string
	count int
}

// NewFileWriter creates a writer targeting the given directory.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// WriteReviews implements the ReviewWriter interface. The file holds one
// 2-space-indented JSON array terminated by a newline.
func (w *FileWriter) WriteReviews(filename string, reviews []appstore.Review) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %v: %w", w.dir, err, relayerrors.ErrWriteFailed)
	}

	// An empty list must serialize as [] rather than null.
	if reviews == nil {
		reviews = []appstore.Review{}
	}

	data, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %v: %w", filename, err, relayerrors.ErrWriteFailed)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %v: %w", path, err, relayerrors.ErrWriteFailed)
	}

	w.count++
	return path, nil
}

// Count returns the number of files written.
func (w *FileWriter) Count() int {
	return w.count
}
