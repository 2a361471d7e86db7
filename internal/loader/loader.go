// SPDX-License-Identifier: MIT

// Package loader reads square matrices from YAML, JSON and TOML documents.
//
// Accepted shapes:
//   - YAML / JSON: {"rows": [[1, 2], [3, 4]]} or the bare list [[1, 2], [3, 4]].
//   - TOML: rows = [[1, 2], [3, 4]].
package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lvdet/matrix"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

const rowsKey = "rows"

var (
	// ErrUnsupportedFormat is returned for file extensions or format names
	// other than yaml, yml, json and toml.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")

	// ErrEmptyDocument is returned when the document holds no rows list.
	ErrEmptyDocument = errors.New("loader: document has no rows")

	// ErrInvalidEntry is returned for a row or entry that is not a list or a
	// number.
	ErrInvalidEntry = errors.New("loader: invalid entry")
)

// FormatOf derives the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "file %s", path)
	}
}

// Load reads the matrix stored at path.
func Load(path string) (*matrix.Matrix[float64], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, errors.WithMessagef(err, "loading %s", path)
	}
	return m, nil
}

// Decode reads one matrix document of the given format from r.
func Decode(r io.Reader, format Format) (*matrix.Matrix[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	var doc any
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case JSON:
		if len(bytes.TrimSpace(data)) > 0 {
			err = json.Unmarshal(data, &doc)
		}
	case TOML:
		var table map[string]any
		_, err = toml.Decode(string(data), &table)
		if table != nil {
			doc = table
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", format)
	}

	rows, err := rowsOf(doc)
	if err != nil {
		return nil, err
	}

	table := make([][]float64, len(rows))
	for i, row := range rows {
		entries, ok := row.([]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidEntry, "row %d is %T, not a list", i, row)
		}
		table[i] = make([]float64, len(entries))
		for j, e := range entries {
			x, ok := toFloat(e)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidEntry, "entry [%d][%d] is %T, not a number", i, j, e)
			}
			table[i][j] = x
		}
	}

	return matrix.FromTable(table)
}

// rowsOf extracts the list of rows from a decoded document.
func rowsOf(doc any) ([]any, error) {
	switch d := doc.(type) {
	case []any:
		return d, nil
	case map[string]any:
		rows, ok := d[rowsKey]
		if !ok {
			return nil, ErrEmptyDocument
		}
		list, ok := rows.([]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidEntry, "%s is %T, not a list", rowsKey, rows)
		}
		return list, nil
	case nil:
		return nil, ErrEmptyDocument
	default:
		return nil, errors.Wrapf(ErrInvalidEntry, "document is %T", doc)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
