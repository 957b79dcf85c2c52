package pattern

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// jsonDocument is the structured declarative form of a pattern: declared
// dimensions plus a dense 0/1 matrix, row-major.
type jsonDocument struct {
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Board [][]uint8 `json:"board"`
}

// DecodeJSON parses a structured JSON pattern document, validating that
// the matrix shape matches its declared dimensions.
func DecodeJSON(data []byte) (*Pattern, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "[DecodeJSON] failed to unmarshal pattern document")
	}

	if len(doc.Board) != doc.Rows {
		return nil, errors.Errorf("[DecodeJSON] document declares %d rows, board has %d", doc.Rows, len(doc.Board))
	}
	for i, row := range doc.Board {
		if len(row) != doc.Cols {
			return nil, errors.Errorf("[DecodeJSON] document declares %d cols, row %d has %d", doc.Cols, i, len(row))
		}
	}

	return &Pattern{Rows: doc.Rows, Cols: doc.Cols, Grid: doc.Board}, nil
}

// LoadFile reads and decodes a pattern file, dispatching on the file
// extension: .json documents go through the structured decoder and
// everything else is treated as RLE text.
func LoadFile(filename string) (*Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return DecodeJSON(data)
	}
	return DecodeRLE(string(data))
}
