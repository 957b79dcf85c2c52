package pattern

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Run Length Encoded pattern grammar, as described by the Game of Life
// community: http://www.conwaylife.com/wiki/Run_Length_Encoded
const (
	conwayLifeRule = "b3/s23"

	deadMarker  = 'b'
	aliveMarker = 'o'
	rowMarker   = '$'
	endMarker   = '!'
)

var (
	dimensionsRegex  = regexp.MustCompile(`x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)`)
	dimensionsIntent = regexp.MustCompile(`^x\s*=`)
	ruleRegex        = regexp.MustCompile(`(?:rule|type)\s*=\s*([\w/]+)`)
)

// DecodeRLE parses an RLE pattern description into a Pattern. Comment
// lines are skipped, a header line establishes the pattern dimensions
// (and optionally its rule, which must be the classical Conway ruleset),
// and board-description lines fill the matrix via run-length tokens. A
// decode failure returns a descriptive error and never a partially
// filled pattern.
func DecodeRLE(text string) (*Pattern, error) {
	var (
		grid           [][]uint8
		width, height  int
		curRow, curCol int
	)

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.ToLower(strings.TrimSpace(rawLine))

		// skip blanks, comments and other # metadata
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Handle dimensions and board rule, possibly on the same line
		matchedHeader := false
		if match := dimensionsRegex.FindStringSubmatch(line); match != nil {
			matchedHeader = true
			w, err := strconv.Atoi(match[1])
			if err != nil {
				return nil, errors.Wrapf(err, "[DecodeRLE] invalid x dimension: %+v", match[1])
			}
			h, err := strconv.Atoi(match[2])
			if err != nil {
				return nil, errors.Wrapf(err, "[DecodeRLE] invalid y dimension: %+v", match[2])
			}
			width, height = w, h

			// initialize the matrix with all dead cells
			grid = make([][]uint8, height)
			for i := range grid {
				grid[i] = make([]uint8, width)
			}
		} else if dimensionsIntent.MatchString(line) {
			return nil, errors.Errorf("[DecodeRLE] malformed dimensions line: %+v", strings.TrimSpace(rawLine))
		}
		if match := ruleRegex.FindStringSubmatch(line); match != nil {
			matchedHeader = true
			if match[1] != conwayLifeRule {
				return nil, errors.Errorf("[DecodeRLE] pattern uses a non-standard rule %q, cannot be played", match[1])
			}
		}
		if matchedHeader {
			continue
		}

		// lines describing the board itself
		if !strings.ContainsAny(line, "bo$!0123456789") {
			continue
		}
		if width == 0 || height == 0 {
			return nil, errors.New("[DecodeRLE] dimensions unknown, cannot place pattern")
		}

		run := 0
		for _, ch := range line {
			switch {
			case ch >= '0' && ch <= '9':
				run = run*10 + int(ch-'0')
			case ch == deadMarker:
				curCol += runLength(run)
				run = 0
			case ch == aliveMarker:
				for i := 0; i < runLength(run); i++ {
					if curRow >= height || curCol >= width {
						return nil, errors.Errorf("[DecodeRLE] pattern content exceeds declared %dx%d dimensions", width, height)
					}
					grid[curRow][curCol] = 1
					curCol++
				}
				run = 0
			case ch == rowMarker:
				curRow += runLength(run)
				curCol = 0
				run = 0
			case ch == endMarker:
				// end of pattern: remaining input is ignored
				curRow, curCol = 0, 0
				return &Pattern{Rows: height, Cols: width, Grid: grid}, nil
			default:
				// unrecognized character, skip it
				run = 0
			}
		}
	}

	if grid == nil {
		return nil, errors.New("[DecodeRLE] no pattern dimensions found")
	}
	return &Pattern{Rows: height, Cols: width, Grid: grid}, nil
}

// runLength interprets an accumulated repeat count, defaulting to 1 when
// a marker carries no explicit count.
func runLength(run int) int {
	if run == 0 {
		return 1
	}
	return run
}
