// Package parser reads the tab-delimited GDP figure data into a RawTable.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

const columnHeaderPrefix = "No warming"

// Parser recovers the (group, growth, warming) table from the figure data file.
type Parser struct {
	logger *zap.Logger
}

// New creates a Parser. A nil logger disables logging.
func New(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// section is the scan state: either before the first group header or inside group Group.
type section struct {
	open  bool
	group int
}

func (s section) advance() (section, error) {
	if !s.open {
		return section{open: true}, nil
	}
	if s.group+1 >= table.NumGroups {
		return s, ErrTooManySections
	}
	return section{open: true, group: s.group + 1}, nil
}

// ParseFile parses the file at path.
func (p *Parser) ParseFile(path string) (table.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.RawTable{}, fmt.Errorf("open figure data: %w", err)
	}
	defer f.Close()

	raw, err := p.Parse(f)
	if err != nil {
		return table.RawTable{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// Parse reads figure data from r. Unrecognized lines are skipped; rows are placed by label.
func (p *Parser) Parse(r io.Reader) (table.RawTable, error) {
	var (
		raw   table.RawTable
		state section
		rows  int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if idx, ok := table.GroupIndex(trimmed); ok {
			next, err := state.advance()
			if err != nil {
				return table.RawTable{}, &StructureError{Line: lineNo, Err: err}
			}
			if idx != next.group {
				p.logger.Warn("group header out of canonical order",
					zap.Int("line", lineNo),
					zap.String("header", trimmed),
					zap.String("assigned", table.GroupLabels[next.group]))
			}
			state = next
			continue
		}

		if strings.HasPrefix(line, "\t") || strings.HasPrefix(trimmed, columnHeaderPrefix) {
			continue
		}

		fields := strings.Split(trimmed, "\t")
		if len(fields) < 1+table.NumWarming {
			p.logger.Debug("skipping line", zap.Int("line", lineNo), zap.Int("fields", len(fields)))
			continue
		}
		label := strings.TrimSpace(fields[0])
		row, ok := table.GrowthIndex(label)
		if !ok {
			p.logger.Debug("skipping unknown row", zap.Int("line", lineNo), zap.String("label", label))
			continue
		}
		if !state.open {
			return table.RawTable{}, &StructureError{Line: lineNo, Err: ErrNoSection}
		}

		values, err := parseValues(lineNo, label, fields[1:1+table.NumWarming])
		if err != nil {
			return table.RawTable{}, err
		}
		raw[state.group][row] = values
		rows++
	}
	if err := scanner.Err(); err != nil {
		return table.RawTable{}, fmt.Errorf("read figure data: %w", err)
	}

	p.logger.Debug("parsed figure data", zap.Int("lines", lineNo), zap.Int("rows", rows))
	return raw, nil
}

func parseValues(lineNo int, row string, fields []string) ([table.NumWarming]float64, error) {
	var out [table.NumWarming]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return out, &DecodeError{Line: lineNo, Row: row, Field: i + 1, Value: s, Err: err}
		}
		out[i] = v
	}
	return out, nil
}
