// Package importer loads Design definitions from spreadsheet and DXF
// sources, so a board's components, nets, and links do not have to be
// hand-typed as Go literals. It follows the same header-alias / row
// tolerance conventions the rest of the toolchain uses for tabular input:
// unrecognized columns are ignored, missing width/height columns default
// to 1, and malformed rows produce a warning, not a hard failure.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/demetriusdemiurge/placer/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the outcome of a spreadsheet import: the decoded
// design (valid only if Errors is empty) plus any row-level problems
// encountered along the way.
type ImportResult struct {
	Design   model.Design
	Errors   []string
	Warnings []string
}

// columnMapping maps semantic column roles to their indices in a sheet.
type columnMapping struct {
	cols map[string]int
}

var componentAliases = map[string][]string{
	"name":   {"name", "label", "component", "part", "id"},
	"width":  {"width", "w"},
	"height": {"height", "h"},
}

var netAliases = map[string][]string{
	"name":  {"name", "net", "label", "id"},
	"nodes": {"nodes", "members", "components", "pins"},
}

var linkAliases = map[string][]string{
	"a":     {"a", "from", "source"},
	"b":     {"b", "to", "target"},
	"count": {"count", "weight", "qty", "quantity"},
}

// detectColumns matches a header row against a role->alias table,
// case-insensitively, first match per role wins.
func detectColumns(row []string, aliases map[string][]string) columnMapping {
	mapping := columnMapping{cols: make(map[string]int)}
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, names := range aliases {
			if _, found := mapping.cols[role]; found {
				continue
			}
			for _, alias := range names {
				if normalized == alias {
					mapping.cols[role] = i
				}
			}
		}
	}
	return mapping
}

func (m columnMapping) get(row []string, role string) string {
	idx, ok := m.cols[role]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportSpreadsheet reads a workbook with up to three sheets —
// "Components", "Nets", and "Links" — and assembles them into a Design.
// Only the Components sheet is required; Nets and Links are optional,
// and a missing sheet is recorded as a warning rather than an error.
func ImportSpreadsheet(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot open workbook: %v", err)}}
	}
	defer f.Close()

	result := ImportResult{}

	componentRows, err := f.GetRows("Components")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Components sheet: %v", err))
		return result
	}
	components := parseComponents(componentRows, &result)
	if len(result.Errors) > 0 {
		return result
	}

	var nets []model.Net
	if rows, err := f.GetRows("Nets"); err == nil {
		nets = parseNets(rows, &result)
	} else {
		result.Warnings = append(result.Warnings, "no Nets sheet found, design will have no nets")
	}

	var links []model.Link
	if rows, err := f.GetRows("Links"); err == nil {
		links = parseLinks(rows, &result)
	} else {
		result.Warnings = append(result.Warnings, "no Links sheet found, design will have no links")
	}

	result.Design = model.NewDesign(model.DefaultBoard(100, 100), components, nets, links)
	return result
}

func parseComponents(rows [][]string, result *ImportResult) []model.Component {
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Components sheet is empty")
		return nil
	}

	mapping := detectColumns(rows[0], componentAliases)
	if _, ok := mapping.cols["name"]; !ok {
		result.Errors = append(result.Errors, "Components sheet: header row must include a name/label column")
		return nil
	}

	var components []model.Component
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		lineLabel := fmt.Sprintf("Components row %d", i+1)

		name := mapping.get(row, "name")
		if name == "" {
			result.Warnings = append(result.Warnings, lineLabel+": missing name, skipped")
			continue
		}

		width, err := parseFloatCell(mapping.get(row, "width"), 1)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid width, defaulting to 1", lineLabel))
			width = 1
		}
		height, err := parseFloatCell(mapping.get(row, "height"), 1)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid height, defaulting to 1", lineLabel))
			height = 1
		}

		components = append(components, model.NewComponent(name, width, height))
	}
	return components
}

func parseNets(rows [][]string, result *ImportResult) []model.Net {
	if len(rows) == 0 {
		return nil
	}
	mapping := detectColumns(rows[0], netAliases)

	var nets []model.Net
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		lineLabel := fmt.Sprintf("Nets row %d", i+1)

		name := mapping.get(row, "name")
		if name == "" {
			name = fmt.Sprintf("NET%d", i)
		}

		nodeCell := mapping.get(row, "nodes")
		var nodes []string
		for _, part := range strings.Split(nodeCell, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				nodes = append(nodes, part)
			}
		}
		if len(nodes) < 2 {
			result.Warnings = append(result.Warnings, lineLabel+": fewer than two nodes, net contributes no connectivity")
		}

		nets = append(nets, model.Net{Name: name, Nodes: nodes})
	}
	return nets
}

func parseLinks(rows [][]string, result *ImportResult) []model.Link {
	if len(rows) == 0 {
		return nil
	}
	mapping := detectColumns(rows[0], linkAliases)

	var links []model.Link
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		lineLabel := fmt.Sprintf("Links row %d", i+1)

		a := mapping.get(row, "a")
		b := mapping.get(row, "b")
		if a == "" || b == "" {
			result.Warnings = append(result.Warnings, lineLabel+": missing endpoint, skipped")
			continue
		}

		count := 1
		if raw := mapping.get(row, "count"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				count = parsed
			} else {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid count '%s', defaulting to 1", lineLabel, raw))
			}
		}

		links = append(links, model.Link{A: a, B: b, Count: count})
	}
	return links
}

func parseFloatCell(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}
