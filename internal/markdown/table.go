package markdown

import "strings"

// parseRow splits one table line into trimmed cells. A single pair of outer
// pipes is optional.
func parseRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
		trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "|"), "|")
	}

	cells := strings.Split(trimmed, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// tableElements renders a detected table. Row 0 is the header, row 1 the
// separator, the rest are body rows padded or cut to the header width. Fewer
// than two lines cannot form a table and come back as paragraphs.
func tableElements(lines []string) []Element {
	if len(lines) < 2 {
		out := make([]Element, 0, len(lines))
		for _, line := range lines {
			out = append(out, paragraphElement(strings.TrimSpace(line)))
		}
		return out
	}

	header := parseRow(lines[0])
	body := lines[2:]

	var b strings.Builder
	b.WriteString(`<div class="` + classTableWrapper + `"><table class="` + classTable + `"><thead><tr>`)
	for _, cell := range header {
		b.WriteString(`<th class="` + classTableHeader + `">` + Inline(cell) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)

	for idx, row := range body {
		cells := parseRow(row)
		rowClass := classRowEven
		if idx%2 == 1 {
			rowClass = classRowOdd
		}
		b.WriteString(`<tr class="` + rowClass + `">`)
		for col := range header {
			cell := ""
			if col < len(cells) {
				cell = cells[col]
			}
			b.WriteString(`<td class="` + classTableCell + `">` + Inline(cell) + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)

	return []Element{{
		Kind:    KindTable,
		Columns: len(header),
		Rows:    len(body),
		HTML:    b.String(),
	}}
}
