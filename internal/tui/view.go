package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model. It renders the fixed header plus one line per
// visible entry starting at the viewport offset. bubbletea's renderer diffs
// frames line by line, so a single-step selection move costs exactly the
// two changed rows.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerLine())
	b.WriteString("\n\n")

	h := m.viewportHeight()
	if m.snap.Empty() {
		if h > 0 {
			b.WriteString(emptyStyle.Render("directory empty"))
		}
		return b.String()
	}

	n := m.snap.Len()
	for i := m.offset; i < n && i-m.offset < h; i++ {
		if i > m.offset {
			b.WriteByte('\n')
		}
		b.WriteString(m.entryLine(i))
	}

	return b.String()
}

func (m *Model) headerLine() string {
	return fmt.Sprintf("%s:%s %s",
		userHostStyle.Render(m.userHost),
		pathStyle.Render(m.path),
		fmt.Sprintf("[%d]", m.snap.Len()),
	)
}

// entryLine renders one row: selection marker, mark flag, colorized name.
// Unselected rows get a trailing space so a previously wider selected row
// leaves no residue behind.
func (m *Model) entryLine(i int) string {
	entry := m.snap.Entries[i]

	mark := " "
	if entry.Marked {
		mark = "*"
	}

	name := styleFor(entry.Kind).Render(entry.Name)
	if i == m.sel {
		return fmt.Sprintf("> %s%s", mark, name)
	}
	return fmt.Sprintf("  %s%s ", mark, name)
}
