package ui

import (
	"fmt"
	"log"
	"strings"

	"nifti-savior/ds"
	"nifti-savior/nifti"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	ViewModeValues      = "values"
	ViewModeDescription = "description"
	// rows taken by the title, the footer, and their blank lines
	chromeHeight = 5
)

type FieldBrowser struct {
	path     string
	header   *nifti.Header
	rows     [][]string
	cursor   int
	offset   int
	height   int
	viewMode string
}

func CreateFieldBrowser(path string, header *nifti.Header) FieldBrowser {
	return FieldBrowser{
		path:     path,
		header:   header,
		rows:     header.Fields(),
		height:   24,
		viewMode: ViewModeValues,
	}
}

func (b FieldBrowser) Cursor() int {
	return b.cursor
}

func (b FieldBrowser) ViewMode() string {
	return b.viewMode
}

func (b FieldBrowser) visibleRows() int {
	return lo.Max([]int{b.height - chromeHeight, 1})
}

// scroll keeps the cursor inside the visible window.
func (b FieldBrowser) scroll() FieldBrowser {
	visible := b.visibleRows()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+visible {
		b.offset = b.cursor - visible + 1
	}
	return b
}

func (b FieldBrowser) Init() tea.Cmd {
	return nil
}

func (b FieldBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = msg.Height
		return b.scroll(), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.rows)-1 {
				b.cursor++
			}
		case "home", "g":
			b.cursor = 0
		case "end", "G":
			b.cursor = lo.Max([]int{len(b.rows) - 1, 0})
		case "tab", "d":
			if b.viewMode == ViewModeValues {
				b.viewMode = ViewModeDescription
			} else {
				b.viewMode = ViewModeValues
			}
		}
		return b.scroll(), nil
	}
	return b, nil
}

func (b FieldBrowser) View() string {
	output := "NIFTI SAVIOR\n\n"
	output += "File: " + b.path + "\n"

	switch b.viewMode {
	case ViewModeValues:
	case ViewModeDescription:
		output += "\n" + b.header.Describe()
		output += "\n[tab] fields  [q] quit\n"
		return output
	default:
		log.Panic(ds.ErrUnreachableCode{Caller: "FieldBrowser.View", State: b.viewMode})
	}

	sb := strings.Builder{}
	end := lo.Min([]int{b.offset + b.visibleRows(), len(b.rows)})
	for i := b.offset; i < end; i++ {
		row := b.rows[i]
		marker := " "
		if i == b.cursor {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %-16s %-8s %s\n", marker, row[0], row[1], row[3])
	}
	output += "\n" + sb.String()
	output += fmt.Sprintf("\n%d/%d  [j/k] move  [tab] summary  [q] quit\n", b.cursor+1, len(b.rows))
	return output
}
