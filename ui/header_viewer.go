package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"plt-reader/plt/pheader"
)

const (
	// DefaultPageSize is how many variable names are shown at once.
	DefaultPageSize = 10
)

type HeaderViewer struct {
	path     string
	header   pheader.Header
	offset   int
	pageSize int
}

func CreateHeaderViewer(path string, header pheader.Header) HeaderViewer {
	return HeaderViewer{
		path:     path,
		header:   header,
		offset:   0,
		pageSize: DefaultPageSize,
	}
}

func (v HeaderViewer) View() string {
	h := v.header
	output := "PLT HEADER\n\n"
	output += "File:          " + v.path + "\n"
	output += fmt.Sprintf("Magic number:  %q (version %s)\n", h.Signature.RawChars, h.Signature.Version())
	output += fmt.Sprintf("Byte order:    %d\n", h.ByteOrder)
	output += fmt.Sprintf("File type:     %s\n", h.FileType)
	output += fmt.Sprintf("Title:         %s\n", h.Title)
	output += fmt.Sprintf("End of header: %d\n", h.EndOfHeader)
	output += fmt.Sprintf(
		"Zone markers:  %s\n",
		strings.Join(lo.Map(h.ZoneMarkers, func(offset int, _ int) string { return fmt.Sprint(offset) }), ", "),
	)

	output += fmt.Sprintf("\nVariables (%d declared, %d read)\n", h.NumVars, len(h.VarNames))
	end := lo.Min([]int{v.offset + v.pageSize, len(h.VarNames)})
	for i := v.offset; i < end; i++ {
		output += fmt.Sprintf("  %3d  %s\n", i+1, h.VarNames[i])
	}

	if len(h.Issues) > 0 {
		output += "\nIssues\n"
		for _, issue := range h.Issues {
			output += "  - " + issue.Error() + "\n"
		}
	}

	output += "\nup/down: scroll variables, q: quit\n"
	return output
}

func (v HeaderViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "down", "j":
		if v.offset+v.pageSize < len(v.header.VarNames) {
			v.offset++
		}
	case "up", "k":
		if v.offset > 0 {
			v.offset--
		}
	}
	return v, nil
}

func (v HeaderViewer) Init() tea.Cmd {
	return nil
}
