package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"plt-reader/plt/pheader"
)

func Start(path string, header pheader.Header) error {
	headerViewer := CreateHeaderViewer(path, header)
	if err := tea.NewProgram(headerViewer).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
