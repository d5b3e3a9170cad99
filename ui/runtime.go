package ui

import (
	"nifti-savior/nifti"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(path string, header *nifti.Header) error {
	browser := CreateFieldBrowser(path, header)
	if err := tea.NewProgram(browser, tea.WithAltScreen()).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
