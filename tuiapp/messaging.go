package tuiapp

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/planefolio/internal"
)

// PhotoProbedMsg carries the decoded photo for the lightbox, or the reason it could not be shown.
type PhotoProbedMsg struct {
	Info internal.PhotoInfo
	Err  error
}

func probePhotoCmd(photoRoot string, record internal.ImageRecord) tea.Cmd {
	return func() tea.Msg {
		info, err := internal.ProbePhoto(photoRoot, record)
		return PhotoProbedMsg{Info: info, Err: err}
	}
}
