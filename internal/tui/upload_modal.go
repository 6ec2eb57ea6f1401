package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/findash/internal/logging"
)

// bytesPerKB converts file sizes for display.
const bytesPerKB = 1024

// uploadInputWidth is the width of the path input.
const uploadInputWidth = 48

// AllowedUploadExtensions lists the file types accepted by the upload modal.
var AllowedUploadExtensions = []string{".pdf", ".doc", ".docx", ".png", ".jpg", ".jpeg"} //nolint:gochecknoglobals // Fixed list.

// Upload staging errors.
var (
	ErrNoPath          = errors.New("enter a file path")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrNotRegularFile  = errors.New("not a regular file")
)

// StagedFile is a local file chosen in the upload modal. Only its metadata is read.
type StagedFile struct {
	Name      string
	Path      string
	Size      int64
	StagingID string
}

// SizeKB returns the file size in kilobytes.
func (f StagedFile) SizeKB() float64 {
	return float64(f.Size) / bytesPerKB
}

// UploadCompletedMsg is emitted when the user confirms a staged file.
type UploadCompletedMsg struct {
	File StagedFile
}

// UploadCancelledMsg is emitted when the modal is dismissed.
type UploadCancelledMsg struct{}

// UploadModel is the "Add Invoice" modal. Enter stages a path, a second enter
// confirms it and esc discards it. Nothing is transmitted.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type UploadModel struct {
	ctx    context.Context
	input  textinput.Model
	staged *StagedFile
	err    error
	width  int
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/invoice.pdf"
	ti.CharLimit = 4096
	ti.Width = uploadInputWidth
	ti.Prompt = "> "
	return ti
}

// NewUploadModel creates a focused upload modal.
func NewUploadModel(ctx context.Context) UploadModel {
	m := UploadModel{
		ctx:   ctx,
		input: newTextInput(),
		width: defaultWidth,
	}
	m.input.Focus()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			if m.staged != nil {
				logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
					Str("component", "upload").
					Str("staging_id", m.staged.StagingID).
					Msg("staged file discarded")
			}
			m.staged = nil
			return m, func() tea.Msg { return UploadCancelledMsg{} }
		case keyEnter:
			return m.handleEnter()
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.staged != nil && m.input.Value() != m.staged.Path {
		// Editing the path drops the staged file.
		m.staged = nil
	}
	return m, cmd
}

func (m UploadModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.staged != nil {
		file := *m.staged
		logging.FromContext(m.ctx).Info().Ctx(m.ctx).
			Str("component", "upload").
			Str("file", file.Name).
			Int64("size_bytes", file.Size).
			Str("staging_id", file.StagingID).
			Msg("invoice uploaded")
		m.staged = nil
		m.input.SetValue("")
		return m, func() tea.Msg { return UploadCompletedMsg{File: file} }
	}

	file, err := StageFile(m.input.Value())
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.staged = &file
	return m, nil
}

// StageFile validates path and reads its metadata.
func StageFile(path string) (StagedFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return StagedFile{}, ErrNoPath
	}
	if !allowedExtension(path) {
		return StagedFile{}, fmt.Errorf("%w: %s (accepted: %s)",
			ErrUnsupportedFile, filepath.Ext(path), strings.Join(AllowedUploadExtensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return StagedFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return StagedFile{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	return StagedFile{
		Name:      info.Name(),
		Path:      path,
		Size:      info.Size(),
		StagingID: logging.NewTraceID(),
	}, nil
}

func allowedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Staged returns the staged file, if any.
func (m UploadModel) Staged() (StagedFile, bool) {
	if m.staged == nil {
		return StagedFile{}, false
	}
	return *m.staged, true
}

// Err returns the last staging error.
func (m UploadModel) Err() error {
	return m.err
}

// View renders the modal (Bubble Tea interface).
func (m UploadModel) View() string {
	sections := []string{
		HeaderStyle.Render("Add Invoice"),
		SubtleStyle.Render("Enter the path of an invoice file (" + strings.Join(AllowedUploadExtensions, ", ") + ")"),
		"",
		m.input.View(),
	}

	if m.err != nil {
		sections = append(sections, "", CriticalStyle.Render(m.err.Error()))
	}
	if m.staged != nil {
		sections = append(sections, "",
			LabelStyle.Render("File: ")+ValueStyle.Render(m.staged.Name),
			LabelStyle.Render("Size: ")+ValueStyle.Render(fmt.Sprintf("%.2f KB", m.staged.SizeKB())),
		)
	}

	hint := "enter: choose file  esc: cancel"
	if m.staged != nil {
		hint = "enter: upload  esc: cancel"
	}
	sections = append(sections, "", SubtleStyle.Render(hint))

	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
