package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func typeText(t *testing.T, m tea.Model, text string) tea.Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated
}

func TestStageFile(t *testing.T) {
	path := writeTempFile(t, "march.PDF", 2048)

	file, err := StageFile("  " + path + " ")
	require.NoError(t, err)
	assert.Equal(t, "march.PDF", file.Name)
	assert.Equal(t, path, file.Path)
	assert.Equal(t, int64(2048), file.Size)
	assert.InDelta(t, 2.0, file.SizeKB(), 0.001)
	assert.Len(t, file.StagingID, 26)
}

func TestStageFile_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o700))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty", path: "   ", wantErr: ErrNoPath},
		{name: "unsupported extension", path: writeTempFile(t, "notes.txt", 10), wantErr: ErrUnsupportedFile},
		{name: "missing file", path: filepath.Join(dir, "missing.pdf"), wantErr: os.ErrNotExist},
		{name: "directory", path: filepath.Join(dir, "folder.pdf"), wantErr: ErrNotRegularFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StageFile(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestUploadModel_StageAndConfirm verifies the two-step enter flow.
func TestUploadModel_StageAndConfirm(t *testing.T) {
	path := writeTempFile(t, "invoice.jpeg", 1536)
	var model tea.Model = NewUploadModel(context.Background())

	model = typeText(t, model, path)
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	staged, ok := model.(UploadModel).Staged()
	require.True(t, ok)
	assert.Equal(t, "invoice.jpeg", staged.Name)
	assert.Contains(t, model.View(), "invoice.jpeg")
	assert.Contains(t, model.View(), "1.50 KB")
	assert.Contains(t, model.View(), "enter: upload")

	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	done, ok := cmd().(UploadCompletedMsg)
	require.True(t, ok)
	assert.Equal(t, staged, done.File)

	_, ok = model.(UploadModel).Staged()
	assert.False(t, ok)
}

// TestUploadModel_InvalidPath verifies errors are shown inline and cleared on edit.
func TestUploadModel_InvalidPath(t *testing.T) {
	var model tea.Model = NewUploadModel(context.Background())

	model = typeText(t, model, "/tmp/report.xlsx")
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.ErrorIs(t, model.(UploadModel).Err(), ErrUnsupportedFile)
	assert.Contains(t, model.View(), "unsupported file type")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.NoError(t, model.(UploadModel).Err())
}

// TestUploadModel_EditDropsStagedFile verifies changing the path discards the staged file.
func TestUploadModel_EditDropsStagedFile(t *testing.T) {
	path := writeTempFile(t, "a.pdf", 10)
	var model tea.Model = NewUploadModel(context.Background())

	model = typeText(t, model, path)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := model.(UploadModel).Staged()
	require.True(t, ok)

	model = typeText(t, model, "x")
	_, ok = model.(UploadModel).Staged()
	assert.False(t, ok)
}

// TestUploadModel_Cancel verifies esc discards the staged file.
func TestUploadModel_Cancel(t *testing.T) {
	path := writeTempFile(t, "a.png", 10)
	var model tea.Model = NewUploadModel(context.Background())

	model = typeText(t, model, path)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEscape})

	require.NotNil(t, cmd)
	assert.IsType(t, UploadCancelledMsg{}, cmd())
	_, ok := model.(UploadModel).Staged()
	assert.False(t, ok)
}
