package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/synedit/highlighter"
	"github.com/ionut-t/synedit/internal/config"
)

func TestChangeSummary(t *testing.T) {
	tests := []struct {
		name              string
		before, after     string
		inserted, deleted int
	}{
		{"same", "abc", "abc", 0, 0},
		{"append", "abc", "abcd", 1, 0},
		{"remove", "abcd", "ad", 0, 2},
		{"replace word", "let x = 1", "let y = 1", 1, 1},
		{"unicode", "", "héllo", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, del := changeSummary(tt.before, tt.after)
			require.Equal(t, tt.inserted, ins)
			require.Equal(t, tt.deleted, del)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "code/main.rs"), expandHome("~/code/main.rs"))
	require.Equal(t, "/tmp/x.rs", expandHome("/tmp/x.rs"))
	require.Equal(t, "~user/x", expandHome("~user/x"))
}

func TestThemeColors(t *testing.T) {
	system := highlighter.NewSyntaxSystem()

	bg, _ := themeColors(system, highlighter.Eighties)
	require.Equal(t, "#2d2d2d", bg.Hex())

	bg, _ = themeColors(system, "no-such-theme")
	require.Equal(t, "#2e2e2e", bg.Hex(), "unknown themes keep the fallback")
}

func testConfig(t *testing.T, content string) config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.Watch = false
	cfg.File = filepath.Join(t.TempDir(), "main.rs")
	if content != "" {
		require.NoError(t, os.WriteFile(cfg.File, []byte(content), 0644))
	}
	return cfg
}

func TestNewShowcase_LoadsFile(t *testing.T) {
	m, err := newShowcase(testConfig(t, "fn main() {}\n"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.Equal(t, "fn main() {}\n", m.state.Text())
	require.Equal(t, "rs", m.args.FileExtension)
}

func TestNewShowcase_MissingFileStartsEmpty(t *testing.T) {
	m, err := newShowcase(testConfig(t, ""))
	require.NoError(t, err)

	require.Equal(t, "", m.state.Text())
}

func TestNewShowcase_RejectsBadSelectionColor(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Editor.SelectionColor = "blue"

	_, err := newShowcase(cfg)
	require.Error(t, err)
}

func TestShowcase_Presets(t *testing.T) {
	for _, preset := range config.Presets {
		t.Run(preset, func(t *testing.T) {
			cfg := testConfig(t, "")
			cfg.Editor.Preset = preset

			m, err := newShowcase(cfg)
			require.NoError(t, err)
			require.NoError(t, m.args.Validate())
		})
	}
}

func TestShowcase_ViewShowsTitleAndEditor(t *testing.T) {
	m, err := newShowcase(testConfig(t, "fn main() {}"))
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	require.Contains(t, view, "Syntax Editor Showcase")
	require.NoError(t, m.host.Err())
}

func TestShowcase_SaveAndReload(t *testing.T) {
	cfg := testConfig(t, "old")
	m, err := newShowcase(cfg)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	m.state.SetText("saved")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	content, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	require.Equal(t, "saved", string(content))
	require.Contains(t, m.status, "5 bytes written")

	require.NoError(t, os.WriteFile(cfg.File, []byte("from disk"), 0644))
	m.Update(fileChangedMsg{})
	require.Equal(t, "from disk", m.state.Text())
	require.Contains(t, m.status, "reloaded")
}

func TestShowcase_ClearStatusOnlyLatest(t *testing.T) {
	m, err := newShowcase(testConfig(t, ""))
	require.NoError(t, err)

	m.setStatus("first")
	m.setStatus("second")

	m.Update(clearStatusMsg{id: 1})
	require.Equal(t, "second", m.status)

	m.Update(clearStatusMsg{id: 2})
	require.Equal(t, "", m.status)
}

func TestShowcase_QuitKeys(t *testing.T) {
	m, err := newShowcase(testConfig(t, ""))
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.IsType(t, tea.QuitMsg{}, cmd())
}
