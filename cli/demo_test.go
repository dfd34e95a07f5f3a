package cli

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/stately/params"
	"pfeifer.dev/stately/response"
	"pfeifer.dev/stately/settings"
)

func useTempParams(t *testing.T) {
	t.Helper()
	orig := params.ParamsPath
	params.ParamsPath = t.TempDir()
	t.Cleanup(func() { params.ParamsPath = orig })
}

func send(m demoModel, msgs ...tea.Msg) (demoModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(demoModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDemoTyping(t *testing.T) {
	m, _ := send(newDemoModel(), runes("a"), runes("b"))
	assert.Equal(t, "ab", m.State()["name"])
	assert.Equal(t, "ab", m.input.Value())
}

func TestDemoTags(t *testing.T) {
	m, _ := send(newDemoModel(), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.listFocused())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"go"}, m.selectedTags())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"go", "json"}, m.selectedTags())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"json"}, m.selectedTags())

	m, _ = send(m, runes("x"))
	assert.Equal(t, "", m.State()["name"])

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.listFocused())
}

func TestDemoSave(t *testing.T) {
	useTempParams(t)

	m, _ := send(newDemoModel(), runes("n"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, true, m.State()[settings.Settings.LoadingKey])
	assert.Contains(t, m.View(), "Saving...")

	m, _ = send(m, cmd())

	assert.Equal(t, false, m.State()[settings.Settings.LoadingKey])
	resp := response.From(m.State()[settings.Settings.ResponseKey])
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Saved n"}, resp.Messages)
	assert.Equal(t, map[string]any{"name": "n", "tags": []any{"go"}}, m.State()[settings.Settings.DataKey])
	assert.Contains(t, m.View(), "Saved n")

	data, err := params.GetParam(params.ParamPath(params.DEMO))
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "n", saved["name"])

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Nil(t, m.State()[settings.Settings.ResponseKey])
	assert.NotContains(t, m.View(), "Saved n")
}

func TestDemoSaveRequiresName(t *testing.T) {
	useTempParams(t)

	m, cmd := send(newDemoModel(), tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = send(m, cmd())

	resp := response.From(m.State()[settings.Settings.ResponseKey])
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.NotContains(t, m.State(), settings.Settings.DataKey)
}

func TestDemoSaveFailure(t *testing.T) {
	m, _ := send(newDemoModel(), saveMsg{err: errors.New("disk full")})

	resp := response.From(m.State()[settings.Settings.ResponseKey])
	require.NotNil(t, resp)
	assert.Equal(t, []string{settings.DEFAULT_FAILURE_MESSAGE}, resp.Messages)
	assert.EqualError(t, resp.Err, "disk full")
}

func TestDemoReset(t *testing.T) {
	m, _ := send(newDemoModel(), runes("abc"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(m, saveMsg{resp: &response.Response{Success: true, Messages: []string{"ok"}}})
	require.NotNil(t, m.State()[settings.Settings.ResponseKey])

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, "", m.State()["name"])
	assert.Empty(t, m.selectedTags())
	assert.Nil(t, m.State()[settings.Settings.ResponseKey])
	assert.Equal(t, "", m.input.Value())
}
