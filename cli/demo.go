package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"pfeifer.dev/stately/event"
	"pfeifer.dev/stately/handlers"
	"pfeifer.dev/stately/params"
	"pfeifer.dev/stately/response"
	"pfeifer.dev/stately/settings"
)

var (
	docStyle  = lipgloss.NewStyle().Margin(1, 2)
	helpStyle = lipgloss.NewStyle().Faint(true)
)

type tagItem string

func (i tagItem) Title() string       { return string(i) }
func (i tagItem) Description() string { return "" }
func (i tagItem) FilterValue() string { return string(i) }

type saveMsg struct {
	resp *response.Response
	err  error
}

// demoModel is a small form whose state lives in a handlers.Component. Key
// presses are turned into handler calls, bubbletea re-renders after every
// Update so the component has no render callback.
type demoModel struct {
	*handlers.Component
	input textinput.Model
	tags  list.Model
}

func newDemoModel() demoModel {
	input := textinput.New()
	input.Placeholder = "Name"
	input.Focus()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	items := []list.Item{tagItem("go"), tagItem("json"), tagItem("state"), tagItem("terminal")}
	tags := list.New(items, delegate, 40, 12)
	tags.Title = "Tags"
	tags.SetFilteringEnabled(false)
	tags.SetShowHelp(false)

	return demoModel{
		Component: handlers.New(map[string]any{
			"name":        "",
			"tags":        []any{},
			"listFocused": false,
		}),
		input: input,
		tags:  tags,
	}
}

func (m demoModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.Component
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			handlers.Toggle(c, "listFocused", false).Value(nil)
			if m.listFocused() {
				m.input.Blur()
				return m, nil
			}
			return m, m.input.Focus()
		case "ctrl+s":
			return m, m.save()
		case "ctrl+r":
			m.reset().Value(nil)
			m.input.SetValue("")
			return m, nil
		case "ctrl+x":
			m.banner().Click()
			return m, nil
		}
		if m.listFocused() && msg.Type == tea.KeyEnter {
			if it, ok := m.tags.SelectedItem().(tagItem); ok {
				field := &event.Field{Val: string(it)}
				handlers.ToggleArrayMemberFromEvent(c, "tags", true).Handle(event.Of(event.New(field)))
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.tags.SetSize(msg.Width-h, msg.Height-v-8)
		return m, nil
	case saveMsg:
		if msg.err != nil {
			handlers.DefaultCatch(c).Handle(msg.err)
		} else {
			handlers.DefaultThen(c).Handle(msg.resp)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.listFocused() {
		m.tags, cmd = m.tags.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	handlers.Update(c, "name", false).Value(m.input.Value())
	return m, cmd
}

func (m demoModel) listFocused() bool {
	focused, _ := m.State()["listFocused"].(bool)
	return focused
}

func (m demoModel) selectedTags() []string {
	tags, _ := m.State()["tags"].([]any)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, fmt.Sprint(t))
	}
	return out
}

func (m demoModel) reset() *handlers.Handler {
	c := m.Component
	return handlers.All(c, []*handlers.Handler{
		handlers.SetState(c, "name", "", false),
		handlers.SetState(c, "tags", []any{}, false),
		handlers.DeleteState(c, settings.Settings.ResponseKey, false),
	}, false)
}

func (m demoModel) banner() *response.Fragment {
	dismiss := handlers.DeleteState(m.Component, settings.Settings.ResponseKey, false)
	return response.Render(response.From(m.State()[settings.Settings.ResponseKey]), response.Options{
		OnClick: func() { dismiss.Value(nil) },
	})
}

func (m demoModel) save() tea.Cmd {
	handlers.SetState(m.Component, settings.Settings.LoadingKey, true, false).Value(nil)
	state := m.State()
	doc := map[string]any{
		"name": state["name"],
		"tags": state["tags"],
	}
	return func() tea.Msg {
		resp, err := saveDemo(doc)
		return saveMsg{resp: resp, err: err}
	}
}

func saveDemo(doc map[string]any) (*response.Response, error) {
	name, _ := doc["name"].(string)
	if strings.TrimSpace(name) == "" {
		return &response.Response{Success: false, Messages: []string{"A name is required"}}, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode form")
	}
	params.EnsureParamDirectories()
	if err := params.PutParam(params.ParamPath(params.DEMO), data); err != nil {
		return nil, err
	}
	return &response.Response{
		Success:  true,
		Data:     doc,
		Messages: []string{fmt.Sprintf("Saved %s", name)},
	}, nil
}

func (m demoModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.tags.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Selected: %s\n", strings.Join(m.selectedTags(), ", "))
	if loading, _ := m.State()[settings.Settings.LoadingKey].(bool); loading {
		b.WriteString("Saving...\n")
	}
	if f := m.banner(); f != nil {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab: switch focus • enter: toggle tag • ctrl+s: save • ctrl+r: reset • ctrl+x: dismiss • esc: quit"))
	return docStyle.Render(b.String())
}

func runDemo() error {
	p := tea.NewProgram(newDemoModel(), tea.WithAltScreen())
	_, err := p.Run()
	return errors.Wrap(err, "demo failed")
}
