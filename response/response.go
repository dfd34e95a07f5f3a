// Package response holds the result of an asynchronous request as stored in
// component state and renders it as a success or failure banner.
package response

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"pfeifer.dev/stately/settings"
	"pfeifer.dev/stately/utils"
)

type Response struct {
	Success  bool
	Data     any
	Messages []string
	// Err is the error a failure response was built from, if any.
	Err error
}

// From returns the response stored in a state value, or nil.
func From(v any) *Response {
	switch r := v.(type) {
	case *Response:
		return r
	case Response:
		return &r
	}
	return nil
}

type Options struct {
	// Type is "alert" or "text", empty uses settings.Settings.ResponseType.
	Type              string
	AdditionalClasses string
	ErrorsOnly        bool
	OnClick           func()
}

// Fragment is a rendered response banner.
type Fragment struct {
	Class    string
	Type     string
	Success  bool
	Messages []string
	OnClick  func()
}

// Render builds the banner for resp. It returns nil when there is nothing to
// show: no response, no messages, or a successful response with ErrorsOnly.
func Render(resp *Response, opts Options) *Fragment {
	if resp == nil {
		return nil
	}
	if resp.Success && opts.ErrorsOnly {
		return nil
	}
	if len(resp.Messages) == 0 {
		return nil
	}

	typ := opts.Type
	if typ == "" {
		typ = settings.Settings.ResponseType
	}
	if typ == "" {
		typ = settings.RESPONSE_TYPE_ALERT
	}

	status := "danger"
	if resp.Success {
		status = "success"
	}
	class := typ + " " + typ + "-" + status
	if opts.AdditionalClasses != "" {
		class += " " + opts.AdditionalClasses
	}
	if opts.OnClick != nil {
		class += " wa-link"
	}

	return &Fragment{
		Class:    class,
		Type:     typ,
		Success:  resp.Success,
		Messages: append([]string(nil), resp.Messages...),
		OnClick:  opts.OnClick,
	}
}

// Click runs the OnClick callback, if there is one.
func (f *Fragment) Click() {
	if f != nil && f.OnClick != nil {
		f.OnClick()
	}
}

func (f *Fragment) View() string {
	if f == nil {
		return ""
	}
	st := styles.Value(newStyleSet)

	var style lipgloss.Style
	switch {
	case f.Type == settings.RESPONSE_TYPE_TEXT && f.Success:
		style = st.successText
	case f.Type == settings.RESPONSE_TYPE_TEXT:
		style = st.dangerText
	case f.Success:
		style = st.successAlert
	default:
		style = st.dangerAlert
	}
	if f.OnClick != nil {
		style = style.Underline(true)
	}

	return style.Render(strings.Join(f.Messages, "\n"))
}

type styleSet struct {
	successAlert lipgloss.Style
	dangerAlert  lipgloss.Style
	successText  lipgloss.Style
	dangerText   lipgloss.Style
}

var styles utils.Lazy[styleSet]

func newStyleSet() styleSet {
	green := lipgloss.Color("2")
	red := lipgloss.Color("1")
	alert := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return styleSet{
		successAlert: alert.BorderForeground(green).Foreground(green),
		dangerAlert:  alert.BorderForeground(red).Foreground(red),
		successText:  lipgloss.NewStyle().Foreground(green),
		dangerText:   lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}
