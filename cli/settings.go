package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"pfeifer.dev/stately/settings"
	"pfeifer.dev/stately/utils"
)

const (
	saveItem = "Save Settings"
	exitItem = "Return"
)

type settingsItem struct {
	Name  string
	Value string
	Desc  string
}

var settingDescriptions = map[string]string{
	"log_level":       "How verbose logging is: debug, info, warn or error",
	"response_key":    "State key request handlers store the response under",
	"loading_key":     "State key request handlers clear when a request finishes",
	"data_key":        "State key successful response data is stored under",
	"failure_message": "Message shown when a request fails",
	"response_type":   "How responses are rendered: alert or text",
}

func settingsItems(s *settings.StatelySettings) []settingsItem {
	items := []settingsItem{}
	for _, name := range settings.Names() {
		value, err := s.Get(name)
		utils.Logwe(err, "setting", name)
		items = append(items, settingsItem{Name: name, Value: value, Desc: settingDescriptions[name]})
	}
	items = append(items,
		settingsItem{Name: saveItem, Desc: "Persists any updates to the settings"},
		settingsItem{Name: exitItem, Desc: "Leave without saving"},
	)
	return items
}

// applySetting validates and stores a setting entered in the editor.
func applySetting(s *settings.StatelySettings, name, value string) error {
	if err := s.Set(name, value); err != nil {
		return errors.Wrap(err, "could not update setting")
	}
	return nil
}

func editSettings() {
	s := &settings.Settings
	s.Load()

	for {
		items := settingsItems(s)
		prompt := promptui.Select{
			Label: "Stately Settings",
			Items: items,
			Size:  len(items),
			Templates: &promptui.SelectTemplates{
				Label:    "{{ . }}",
				Active:   "> {{ .Name | cyan }} {{ .Value | faint }}",
				Inactive: "  {{ .Name }} {{ .Value | faint }}",
				Selected: "{{ .Name }}",
				Details:  "{{ .Desc }}",
			},
		}
		i, _, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}

		switch items[i].Name {
		case exitItem:
			return
		case saveItem:
			if err := s.Save(); err != nil {
				fmt.Printf("Could not save settings: %v\n", err)
				continue
			}
			fmt.Println("Settings saved")
			return
		}

		input := promptui.Prompt{
			Label:   items[i].Name,
			Default: items[i].Value,
		}
		value, err := input.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			continue
		}
		if err := applySetting(s, items[i].Name, value); err != nil {
			fmt.Println(err)
		}
	}
}
