package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"pfeifer.dev/stately/params"
	"pfeifer.dev/stately/utils"
)

var (
	Settings = defaults()
)

type StatelySettings struct {
	LogLevel       string `json:"log_level"`
	ResponseKey    string `json:"response_key"`
	LoadingKey     string `json:"loading_key"`
	DataKey        string `json:"data_key"`
	FailureMessage string `json:"failure_message"`
	ResponseType   string `json:"response_type"`
}

func defaults() StatelySettings {
	s := StatelySettings{}
	s.Default()
	return s
}

func (s *StatelySettings) Default() {
	s.LogLevel = "error"
	s.ResponseKey = DEFAULT_RESPONSE_KEY
	s.LoadingKey = DEFAULT_LOADING_KEY
	s.DataKey = DEFAULT_DATA_KEY
	s.FailureMessage = DEFAULT_FAILURE_MESSAGE
	s.ResponseType = RESPONSE_TYPE_ALERT
}

// Load reads the saved settings. A missing settings param is not an error,
// the defaults are kept.
func (s *StatelySettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.ParamPath(params.SETTINGS))
	if errors.Is(err, os.ErrNotExist) {
		utils.Logde(err, "settings", "using defaults")
		s.setLogLevel()
		return true
	}
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(errors.Wrap(err, "could not decode settings"))
		return false
	}

	s.setLogLevel()

	return true
}

func (s *StatelySettings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode settings")
	}
	params.EnsureParamDirectories()
	return params.PutParam(params.ParamPath(params.SETTINGS), data)
}

// Names lists the settings that can be changed with Set.
func Names() []string {
	return []string{"log_level", "response_key", "loading_key", "data_key", "failure_message", "response_type"}
}

// Get returns the value of a setting by its json name.
func (s *StatelySettings) Get(name string) (string, error) {
	switch name {
	case "log_level":
		return s.LogLevel, nil
	case "response_key":
		return s.ResponseKey, nil
	case "loading_key":
		return s.LoadingKey, nil
	case "data_key":
		return s.DataKey, nil
	case "failure_message":
		return s.FailureMessage, nil
	case "response_type":
		return s.ResponseType, nil
	}
	return "", errors.Errorf("unknown setting %q", name)
}

// Set changes a setting by its json name.
func (s *StatelySettings) Set(name, value string) error {
	switch name {
	case "log_level":
		s.LogLevel = value
		s.setLogLevel()
	case "response_key":
		s.ResponseKey = value
	case "loading_key":
		s.LoadingKey = value
	case "data_key":
		s.DataKey = value
	case "failure_message":
		s.FailureMessage = value
	case "response_type":
		if value != RESPONSE_TYPE_ALERT && value != RESPONSE_TYPE_TEXT {
			return errors.Errorf("response type must be %q or %q, got %q", RESPONSE_TYPE_ALERT, RESPONSE_TYPE_TEXT, value)
		}
		s.ResponseType = value
	default:
		return errors.Errorf("unknown setting %q", name)
	}
	return nil
}

func (s *StatelySettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}
