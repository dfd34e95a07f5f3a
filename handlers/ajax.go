package handlers

import (
	"fmt"

	"pfeifer.dev/stately/response"
	"pfeifer.dev/stately/settings"
)

// GetThen returns a handler for a successful request. It clears the loading
// flag, stores the response and, when dataKey is set and the response
// succeeded, stores its data under dataKey. Empty response and loading keys
// use the configured defaults.
func GetThen(o Owner, responseKey, loadingKey, dataKey string) *ThenHandler {
	responseKey, loadingKey = requestKeys(responseKey, loadingKey)
	key := cacheKey("getThen", responseKey, loadingKey, dataKey)
	return cached(o, key, func() *ThenHandler {
		return &ThenHandler{fn: func(resp *response.Response) {
			next := map[string]any{
				loadingKey:  false,
				responseKey: resp,
			}
			if resp != nil && resp.Success && dataKey != "" && resp.Data != nil {
				next[dataKey] = resp.Data
			}
			o.SetState(next)
		}}
	})
}

// GetCatch returns a handler for a failed request. The error is logged and
// replaced in state by a generic failure response.
func GetCatch(o Owner, responseKey, loadingKey string) *CatchHandler {
	responseKey, loadingKey = requestKeys(responseKey, loadingKey)
	key := cacheKey("getCatch", responseKey, loadingKey)
	return cached(o, key, func() *CatchHandler {
		return &CatchHandler{fn: func(err error) {
			logger(o).Error("request failed", "error", fmt.Sprintf("%+v", err))
			o.SetState(map[string]any{
				loadingKey:  false,
				responseKey: failure(err),
			})
		}}
	})
}

func DefaultThen(o Owner) *ThenHandler {
	return GetThen(o, "", "", settings.Settings.DataKey)
}

func DefaultCatch(o Owner) *CatchHandler {
	return GetCatch(o, "", "")
}

func requestKeys(responseKey, loadingKey string) (string, string) {
	if responseKey == "" {
		responseKey = settings.Settings.ResponseKey
	}
	if responseKey == "" {
		responseKey = settings.DEFAULT_RESPONSE_KEY
	}
	if loadingKey == "" {
		loadingKey = settings.Settings.LoadingKey
	}
	if loadingKey == "" {
		loadingKey = settings.DEFAULT_LOADING_KEY
	}
	return responseKey, loadingKey
}

func failure(err error) *response.Response {
	msg := settings.Settings.FailureMessage
	if msg == "" {
		msg = settings.DEFAULT_FAILURE_MESSAGE
	}
	return &response.Response{
		Success:  false,
		Messages: []string{msg},
		Err:      err,
	}
}
