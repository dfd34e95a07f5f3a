package settings

const (
	DEFAULT_RESPONSE_KEY    = "response"
	DEFAULT_LOADING_KEY     = "loading"
	DEFAULT_DATA_KEY        = "data"
	DEFAULT_FAILURE_MESSAGE = "An unexpected error has occurred. Please try again later."

	RESPONSE_TYPE_ALERT = "alert"
	RESPONSE_TYPE_TEXT  = "text"
)
