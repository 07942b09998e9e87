package config

import (
	"strconv"
	"strings"
)

const (
	apiBaseURLVar  = "API_BASE_URL"
	httpTimeoutVar = "HTTP_TIMEOUT_SECONDS"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the base URL of the BoviCare API, without a trailing
// slash (e.g. "https://api.bovicare.example/api/v1").
func (API) GetAPIBaseURL() string {
	base := GetEnv(apiBaseURLVar, "http://localhost:8000/api/v1")
	return strings.TrimRight(base, "/")
}

func (API) GetHTTPTimeoutSeconds() int {
	raw := GetEnv(httpTimeoutVar, "30")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 30
	}
	return seconds
}
