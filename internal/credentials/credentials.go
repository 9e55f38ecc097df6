package credentials

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "metrica"
	keyAPIKey   = "api_key"
)

var ErrNotFound = errors.New("credentials: not found")

// StoreAPIKey keeps the main API key of profile in the OS keyring.
func StoreAPIKey(profile string, apiKey string) error {
	return keyring.Set(serviceName, profile+":"+keyAPIKey, apiKey)
}

func LoadAPIKey(profile string) (string, error) {
	val, err := keyring.Get(serviceName, profile+":"+keyAPIKey)
	if err != nil {
		return "", ErrNotFound
	}
	return val, nil
}

func DeleteAPIKey(profile string) {
	_ = keyring.Delete(serviceName, profile+":"+keyAPIKey)
}

// StoreReporterKey keeps the API key of a named secondary reporter.
func StoreReporterKey(profile string, name string, apiKey string) error {
	return keyring.Set(serviceName, profile+":reporter:"+name, apiKey)
}

func LoadReporterKey(profile string, name string) (string, error) {
	val, err := keyring.Get(serviceName, profile+":reporter:"+name)
	if err != nil {
		return "", ErrNotFound
	}
	return val, nil
}

func DeleteReporterKey(profile string, name string) {
	_ = keyring.Delete(serviceName, profile+":reporter:"+name)
}
