package mobile

import (
	"encoding/json"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/payload"
)

// StartupParamsListener receives the params as JSON, or an empty string and
// a failure reason.
type StartupParamsListener interface {
	OnStartupParams(paramsJSON string, reason string)
}

type DeeplinkListener interface {
	OnSuccess(deeplink string)
	OnFailure(reason string, referrer string)
}

type DeeplinkParametersListener interface {
	OnSuccess(paramsJSON string)
	OnFailure(reason string, referrer string)
}

func Activate(configJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var cfg metrica.Config
		if err := payload.Decode("config", configJSON, &cfg); err != nil {
			return err
		}
		return m.Activate(cfg)
	})
}

func ActivateReporter(configJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var cfg metrica.ReporterConfig
		if err := payload.Decode("reporter config", configJSON, &cfg); err != nil {
			return err
		}
		return m.ActivateReporter(cfg)
	})
}

func GetLibraryAPILevel() (int, error) {
	b, err := instance()
	if err != nil {
		return 0, err
	}
	return b.app.GetLibraryAPILevel()
}

func GetLibraryVersion() (string, error) {
	b, err := instance()
	if err != nil {
		return "", err
	}
	return b.app.GetLibraryVersion()
}

func GetDeviceID() (string, error) {
	b, err := instance()
	if err != nil {
		return "", err
	}
	return b.app.GetDeviceID()
}

func GetUUID() (string, error) {
	b, err := instance()
	if err != nil {
		return "", err
	}
	return b.app.GetUUID()
}

func PauseSession() error {
	return with(func(m *metrica.AppMetrica) error { return m.PauseSession() })
}

func ResumeSession() error {
	return with(func(m *metrica.AppMetrica) error { return m.ResumeSession() })
}

func SendEventsBuffer() error {
	return with(func(m *metrica.AppMetrica) error { return m.SendEventsBuffer() })
}

func ClearAppEnvironment() error {
	return with(func(m *metrica.AppMetrica) error { return m.ClearAppEnvironment() })
}

func ReportAppOpen(deeplink string) error {
	return with(func(m *metrica.AppMetrica) error { return m.ReportAppOpen(deeplink) })
}

func ReportEvent(name string, attributesJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var attrs map[string]any
		if err := payload.Decode("event attributes", attributesJSON, &attrs); err != nil {
			return err
		}
		return m.ReportEvent(name, attrs)
	})
}

// ReportError takes a reason that is either an exception object or any
// other JSON value.
func ReportError(identifier string, message string, reasonJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		reason, err := decodeReason(reasonJSON)
		if err != nil {
			return err
		}
		return m.ReportError(identifier, message, reason)
	})
}

func ReportErrorWithoutIdentifier(message string, errorJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		exception, err := decodeError(errorJSON)
		if err != nil {
			return err
		}
		return m.ReportErrorWithoutIdentifier(message, exception)
	})
}

func ReportUnhandledException(errorJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		exception, err := decodeError(errorJSON)
		if err != nil {
			return err
		}
		return m.ReportUnhandledException(exception)
	})
}

// SetLocation overrides the location; an empty string clears it.
func SetLocation(locationJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		if locationJSON == "" {
			return m.SetLocation(nil)
		}
		var loc metrica.Location
		if err := payload.Decode("location", locationJSON, &loc); err != nil {
			return err
		}
		return m.SetLocation(&loc)
	})
}

func SetLocationTracking(enabled bool) error {
	return with(func(m *metrica.AppMetrica) error { return m.SetLocationTracking(enabled) })
}

func SetDataSendingEnabled(enabled bool) error {
	return with(func(m *metrica.AppMetrica) error { return m.SetDataSendingEnabled(enabled) })
}

func SetUserProfileID(userProfileID string) error {
	return with(func(m *metrica.AppMetrica) error { return m.SetUserProfileID(userProfileID) })
}

func ReportECommerce(eventJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var event metrica.ECommerceEvent
		if err := payload.Decode("ecommerce event", eventJSON, &event); err != nil {
			return err
		}
		return m.ReportECommerce(event)
	})
}

func ReportRevenue(revenueJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var revenue metrica.Revenue
		if err := payload.Decode("revenue", revenueJSON, &revenue); err != nil {
			return err
		}
		return m.ReportRevenue(revenue)
	})
}

func ReportAdRevenue(adRevenueJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		adRevenue, err := decodeAdRevenue(adRevenueJSON)
		if err != nil {
			return err
		}
		return m.ReportAdRevenue(adRevenue)
	})
}

func ReportUserProfile(userProfileJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var profile metrica.UserProfile
		if err := payload.Decode("user profile", userProfileJSON, &profile); err != nil {
			return err
		}
		return m.ReportUserProfile(profile)
	})
}

func ReportExternalAttribution(attributionJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var attribution metrica.ExternalAttribution
		if err := payload.Decode("external attribution", attributionJSON, &attribution); err != nil {
			return err
		}
		return m.ReportExternalAttribution(attribution)
	})
}

// PutErrorEnvironmentValue sets key; an empty value removes it.
func PutErrorEnvironmentValue(key string, value string) error {
	return with(func(m *metrica.AppMetrica) error {
		return m.PutErrorEnvironmentValue(key, optional(value))
	})
}

// PutAppEnvironmentValue sets key; an empty value removes it.
func PutAppEnvironmentValue(key string, value string) error {
	return with(func(m *metrica.AppMetrica) error {
		return m.PutAppEnvironmentValue(key, optional(value))
	})
}

// RequestStartupParams takes the wanted identifier keys as a JSON array.
func RequestStartupParams(l StartupParamsListener, identifiersJSON string) error {
	return with(func(m *metrica.AppMetrica) error {
		var identifiers []string
		if err := payload.Decode("startup identifiers", identifiersJSON, &identifiers); err != nil {
			return err
		}
		return m.RequestStartupParams(func(p *metrica.StartupParams, reason metrica.StartupParamsReason) {
			if p == nil {
				l.OnStartupParams("", string(reason))
				return
			}
			data, err := json.Marshal(p.Values())
			if err != nil {
				l.OnStartupParams("", string(metrica.StartupParamsReasonUnknown))
				return
			}
			l.OnStartupParams(string(data), "")
		}, identifiers)
	})
}

func RequestDeferredDeeplink(l DeeplinkListener) error {
	return with(func(m *metrica.AppMetrica) error {
		return m.RequestDeferredDeeplink(metrica.DeferredDeeplinkListener{
			OnSuccess: l.OnSuccess,
			OnFailure: func(reason metrica.DeferredDeeplinkError, referrer string) {
				l.OnFailure(string(reason), referrer)
			},
		})
	})
}

func RequestDeferredDeeplinkParameters(l DeeplinkParametersListener) error {
	return with(func(m *metrica.AppMetrica) error {
		return m.RequestDeferredDeeplinkParameters(metrica.DeferredDeeplinkParametersListener{
			OnSuccess: func(params map[string]string) {
				data, err := json.Marshal(params)
				if err != nil {
					l.OnFailure(string(metrica.DeeplinkParseError), "")
					return
				}
				l.OnSuccess(string(data))
			},
			OnFailure: func(reason metrica.DeferredDeeplinkError, referrer string) {
				l.OnFailure(string(reason), referrer)
			},
		})
	})
}
