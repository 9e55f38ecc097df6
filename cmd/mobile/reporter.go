package mobile

import (
	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/payload"
)

// Reporter reports under a secondary API key. Each call goes through the
// currently registered bridge and fails with the linkage error when none is
// registered.
type Reporter struct {
	apiKey string
}

// GetReporter returns the reporter for apiKey, creating it on first use.
// Repeated calls for one key return the same *Reporter.
func GetReporter(apiKey string) (*Reporter, error) {
	b, err := instance()
	if err != nil {
		return nil, err
	}
	if r, ok := b.reporters.Load(apiKey); ok {
		return r, nil
	}
	if _, err := b.app.Reporter(apiKey); err != nil {
		return nil, err
	}
	r, _ := b.reporters.LoadOrStore(apiKey, &Reporter{apiKey: apiKey})
	return r, nil
}

func (r *Reporter) with(fn func(rep *metrica.Reporter) error) error {
	b, err := instance()
	if err != nil {
		return err
	}
	rep, err := b.app.Reporter(r.apiKey)
	if err != nil {
		return err
	}
	return fn(rep)
}

func (r *Reporter) APIKey() string {
	return r.apiKey
}

func (r *Reporter) ReportEvent(name string, attributesJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		var attrs map[string]any
		if err := payload.Decode("event attributes", attributesJSON, &attrs); err != nil {
			return err
		}
		return rep.ReportEvent(name, attrs)
	})
}

func (r *Reporter) ReportError(identifier string, message string, reasonJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		reason, err := decodeReason(reasonJSON)
		if err != nil {
			return err
		}
		return rep.ReportError(identifier, message, reason)
	})
}

func (r *Reporter) ReportErrorWithoutIdentifier(message string, errorJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		exception, err := decodeError(errorJSON)
		if err != nil {
			return err
		}
		return rep.ReportErrorWithoutIdentifier(message, exception)
	})
}

func (r *Reporter) ReportUnhandledException(errorJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		exception, err := decodeError(errorJSON)
		if err != nil {
			return err
		}
		return rep.ReportUnhandledException(exception)
	})
}

func (r *Reporter) PauseSession() error {
	return r.with(func(rep *metrica.Reporter) error { return rep.PauseSession() })
}

func (r *Reporter) ResumeSession() error {
	return r.with(func(rep *metrica.Reporter) error { return rep.ResumeSession() })
}

func (r *Reporter) SendEventsBuffer() error {
	return r.with(func(rep *metrica.Reporter) error { return rep.SendEventsBuffer() })
}

func (r *Reporter) ClearAppEnvironment() error {
	return r.with(func(rep *metrica.Reporter) error { return rep.ClearAppEnvironment() })
}

func (r *Reporter) PutAppEnvironmentValue(key string, value string) error {
	return r.with(func(rep *metrica.Reporter) error {
		return rep.PutAppEnvironmentValue(key, optional(value))
	})
}

func (r *Reporter) SetUserProfileID(userProfileID string) error {
	return r.with(func(rep *metrica.Reporter) error { return rep.SetUserProfileID(userProfileID) })
}

func (r *Reporter) SetDataSendingEnabled(enabled bool) error {
	return r.with(func(rep *metrica.Reporter) error { return rep.SetDataSendingEnabled(enabled) })
}

func (r *Reporter) ReportECommerce(eventJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		var event metrica.ECommerceEvent
		if err := payload.Decode("ecommerce event", eventJSON, &event); err != nil {
			return err
		}
		return rep.ReportECommerce(event)
	})
}

func (r *Reporter) ReportRevenue(revenueJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		var revenue metrica.Revenue
		if err := payload.Decode("revenue", revenueJSON, &revenue); err != nil {
			return err
		}
		return rep.ReportRevenue(revenue)
	})
}

func (r *Reporter) ReportAdRevenue(adRevenueJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		adRevenue, err := decodeAdRevenue(adRevenueJSON)
		if err != nil {
			return err
		}
		return rep.ReportAdRevenue(adRevenue)
	})
}

func (r *Reporter) ReportUserProfile(userProfileJSON string) error {
	return r.with(func(rep *metrica.Reporter) error {
		var profile metrica.UserProfile
		if err := payload.Decode("user profile", userProfileJSON, &profile); err != nil {
			return err
		}
		return rep.ReportUserProfile(profile)
	})
}
