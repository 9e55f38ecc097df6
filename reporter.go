package metrica

import (
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/errdesc"
	"github.com/metrica-go/metrica/internal/payload"
)

// Reporter sends reports under its own API key, separately from the main
// one. Obtain it with (*AppMetrica).Reporter.
type Reporter struct {
	apiKey string
	bridge bridge.ReporterBridge
}

// Reporter returns the reporter for apiKey. The first request for a key asks
// the SDK to create the reporter; every later request returns the same
// *Reporter without calling the SDK. Reporters live as long as m.
func (m *AppMetrica) Reporter(apiKey string) (*Reporter, error) {
	if r, ok := m.reporters.Load(apiKey); ok {
		return r, nil
	}
	if m.reporterB == nil {
		return nil, &bridge.LinkError{}
	}

	v, err, _ := m.sfg.Do(apiKey, func() (any, error) {
		if r, ok := m.reporters.Load(apiKey); ok {
			return r, nil
		}
		if err := m.native.TouchReporter(apiKey); err != nil {
			return nil, err
		}
		r := &Reporter{apiKey: apiKey, bridge: m.reporterB}
		m.reporters.Store(apiKey, r)
		m.logger.Debug("reporter created", "apiKey", maskKey(apiKey))
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Reporter), nil
}

func (r *Reporter) APIKey() string {
	return r.apiKey
}

func (r *Reporter) ReportEvent(name string, attributes map[string]any) error {
	data, err := payload.Encode("event attributes", attributes)
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportEvent(r.apiKey, name, data)
}

// ReportError behaves like (*AppMetrica).ReportError.
func (r *Reporter) ReportError(identifier string, message string, reason any) error {
	data, err := errdesc.Encode(errdesc.Classify(reason))
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportError(r.apiKey, identifier, message, data)
}

func (r *Reporter) ReportErrorWithoutIdentifier(message string, exception error) error {
	data, err := errdesc.Encode(errdesc.ErrorReason{Err: exception})
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportErrorWithoutIdentifier(r.apiKey, message, data)
}

func (r *Reporter) ReportUnhandledException(exception error) error {
	data, err := errdesc.Encode(errdesc.ErrorReason{Err: exception})
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportUnhandledException(r.apiKey, data)
}

func (r *Reporter) PauseSession() error {
	return r.bridge.ReporterPauseSession(r.apiKey)
}

func (r *Reporter) ResumeSession() error {
	return r.bridge.ReporterResumeSession(r.apiKey)
}

func (r *Reporter) SendEventsBuffer() error {
	return r.bridge.ReporterSendEventsBuffer(r.apiKey)
}

func (r *Reporter) ClearAppEnvironment() error {
	return r.bridge.ReporterClearAppEnvironment(r.apiKey)
}

func (r *Reporter) PutAppEnvironmentValue(key string, value *string) error {
	return r.bridge.ReporterPutAppEnvironmentValue(r.apiKey, key, payload.Optional(value))
}

func (r *Reporter) SetUserProfileID(userProfileID string) error {
	return r.bridge.ReporterSetUserProfileID(r.apiKey, userProfileID)
}

func (r *Reporter) SetDataSendingEnabled(enabled bool) error {
	return r.bridge.ReporterSetDataSendingEnabled(r.apiKey, enabled)
}

func (r *Reporter) ReportECommerce(event ECommerceEvent) error {
	data, err := payload.Encode("ecommerce event", event)
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportECommerce(r.apiKey, data)
}

func (r *Reporter) ReportRevenue(revenue Revenue) error {
	data, err := payload.Encode("revenue", revenue)
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportRevenue(r.apiKey, data)
}

func (r *Reporter) ReportAdRevenue(adRevenue AdRevenue) error {
	data, err := payload.Encode("ad revenue", payload.NormalizeAdRevenue(adRevenue))
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportAdRevenue(r.apiKey, data)
}

func (r *Reporter) ReportUserProfile(profile UserProfile) error {
	data, err := payload.Encode("user profile", profile)
	if err != nil {
		return err
	}
	return r.bridge.ReporterReportUserProfile(r.apiKey, data)
}
