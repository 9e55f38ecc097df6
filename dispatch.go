package metrica

import (
	"github.com/metrica-go/metrica/internal/errdesc"
	"github.com/metrica-go/metrica/internal/payload"
)

// GetLibraryAPILevel is only meaningful on Android.
func (m *AppMetrica) GetLibraryAPILevel() (int, error) {
	return m.native.GetLibraryAPILevel()
}

func (m *AppMetrica) GetLibraryVersion() (string, error) {
	return m.native.GetLibraryVersion()
}

func (m *AppMetrica) PauseSession() error {
	return m.native.PauseSession()
}

func (m *AppMetrica) ResumeSession() error {
	return m.native.ResumeSession()
}

// ReportAppOpen reports that the app was opened with deeplink. An empty
// deeplink is forwarded as absent.
func (m *AppMetrica) ReportAppOpen(deeplink string) error {
	return m.native.ReportAppOpen(deeplink)
}

// ReportError reports a custom error grouped by identifier. reason may be an
// error, any JSON-encodable object, or nil.
func (m *AppMetrica) ReportError(identifier string, message string, reason any) error {
	data, err := errdesc.Encode(errdesc.Classify(reason))
	if err != nil {
		return err
	}
	return m.native.ReportError(identifier, message, data)
}

func (m *AppMetrica) ReportUnhandledException(exception error) error {
	data, err := errdesc.Encode(errdesc.ErrorReason{Err: exception})
	if err != nil {
		return err
	}
	return m.native.ReportUnhandledException(data)
}

func (m *AppMetrica) ReportErrorWithoutIdentifier(message string, exception error) error {
	data, err := errdesc.Encode(errdesc.ErrorReason{Err: exception})
	if err != nil {
		return err
	}
	return m.native.ReportErrorWithoutIdentifier(message, data)
}

func (m *AppMetrica) ReportEvent(name string, attributes map[string]any) error {
	data, err := payload.Encode("event attributes", attributes)
	if err != nil {
		return err
	}
	return m.native.ReportEvent(name, data)
}

func (m *AppMetrica) SendEventsBuffer() error {
	return m.native.SendEventsBuffer()
}

// SetLocation overrides the device location; nil clears the override.
func (m *AppMetrica) SetLocation(loc *Location) error {
	data, err := payload.Encode("location", loc)
	if err != nil {
		return err
	}
	return m.native.SetLocation(data)
}

func (m *AppMetrica) SetLocationTracking(enabled bool) error {
	return m.native.SetLocationTracking(enabled)
}

func (m *AppMetrica) SetDataSendingEnabled(enabled bool) error {
	return m.native.SetDataSendingEnabled(enabled)
}

// SetUserProfileID sets the profile ID; an empty ID clears it.
func (m *AppMetrica) SetUserProfileID(userProfileID string) error {
	return m.native.SetUserProfileID(userProfileID)
}

func (m *AppMetrica) ReportECommerce(event ECommerceEvent) error {
	data, err := payload.Encode("ecommerce event", event)
	if err != nil {
		return err
	}
	return m.native.ReportECommerce(data)
}

func (m *AppMetrica) ReportRevenue(revenue Revenue) error {
	data, err := payload.Encode("revenue", revenue)
	if err != nil {
		return err
	}
	return m.native.ReportRevenue(data)
}

// ReportAdRevenue normalizes the amount and currency before forwarding.
func (m *AppMetrica) ReportAdRevenue(adRevenue AdRevenue) error {
	data, err := payload.Encode("ad revenue", payload.NormalizeAdRevenue(adRevenue))
	if err != nil {
		return err
	}
	return m.native.ReportAdRevenue(data)
}

func (m *AppMetrica) ReportUserProfile(profile UserProfile) error {
	data, err := payload.Encode("user profile", profile)
	if err != nil {
		return err
	}
	return m.native.ReportUserProfile(data)
}

func (m *AppMetrica) ReportExternalAttribution(attribution ExternalAttribution) error {
	data, err := payload.Encode("external attribution", attribution)
	if err != nil {
		return err
	}
	return m.native.ReportExternalAttribution(data)
}

// PutErrorEnvironmentValue attaches key to future crash and error reports.
// A nil value removes the key.
func (m *AppMetrica) PutErrorEnvironmentValue(key string, value *string) error {
	return m.native.PutErrorEnvironmentValue(key, payload.Optional(value))
}

// PutAppEnvironmentValue attaches key to future reports. A nil value removes
// the key.
func (m *AppMetrica) PutAppEnvironmentValue(key string, value *string) error {
	return m.native.PutAppEnvironmentValue(key, payload.Optional(value))
}

func (m *AppMetrica) ClearAppEnvironment() error {
	return m.native.ClearAppEnvironment()
}

func (m *AppMetrica) ActivateReporter(cfg ReporterConfig) error {
	data, err := payload.Encode("reporter config", cfg)
	if err != nil {
		return err
	}
	return m.native.ActivateReporter(data)
}

// GetDeviceID returns "" while the SDK has not obtained an ID yet.
func (m *AppMetrica) GetDeviceID() (string, error) {
	return m.native.GetDeviceID()
}

// GetUUID returns "" while the SDK has not obtained a UUID yet.
func (m *AppMetrica) GetUUID() (string, error) {
	return m.native.GetUUID()
}
