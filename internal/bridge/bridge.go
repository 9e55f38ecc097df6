package bridge

// NativeBridge is implemented by the native side (Swift/Kotlin) and wraps
// the analytics SDK. gomobile exposes this as an interface that native code
// can satisfy.
//
// Rules for gomobile compatibility:
//   - methods may only use primitive types, strings, []byte, or other
//     gomobile-bound types as parameters and return values
//   - structured payloads travel as JSON strings; an empty string means
//     the argument is absent
//   - errors are returned as the last return value
type NativeBridge interface {
	Activate(configJSON string) error
	PauseSession() error
	ResumeSession() error
	ReportAppOpen(deeplink string) error

	// ReportError sends a custom error grouped by identifier. reasonJSON
	// is an error descriptor or empty.
	ReportError(identifier string, message string, reasonJSON string) error
	ReportUnhandledException(errorJSON string) error
	ReportErrorWithoutIdentifier(message string, errorJSON string) error

	ReportEvent(name string, attributesJSON string) error

	// RequestStartupParams asks for the identifiers listed in
	// identifiersJSON (a JSON array of key names). The SDK answers once
	// through cb.
	RequestStartupParams(identifiersJSON string, cb StartupParamsCallback) error

	SendEventsBuffer() error
	SetLocation(locationJSON string) error
	SetLocationTracking(enabled bool) error
	SetDataSendingEnabled(enabled bool) error
	SetUserProfileID(userProfileID string) error

	ReportECommerce(eventJSON string) error
	ReportRevenue(revenueJSON string) error
	ReportAdRevenue(adRevenueJSON string) error
	ReportUserProfile(userProfileJSON string) error
	ReportExternalAttribution(attributionJSON string) error

	PutErrorEnvironmentValue(key string, value string) error
	PutAppEnvironmentValue(key string, value string) error
	ClearAppEnvironment() error

	// TouchReporter makes the SDK create the reporter for apiKey.
	TouchReporter(apiKey string) error
	ActivateReporter(configJSON string) error

	// GetDeviceID and GetUUID return "" while the SDK has no value yet.
	GetDeviceID() (string, error)
	GetUUID() (string, error)

	RequestDeferredDeeplink(cb DeferredDeeplinkCallback) error
	RequestDeferredDeeplinkParameters(cb DeferredDeeplinkParametersCallback) error

	// GetLibraryAPILevel is only meaningful on Android.
	GetLibraryAPILevel() (int, error)
	GetLibraryVersion() (string, error)
}

// ReporterBridge forwards calls for secondary reporters, scoped by the
// reporter's API key.
type ReporterBridge interface {
	ReporterReportEvent(apiKey string, name string, attributesJSON string) error
	ReporterReportError(apiKey string, identifier string, message string, reasonJSON string) error
	ReporterReportErrorWithoutIdentifier(apiKey string, message string, errorJSON string) error
	ReporterReportUnhandledException(apiKey string, errorJSON string) error
	ReporterPauseSession(apiKey string) error
	ReporterResumeSession(apiKey string) error
	ReporterSendEventsBuffer(apiKey string) error
	ReporterClearAppEnvironment(apiKey string) error
	ReporterPutAppEnvironmentValue(apiKey string, key string, value string) error
	ReporterSetUserProfileID(apiKey string, userProfileID string) error
	ReporterSetDataSendingEnabled(apiKey string, enabled bool) error
	ReporterReportECommerce(apiKey string, eventJSON string) error
	ReporterReportRevenue(apiKey string, revenueJSON string) error
	ReporterReportAdRevenue(apiKey string, adRevenueJSON string) error
	ReporterReportUserProfile(apiKey string, userProfileJSON string) error
}

// StartupParamsCallback receives the SDK's answer. paramsJSON is empty when
// the request failed; reason is empty when it succeeded.
type StartupParamsCallback interface {
	OnStartupParams(paramsJSON string, reason string)
}

type DeferredDeeplinkCallback interface {
	OnDeeplinkLoaded(deeplink string)
	OnDeeplinkFailure(reason string, referrer string)
}

// DeferredDeeplinkParametersCallback receives parameters as a JSON object
// of strings.
type DeferredDeeplinkParametersCallback interface {
	OnParametersLoaded(paramsJSON string)
	OnParametersFailure(reason string, referrer string)
}
