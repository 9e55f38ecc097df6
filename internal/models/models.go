package models

// Keys under which the native SDK persists its identifiers. Hosts that read
// platform storage directly can use them as-is.
const (
	DeviceIDHashKey = "appmetrica_device_id_hash"
	DeviceIDKey     = "appmetrica_device_id"
	UUIDKey         = "appmetrica_uuid"
)

type Config struct {
	APIKey                    string            `json:"apiKey"`
	AppVersion                string            `json:"appVersion,omitempty"`
	CrashReporting            *bool             `json:"crashReporting,omitempty"`
	FirstActivationAsUpdate   *bool             `json:"firstActivationAsUpdate,omitempty"`
	Location                  *Location         `json:"location,omitempty"`
	LocationTracking          *bool             `json:"locationTracking,omitempty"`
	Logs                      *bool             `json:"logs,omitempty"`
	SessionTimeout            *int              `json:"sessionTimeout,omitempty"`
	StatisticsSending         *bool             `json:"statisticsSending,omitempty"`
	PreloadInfo               *PreloadInfo      `json:"preloadInfo,omitempty"`
	MaxReportsInDatabaseCount *int              `json:"maxReportsInDatabaseCount,omitempty"`
	NativeCrashReporting      *bool             `json:"nativeCrashReporting,omitempty"`     // Android only
	ActivationAsSessionStart  *bool             `json:"activationAsSessionStart,omitempty"` // iOS only
	SessionsAutoTracking      *bool             `json:"sessionsAutoTracking,omitempty"`     // iOS only
	AppOpenTrackingEnabled    *bool             `json:"appOpenTrackingEnabled,omitempty"`
	UserProfileID             string            `json:"userProfileID,omitempty"`
	ErrorEnvironment          map[string]string `json:"errorEnvironment,omitempty"`
	AppEnvironment            map[string]string `json:"appEnvironment,omitempty"`
	MaxReportsCount           *int              `json:"maxReportsCount,omitempty"`
	DispatchPeriodSeconds     *int              `json:"dispatchPeriodSeconds,omitempty"`
}

// AppOpenTracking reports whether app-open tracking should be wired. Only
// an explicit false disables it.
func (c Config) AppOpenTracking() bool {
	return c.AppOpenTrackingEnabled == nil || *c.AppOpenTrackingEnabled
}

type ReporterConfig struct {
	APIKey                    string            `json:"apiKey"`
	Logs                      *bool             `json:"logs,omitempty"`
	MaxReportsInDatabaseCount *int              `json:"maxReportsInDatabaseCount,omitempty"`
	SessionTimeout            *int              `json:"sessionTimeout,omitempty"`
	StatisticsSending         *bool             `json:"statisticsSending,omitempty"`
	UserProfileID             string            `json:"userProfileID,omitempty"`
	AppEnvironment            map[string]string `json:"appEnvironment,omitempty"`
	DispatchPeriodSeconds     *int              `json:"dispatchPeriodSeconds,omitempty"`
	MaxReportsCount           *int              `json:"maxReportsCount,omitempty"`
}

type PreloadInfo struct {
	TrackingID     string            `json:"trackingId"`
	AdditionalInfo map[string]string `json:"additionalInfo,omitempty"`
}

type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Course    *float64 `json:"course,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Timestamp *int64   `json:"timestamp,omitempty"`
}

type StartupParamsReason string

const (
	StartupParamsReasonUnknown         StartupParamsReason = "UNKNOWN"
	StartupParamsReasonNetwork         StartupParamsReason = "NETWORK"
	StartupParamsReasonInvalidResponse StartupParamsReason = "INVALID_RESPONSE"
)

type StartupParams struct {
	DeviceIDHash string `json:"deviceIdHash,omitempty"`
	DeviceID     string `json:"deviceId,omitempty"`
	UUID         string `json:"uuid,omitempty"`
}

// Values maps the params onto the persisted identifier keys, skipping
// empty ones.
func (p StartupParams) Values() map[string]string {
	out := make(map[string]string, 3)
	if p.DeviceIDHash != "" {
		out[DeviceIDHashKey] = p.DeviceIDHash
	}
	if p.DeviceID != "" {
		out[DeviceIDKey] = p.DeviceID
	}
	if p.UUID != "" {
		out[UUIDKey] = p.UUID
	}
	return out
}

// StartupParamsCallback receives either params or a failure reason.
type StartupParamsCallback func(params *StartupParams, reason StartupParamsReason)

type ExternalAttributionSource string

const (
	AttributionAppsFlyer ExternalAttributionSource = "APPSFLYER"
	AttributionAdjust    ExternalAttributionSource = "ADJUST"
	AttributionKochava   ExternalAttributionSource = "KOCHAVA"
	AttributionTenjin    ExternalAttributionSource = "TENJIN"
	AttributionAirbridge ExternalAttributionSource = "AIRBRIDGE"
	AttributionSingular  ExternalAttributionSource = "SINGULAR"
)

type ExternalAttribution struct {
	Source ExternalAttributionSource `json:"source"`
	Value  map[string]any            `json:"value"`
}
