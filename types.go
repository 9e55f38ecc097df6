package metrica

import (
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/models"
)

// Re-export types so hosts never import internal packages.
type (
	NativeBridge   = bridge.NativeBridge
	ReporterBridge = bridge.ReporterBridge
	LinkError      = bridge.LinkError
	Linker         = linking.Linker

	Config         = models.Config
	ReporterConfig = models.ReporterConfig
	PreloadInfo    = models.PreloadInfo
	Location       = models.Location

	StartupParams         = models.StartupParams
	StartupParamsReason   = models.StartupParamsReason
	StartupParamsCallback = models.StartupParamsCallback

	Revenue            = models.Revenue
	Receipt            = models.Receipt
	AdRevenue          = models.AdRevenue
	AdType             = models.AdType
	Amount             = models.Amount
	CanonicalAdRevenue = models.CanonicalAdRevenue

	ECommerceEvent    = models.ECommerceEvent
	UserProfile       = models.UserProfile
	UserProfileUpdate = models.UserProfileUpdate

	ExternalAttribution       = models.ExternalAttribution
	ExternalAttributionSource = models.ExternalAttributionSource

	DeferredDeeplinkError              = models.DeferredDeeplinkError
	DeferredDeeplinkListener           = models.DeferredDeeplinkListener
	DeferredDeeplinkParametersListener = models.DeferredDeeplinkParametersListener
)

const (
	DeviceIDHashKey = models.DeviceIDHashKey
	DeviceIDKey     = models.DeviceIDKey
	UUIDKey         = models.UUIDKey

	StartupParamsReasonUnknown         = models.StartupParamsReasonUnknown
	StartupParamsReasonNetwork         = models.StartupParamsReasonNetwork
	StartupParamsReasonInvalidResponse = models.StartupParamsReasonInvalidResponse

	DeeplinkNotAFirstLaunch = models.DeeplinkNotAFirstLaunch
	DeeplinkParseError      = models.DeeplinkParseError
	DeeplinkUnknown         = models.DeeplinkUnknown
	DeeplinkNoReferrer      = models.DeeplinkNoReferrer
)

// ErrNotLinked matches the error returned when no native bridge exists.
var ErrNotLinked = bridge.ErrNotLinked

var (
	AmountFloat  = models.AmountFloat
	AmountString = models.AmountString
	AmountMicros = models.AmountMicros
)
