package metrica

import (
	"log/slog"

	"github.com/metrica-go/metrica/internal/payload"
)

// RequestStartupParams asks the SDK for identifiers (typically the
// DeviceIDHashKey, DeviceIDKey and UUIDKey constants) and calls cb once
// with the answer.
func (m *AppMetrica) RequestStartupParams(cb StartupParamsCallback, identifiers []string) error {
	if identifiers == nil {
		identifiers = []string{}
	}
	data, err := payload.Encode("startup identifiers", identifiers)
	if err != nil {
		return err
	}
	return m.native.RequestStartupParams(data, &startupParamsCallback{
		fn:     cb,
		store:  m.store,
		logger: m.logger,
	})
}

func (m *AppMetrica) RequestDeferredDeeplink(l DeferredDeeplinkListener) error {
	return m.native.RequestDeferredDeeplink(deeplinkCallback{l: l})
}

func (m *AppMetrica) RequestDeferredDeeplinkParameters(l DeferredDeeplinkParametersListener) error {
	return m.native.RequestDeferredDeeplinkParameters(&deeplinkParametersCallback{
		l:      l,
		logger: m.logger,
	})
}

type startupParamsCallback struct {
	fn     StartupParamsCallback
	store  IdentifierStore
	logger *slog.Logger
}

func (c *startupParamsCallback) OnStartupParams(paramsJSON string, reason string) {
	if c.fn == nil {
		return
	}
	if paramsJSON == "" {
		if reason == "" {
			reason = string(StartupParamsReasonUnknown)
		}
		c.fn(nil, StartupParamsReason(reason))
		return
	}

	var p StartupParams
	if err := payload.Decode("startup params", paramsJSON, &p); err != nil {
		c.logger.Warn("malformed startup params", "err", err)
		c.fn(nil, StartupParamsReasonInvalidResponse)
		return
	}

	if c.store != nil {
		if err := c.store.SaveStartupParams(p); err != nil {
			c.logger.Warn("failed to persist startup params", "err", err)
		}
	}
	c.fn(&p, StartupParamsReason(reason))
}

type deeplinkCallback struct {
	l DeferredDeeplinkListener
}

func (c deeplinkCallback) OnDeeplinkLoaded(deeplink string) {
	if c.l.OnSuccess != nil {
		c.l.OnSuccess(deeplink)
	}
}

func (c deeplinkCallback) OnDeeplinkFailure(reason string, referrer string) {
	if c.l.OnFailure != nil {
		c.l.OnFailure(DeferredDeeplinkError(reason), referrer)
	}
}

type deeplinkParametersCallback struct {
	l      DeferredDeeplinkParametersListener
	logger *slog.Logger
}

func (c *deeplinkParametersCallback) OnParametersLoaded(paramsJSON string) {
	params := map[string]string{}
	if err := payload.Decode("deeplink parameters", paramsJSON, &params); err != nil {
		c.logger.Warn("malformed deeplink parameters", "err", err)
		c.OnParametersFailure(string(DeeplinkParseError), "")
		return
	}
	if c.l.OnSuccess != nil {
		c.l.OnSuccess(params)
	}
}

func (c *deeplinkParametersCallback) OnParametersFailure(reason string, referrer string) {
	if c.l.OnFailure != nil {
		c.l.OnFailure(DeferredDeeplinkError(reason), referrer)
	}
}
