package bridge

import (
	"math"
	"sync"
	"time"

	"github.com/tidwall/btree"
)

const defaultHistory = 1024

var (
	_ NativeBridge   = (*Recorder)(nil)
	_ ReporterBridge = (*Recorder)(nil)
)

// Call is one recorded bridge invocation.
type Call struct {
	Seq    uint64    `json:"seq"`
	Method string    `json:"method"`
	Args   []any     `json:"args"`
	At     time.Time `json:"at"`
}

// Recorder is a NativeBridge and ReporterBridge that records every call
// instead of talking to an SDK. It backs the developer host and tests.
//
// The exported answer fields must be set before the recorder is shared.
type Recorder struct {
	DeviceID        string
	UUID            string
	LibraryVersion  string
	LibraryAPILevel int

	// StartupParamsJSON answers RequestStartupParams; when empty the
	// callback gets StartupFailure instead.
	StartupParamsJSON string
	StartupFailure    string

	// Deeplink answers RequestDeferredDeeplink; when empty the callback
	// gets DeeplinkFailure.
	Deeplink               string
	DeeplinkParametersJSON string
	DeeplinkFailure        string
	DeeplinkReferrer       string

	// OnCall is invoked after each call is recorded.
	OnCall func(Call)

	// History bounds the retained calls; zero means 1024.
	History int

	mu       sync.Mutex
	seq      uint64
	calls    *btree.BTreeG[Call]
	failures map[string]error
}

func bySeq(a, b Call) bool {
	return a.Seq < b.Seq
}

func NewRecorder() *Recorder {
	return &Recorder{
		calls:    btree.NewBTreeG(bySeq),
		failures: make(map[string]error),
	}
}

// Fail makes method return err from now on. A nil err clears it.
func (r *Recorder) Fail(method string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	if err == nil {
		delete(r.failures, method)
		return
	}
	r.failures[method] = err
}

func (r *Recorder) init() {
	if r.calls == nil {
		r.calls = btree.NewBTreeG(bySeq)
	}
	if r.failures == nil {
		r.failures = make(map[string]error)
	}
}

func (r *Recorder) record(method string, args ...any) error {
	r.mu.Lock()
	r.init()
	r.seq++
	c := Call{Seq: r.seq, Method: method, Args: args, At: time.Now()}
	r.calls.Set(c)

	limit := r.History
	if limit <= 0 {
		limit = defaultHistory
	}
	for r.calls.Len() > limit {
		r.calls.PopMin()
	}
	err := r.failures[method]
	hook := r.OnCall
	r.mu.Unlock()

	if hook != nil {
		hook(c)
	}
	return err
}

// Since returns the retained calls with a sequence number above seq.
func (r *Recorder) Since(seq uint64) []Call {
	if seq == math.MaxUint64 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	var out []Call
	r.calls.Ascend(Call{Seq: seq + 1}, func(c Call) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Calls returns the retained calls of method, oldest first.
func (r *Recorder) Calls(method string) []Call {
	var out []Call
	for _, c := range r.Since(0) {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Count(method string) int {
	return len(r.Calls(method))
}

func (r *Recorder) Activate(configJSON string) error {
	return r.record("activate", configJSON)
}

func (r *Recorder) PauseSession() error {
	return r.record("pauseSession")
}

func (r *Recorder) ResumeSession() error {
	return r.record("resumeSession")
}

func (r *Recorder) ReportAppOpen(deeplink string) error {
	return r.record("reportAppOpen", deeplink)
}

func (r *Recorder) ReportError(identifier string, message string, reasonJSON string) error {
	return r.record("reportError", identifier, message, reasonJSON)
}

func (r *Recorder) ReportUnhandledException(errorJSON string) error {
	return r.record("reportUnhandledException", errorJSON)
}

func (r *Recorder) ReportErrorWithoutIdentifier(message string, errorJSON string) error {
	return r.record("reportErrorWithoutIdentifier", message, errorJSON)
}

func (r *Recorder) ReportEvent(name string, attributesJSON string) error {
	return r.record("reportEvent", name, attributesJSON)
}

func (r *Recorder) RequestStartupParams(identifiersJSON string, cb StartupParamsCallback) error {
	if err := r.record("requestStartupParams", identifiersJSON); err != nil {
		return err
	}
	if r.StartupParamsJSON != "" {
		cb.OnStartupParams(r.StartupParamsJSON, "")
		return nil
	}
	reason := r.StartupFailure
	if reason == "" {
		reason = "UNKNOWN"
	}
	cb.OnStartupParams("", reason)
	return nil
}

func (r *Recorder) SendEventsBuffer() error {
	return r.record("sendEventsBuffer")
}

func (r *Recorder) SetLocation(locationJSON string) error {
	return r.record("setLocation", locationJSON)
}

func (r *Recorder) SetLocationTracking(enabled bool) error {
	return r.record("setLocationTracking", enabled)
}

func (r *Recorder) SetDataSendingEnabled(enabled bool) error {
	return r.record("setDataSendingEnabled", enabled)
}

func (r *Recorder) SetUserProfileID(userProfileID string) error {
	return r.record("setUserProfileID", userProfileID)
}

func (r *Recorder) ReportECommerce(eventJSON string) error {
	return r.record("reportECommerce", eventJSON)
}

func (r *Recorder) ReportRevenue(revenueJSON string) error {
	return r.record("reportRevenue", revenueJSON)
}

func (r *Recorder) ReportAdRevenue(adRevenueJSON string) error {
	return r.record("reportAdRevenue", adRevenueJSON)
}

func (r *Recorder) ReportUserProfile(userProfileJSON string) error {
	return r.record("reportUserProfile", userProfileJSON)
}

func (r *Recorder) ReportExternalAttribution(attributionJSON string) error {
	return r.record("reportExternalAttribution", attributionJSON)
}

func (r *Recorder) PutErrorEnvironmentValue(key string, value string) error {
	return r.record("putErrorEnvironmentValue", key, value)
}

func (r *Recorder) PutAppEnvironmentValue(key string, value string) error {
	return r.record("putAppEnvironmentValue", key, value)
}

func (r *Recorder) ClearAppEnvironment() error {
	return r.record("clearAppEnvironment")
}

func (r *Recorder) TouchReporter(apiKey string) error {
	return r.record("touchReporter", apiKey)
}

func (r *Recorder) ActivateReporter(configJSON string) error {
	return r.record("activateReporter", configJSON)
}

func (r *Recorder) GetDeviceID() (string, error) {
	return r.DeviceID, r.record("getDeviceId")
}

func (r *Recorder) GetUUID() (string, error) {
	return r.UUID, r.record("getUuid")
}

func (r *Recorder) RequestDeferredDeeplink(cb DeferredDeeplinkCallback) error {
	if err := r.record("requestDeferredDeeplink"); err != nil {
		return err
	}
	if r.Deeplink != "" {
		cb.OnDeeplinkLoaded(r.Deeplink)
		return nil
	}
	cb.OnDeeplinkFailure(r.deeplinkFailure(), r.DeeplinkReferrer)
	return nil
}

func (r *Recorder) RequestDeferredDeeplinkParameters(cb DeferredDeeplinkParametersCallback) error {
	if err := r.record("requestDeferredDeeplinkParameters"); err != nil {
		return err
	}
	if r.DeeplinkParametersJSON != "" {
		cb.OnParametersLoaded(r.DeeplinkParametersJSON)
		return nil
	}
	cb.OnParametersFailure(r.deeplinkFailure(), r.DeeplinkReferrer)
	return nil
}

func (r *Recorder) deeplinkFailure() string {
	if r.DeeplinkFailure == "" {
		return "UNKNOWN"
	}
	return r.DeeplinkFailure
}

func (r *Recorder) GetLibraryAPILevel() (int, error) {
	return r.LibraryAPILevel, r.record("getLibraryApiLevel")
}

func (r *Recorder) GetLibraryVersion() (string, error) {
	return r.LibraryVersion, r.record("getLibraryVersion")
}

func (r *Recorder) ReporterReportEvent(apiKey string, name string, attributesJSON string) error {
	return r.record("reporter.reportEvent", apiKey, name, attributesJSON)
}

func (r *Recorder) ReporterReportError(apiKey string, identifier string, message string, reasonJSON string) error {
	return r.record("reporter.reportError", apiKey, identifier, message, reasonJSON)
}

func (r *Recorder) ReporterReportErrorWithoutIdentifier(apiKey string, message string, errorJSON string) error {
	return r.record("reporter.reportErrorWithoutIdentifier", apiKey, message, errorJSON)
}

func (r *Recorder) ReporterReportUnhandledException(apiKey string, errorJSON string) error {
	return r.record("reporter.reportUnhandledException", apiKey, errorJSON)
}

func (r *Recorder) ReporterPauseSession(apiKey string) error {
	return r.record("reporter.pauseSession", apiKey)
}

func (r *Recorder) ReporterResumeSession(apiKey string) error {
	return r.record("reporter.resumeSession", apiKey)
}

func (r *Recorder) ReporterSendEventsBuffer(apiKey string) error {
	return r.record("reporter.sendEventsBuffer", apiKey)
}

func (r *Recorder) ReporterClearAppEnvironment(apiKey string) error {
	return r.record("reporter.clearAppEnvironment", apiKey)
}

func (r *Recorder) ReporterPutAppEnvironmentValue(apiKey string, key string, value string) error {
	return r.record("reporter.putAppEnvironmentValue", apiKey, key, value)
}

func (r *Recorder) ReporterSetUserProfileID(apiKey string, userProfileID string) error {
	return r.record("reporter.setUserProfileID", apiKey, userProfileID)
}

func (r *Recorder) ReporterSetDataSendingEnabled(apiKey string, enabled bool) error {
	return r.record("reporter.setDataSendingEnabled", apiKey, enabled)
}

func (r *Recorder) ReporterReportECommerce(apiKey string, eventJSON string) error {
	return r.record("reporter.reportECommerce", apiKey, eventJSON)
}

func (r *Recorder) ReporterReportRevenue(apiKey string, revenueJSON string) error {
	return r.record("reporter.reportRevenue", apiKey, revenueJSON)
}

func (r *Recorder) ReporterReportAdRevenue(apiKey string, adRevenueJSON string) error {
	return r.record("reporter.reportAdRevenue", apiKey, adRevenueJSON)
}

func (r *Recorder) ReporterReportUserProfile(apiKey string, userProfileJSON string) error {
	return r.record("reporter.reportUserProfile", apiKey, userProfileJSON)
}
