package internaldefs

import (
	sessionauth "github.com/inticky/sessionauth"
)

// CounterDef defines a public type used by sessionauth exporter APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   sessionauth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session core.
var CounterDefs = []CounterDef{
	{ID: sessionauth.MetricLoginSuccess, Name: "sessionauth_login_success_total", Help: "Successful login attempts."},
	{ID: sessionauth.MetricLoginFailure, Name: "sessionauth_login_failure_total", Help: "Failed login attempts."},
	{ID: sessionauth.MetricLogout, Name: "sessionauth_logout_total", Help: "User-initiated logout operations."},
	{ID: sessionauth.MetricForcedLogout, Name: "sessionauth_forced_logout_total", Help: "Sessions terminated by failed maintenance."},
	{ID: sessionauth.MetricValidateSuccess, Name: "sessionauth_validate_success_total", Help: "Successful token validations."},
	{ID: sessionauth.MetricValidateFailure, Name: "sessionauth_validate_failure_total", Help: "Failed token validations."},
	{ID: sessionauth.MetricRefreshSuccess, Name: "sessionauth_refresh_success_total", Help: "Successful token refreshes."},
	{ID: sessionauth.MetricRefreshFailure, Name: "sessionauth_refresh_failure_total", Help: "Failed token refreshes."},
	{ID: sessionauth.MetricRehydrateSuccess, Name: "sessionauth_rehydrate_success_total", Help: "Sessions rehydrated from persisted state."},
	{ID: sessionauth.MetricRehydrateFailure, Name: "sessionauth_rehydrate_failure_total", Help: "Rehydration attempts that found no usable session."},
	{ID: sessionauth.MetricStaleResultDiscarded, Name: "sessionauth_stale_result_discarded_total", Help: "Async action results discarded as superseded."},
}
