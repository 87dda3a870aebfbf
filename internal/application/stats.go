package application

import "expvar"

// Stats holds process-wide counters served at /api/debug/vars under "car_rental".
var Stats = expvar.NewMap("car_rental")

const (
	statSignups          = "signups"
	statLogins           = "logins"
	statLoginFailures    = "login_failures"
	statBookingsCreated  = "bookings_created"
	statBookingsCanceled = "bookings_cancelled"
	statCarsCacheHits    = "cars_cache_hits"
	statCarsCacheMisses  = "cars_cache_misses"
)

func statCount(name string) int64 {
	if v, ok := Stats.Get(name).(*expvar.Int); ok {
		return v.Value()
	}
	return 0
}
