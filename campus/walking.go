package campus

// DefaultWalkingSpeed is the assumed pace in meters per minute (about 4.8 km/h).
const DefaultWalkingSpeed = 80.0

// EstimateWalkingTime converts meters into minutes at speed meters per minute.
// No bounds checking is done: a zero or negative speed yields ±Inf, NaN or a
// negative time, and avoiding that is the caller's job.
func EstimateWalkingTime(meters, speed float64) float64 {
	return meters / speed
}

// RouteOption tunes route-producing queries.
type RouteOption func(*routeConfig)

type routeConfig struct {
	speed float64
}

// WithSpeed overrides DefaultWalkingSpeed (meters per minute).
func WithSpeed(metersPerMinute float64) RouteOption {
	return func(rc *routeConfig) { rc.speed = metersPerMinute }
}

func buildRouteConfig(opts []RouteOption) routeConfig {
	rc := routeConfig{speed: DefaultWalkingSpeed}
	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}
