// Package tracker runs the sampling loop: poll the foreground application on
// an interval, accumulate elapsed time into the store, persist periodically.
package tracker

// Sampler reports the identifier of the current foreground application.
// ok is false when the foreground app cannot be determined (no window,
// process gone, permission denied); the loop treats that as "no sample this
// tick" and carries on.
type Sampler interface {
	Poll() (appID string, ok bool)
}

// NewSystemSampler returns the platform sampler: on Windows the executable
// name of the foreground window's owning process, a no-op sampler elsewhere.
func NewSystemSampler() Sampler {
	return newPlatformSampler()
}
