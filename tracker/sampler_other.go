//go:build !windows

package tracker

// nopSampler is used on platforms without a foreground-window
// implementation; every tick is "no sample".
type nopSampler struct{}

func newPlatformSampler() Sampler {
	return nopSampler{}
}

func (nopSampler) Poll() (string, bool) {
	return "", false
}
