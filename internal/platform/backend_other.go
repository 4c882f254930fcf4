//go:build !linux

package platform

// NewNative returns the native backend for this platform.
func NewNative(opts ...Option) (Backend, error) {
	_ = buildOptions(opts)
	return nil, ErrUnsupported
}
