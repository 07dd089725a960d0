//go:build !linux || !cgo

package preview

import "image"

func ToFramebuffer(device string, img *image.RGBA) error {
	return ErrUnsupported
}
