//go:build linux && cgo

package preview

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// ToFramebuffer opens device (e.g. /dev/fb0) and draws img scaled to fill it.
func ToFramebuffer(device string, img *image.RGBA) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open %s: %w", device, err)
	}
	defer dev.Close()
	Blit(dev, img)
	return nil
}
