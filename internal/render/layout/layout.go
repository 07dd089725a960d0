package layout

import (
	"image"
	"math"
)

// CenterX returns the left offset that centres text of the given
// advance width on a canvas canvasWidth pixels wide. The result is
// floored, so odd remainders lean left.
func CenterX(canvasWidth int, textWidth float64) int {
	return int(math.Floor((float64(canvasWidth) - textWidth) / 2))
}

// FrameRect returns the outline box whose inclusive corners are
// (margin, margin) and (width-margin, height-margin).
func FrameRect(width, height, margin int) image.Rectangle {
	return Normalize(image.Rect(margin, margin, width-margin+1, height-margin+1))
}

// Inset shrinks rect by paddingPx on all sides.
// The result collapses to an empty rectangle at rect's centre instead
// of turning inside out.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx >= rect.Dx() || 2*paddingPx >= rect.Dy() {
		mid := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
		return image.Rectangle{Min: mid, Max: mid}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns the pixel at the centre of a width×height canvas.
func Center(width, height int) image.Point {
	return image.Pt(width/2, height/2)
}
