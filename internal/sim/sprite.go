package sim

import "image"

// SpriteSheet is a horizontal strip of equally sized animation cells.
type SpriteSheet struct {
	Image  image.Image
	FrameW int
	FrameH int
	Frames int
}

// NewSpriteSheet wraps img as a strip of frames cells of frameW×frameH.
func NewSpriteSheet(img image.Image, frameW, frameH, frames int) *SpriteSheet {
	return &SpriteSheet{Image: img, FrameW: frameW, FrameH: frameH, Frames: frames}
}

// FrameRect returns the source rectangle of frame, or an empty rectangle
// when frame is outside the sheet.
func (s *SpriteSheet) FrameRect(frame int) image.Rectangle {
	if s == nil || frame < 0 || frame >= s.Frames {
		return image.Rectangle{}
	}
	b := s.Image.Bounds()
	r := image.Rect(frame*s.FrameW, 0, (frame+1)*s.FrameW, s.FrameH).Add(b.Min)
	return r.Intersect(b)
}
