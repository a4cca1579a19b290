package surface

import (
	"github.com/edward-ap/radialslider/internal/radial"
)

// Handle normalizes ev against vp and routes it. It returns the ids of the
// instances whose visual state changed.
func (s *Surface) Handle(ev radial.PointerEvent, vp radial.Viewport) []string {
	p := vp.Normalize(ev)
	var ids []string
	switch ev.Kind {
	case radial.Press:
		ids = s.Press(p)
	case radial.Move:
		ids = s.Move(p)
	case radial.Release:
		ids = s.Release()
	case radial.Click:
		ids = s.Click(p)
	case radial.Scroll:
		ids = s.Scroll(p, ev.ScrollDY)
	}
	s.tracef("%s %s at (%.1f, %.1f) -> %v", ev.Device, ev.Kind, p.X, p.Y, ids)
	return ids
}

// Press starts a drag on the topmost handle under p. The returned ids are
// the instances that entered the dragging state; nothing is redrawn.
func (s *Surface) Press(p radial.Point) []string {
	sl := s.handleAt(p)
	if sl == nil || !sl.Press() {
		return nil
	}
	return []string{sl.ID()}
}

// handleAt returns the topmost instance whose handle is under p.
func (s *Surface) handleAt(p radial.Point) *radial.Slider {
	for i := len(s.sliders) - 1; i >= 0; i-- {
		if s.sliders[i].HitsHandle(p, s.style.HandleSlop) {
			return s.sliders[i]
		}
	}
	return nil
}

// Move delivers pointer motion to every instance; only dragging ones react.
func (s *Surface) Move(p radial.Point) []string {
	var ids []string
	for _, sl := range s.sliders {
		if sl.Move(p) {
			ids = append(ids, sl.ID())
		}
	}
	s.notify(ids)
	return ids
}

// Release ends every drag in progress, wherever the pointer is.
func (s *Surface) Release() []string {
	var ids []string
	for _, sl := range s.sliders {
		if sl.Release() {
			ids = append(ids, sl.ID())
		}
	}
	return ids
}

// Click snaps the instance whose clickable ring is under p. A click on a
// handle lands on the handle, not on the ring below it.
func (s *Surface) Click(p radial.Point) []string {
	if s.handleAt(p) != nil {
		return nil
	}
	sl := s.ringAt(p)
	if sl == nil || !sl.Click(p) {
		return nil
	}
	ids := []string{sl.ID()}
	s.notify(ids)
	return ids
}

// Scroll nudges the instance whose ring is under p by one step per notch.
func (s *Surface) Scroll(p radial.Point, dy float64) []string {
	sl := s.ringAt(p)
	if sl == nil {
		return nil
	}
	n := 0
	switch {
	case dy > 0:
		n = 1
	case dy < 0:
		n = -1
	}
	if !sl.Nudge(n) {
		return nil
	}
	ids := []string{sl.ID()}
	s.notify(ids)
	return ids
}

// SetValue moves the given instance to v.
func (s *Surface) SetValue(id string, v float64) bool {
	sl, ok := s.Slider(id)
	if !ok || !sl.SetValue(v) {
		return false
	}
	s.notify([]string{id})
	return true
}

// ringAt returns the instance whose ring is closest to p, provided p lies
// within half a ring width of it.
func (s *Surface) ringAt(p radial.Point) *radial.Slider {
	var best *radial.Slider
	bestDist := s.style.RingWidth / 2
	for _, sl := range s.sliders {
		if d := sl.RingDistance(p); d <= bestDist {
			best, bestDist = sl, d
		}
	}
	return best
}
