package generator

import "github.com/opd-ai/videoderiv/frame"

// DrawRect fills the w x h rectangle with its top-left corner at (x, y).
// Pixels outside the frame are skipped.
func DrawRect(f *frame.Frame, x, y, w, h int, c frame.RGB) {
	fw, fh := f.Dimensions()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fw), min(y+h, fh)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.Set(px, py, c)
		}
	}
}

// DrawDisc fills every pixel within radius r of (cx, cy), using the
// squared distance test dx² + dy² ≤ r². Pixels outside the frame are skipped.
func DrawDisc(f *frame.Frame, cx, cy, r int, c frame.RGB) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				f.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
