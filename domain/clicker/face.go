package clicker

import (
	"image"

	"github.com/blum-tools/clicker-go/capture"
)

// Face detector thresholds, expressed on the OpenCV HSV scale where
// saturation and value both live in 0..255. Hue is unconstrained: the face
// is near-white/near-gray, so only low saturation and high value matter.
const (
	faceMaxSaturation = 55
	faceMinValue      = 200
	faceMinArea       = 500
	faceMaxArea       = 3000
)

// DetectFace finds a near-white textured shape of plausible face size.
// It masks low-saturation high-value pixels, groups them into 4-connected
// components and keeps components whose pixel area lies strictly between
// faceMinArea and faceMaxArea - small enough to exclude white backgrounds,
// large enough to exclude noise. The reported point is the center of the
// first surviving component's bounding box; components are discovered in
// row-major order of their first pixel, which keeps the result
// deterministic for a fixed image.
func DetectFace(snap capture.Snapshot, rect image.Rectangle) (int, int, bool) {
	w, h := snap.Size()
	if w == 0 || h == 0 {
		return 0, 0, false
	}

	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := snap.RGBAt(x, y)
			s, v := saturationValue(r, g, b)
			mask[y*w+x] = s <= faceMaxSaturation && v >= faceMinValue
		}
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, faceMaxArea)
	for start := 0; start < w*h; start++ {
		if !mask[start] || visited[start] {
			continue
		}
		// Flood fill one component, tracking area and bounding box.
		area := 0
		minX, minY := w, h
		maxX, maxY := 0, 0
		queue = queue[:0]
		queue = append(queue, start)
		visited[start] = true
		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			x, y := idx%w, idx/w
			area++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
			if x > 0 && mask[idx-1] && !visited[idx-1] {
				visited[idx-1] = true
				queue = append(queue, idx-1)
			}
			if x < w-1 && mask[idx+1] && !visited[idx+1] {
				visited[idx+1] = true
				queue = append(queue, idx+1)
			}
			if y > 0 && mask[idx-w] && !visited[idx-w] {
				visited[idx-w] = true
				queue = append(queue, idx-w)
			}
			if y < h-1 && mask[idx+w] && !visited[idx+w] {
				visited[idx+w] = true
				queue = append(queue, idx+w)
			}
		}
		if area > faceMinArea && area < faceMaxArea {
			boxW := maxX - minX + 1
			boxH := maxY - minY + 1
			return rect.Min.X + minX + boxW/2, rect.Min.Y + minY + boxH/2, true
		}
	}
	return 0, 0, false
}

// saturationValue converts an RGB pixel to the S and V channels of the HSV
// color space on the 0..255 scale. Hue is not needed by any detector.
func saturationValue(r, g, b uint8) (s, v uint8) {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}
	v = maxC
	if maxC == 0 {
		return 0, 0
	}
	s = uint8(int(maxC-minC) * 255 / int(maxC))
	return s, v
}
