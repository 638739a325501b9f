package mvt

// rings.go - polygon ring classification by winding order

// signedArea returns twice the signed shoelace area of a ring in tile
// coordinates. y grows downward in the tile frame, so the sign is
// inverted relative to the usual geographic convention; classification
// only compares signs, never their orientation meaning.
func signedArea(ring []Point) int64 {
	var sum int64
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		p1, p2 := ring[i], ring[j]
		sum += (int64(p2.X) - int64(p1.X)) * (int64(p1.Y) + int64(p2.Y))
	}
	return sum
}

// ClassifyRings groups the decoded rings of a polygon feature into
// polygons, each one exterior ring followed by its holes.
//
// The winding of the first ring with non-zero area fixes the exterior
// direction for the whole feature. A later ring with the same winding
// starts a new polygon; a ring with the opposite winding is appended
// as a hole of the open polygon. Zero-area rings are dropped. A single
// ring bypasses classification and is returned as one polygon.
//
// A hole with no open polygon to attach to is rejected with
// ErrRingOrder rather than guessed at.
func ClassifyRings(rings [][]Point) ([][][]Point, error) {
	if len(rings) <= 1 {
		return [][][]Point{rings}, nil
	}

	var polygons [][][]Point
	var polygon [][]Point
	ccw := false
	ccwSet := false

	for i, ring := range rings {
		area := signedArea(ring)
		if area == 0 {
			continue
		}
		if !ccwSet {
			ccw = area < 0
			ccwSet = true
		}
		if ccw == (area < 0) {
			if polygon != nil {
				polygons = append(polygons, polygon)
			}
			polygon = [][]Point{ring}
		} else {
			if polygon == nil {
				return nil, &ErrRingOrder{Ring: i}
			}
			polygon = append(polygon, ring)
		}
	}
	if polygon != nil {
		polygons = append(polygons, polygon)
	}

	return polygons, nil
}
