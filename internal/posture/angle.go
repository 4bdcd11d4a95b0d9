package posture

import "math"

// Angle returns the angle at vertex b formed by the points a and c, in
// degrees within [0, 180]. It is 0 when a or c coincides with b.
func Angle(a, b, c Point) float64 {
	bax, bay := float64(a.X-b.X), float64(a.Y-b.Y)
	bcx, bcy := float64(c.X-b.X), float64(c.Y-b.Y)

	normA := math.Hypot(bax, bay)
	normC := math.Hypot(bcx, bcy)
	if normA == 0 || normC == 0 {
		return 0
	}

	cosine := (bax*bcx + bay*bcy) / (normA * normC)
	// float error can push the cosine slightly outside [-1, 1]
	cosine = math.Max(-1, math.Min(1, cosine))

	return math.Acos(cosine) * 180 / math.Pi
}
