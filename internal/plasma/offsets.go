package plasma

import "math"

// Offsets are the scroll positions of the two height maps for one frame.
// Each value lies in [0, mapSize/2].
type Offsets struct {
	DX1, DY1 int
	DX2, DY2 int
}

// ComputeOffsets maps a timestamp to the four scroll offsets. Each offset is
// driven by its own cosine oscillator so the two maps drift apart.
func ComputeOffsets(timeMillis int64, mapSize int) Offsets {
	t := float64(timeMillis)
	return Offsets{
		DX1: oscillate(math.Cos(t*0.0002+0.4+math.Pi), mapSize),
		DY1: oscillate(math.Cos(t*0.0003-0.1), mapSize),
		DX2: oscillate(math.Cos(t*-0.0002+1.2), mapSize),
		DY2: oscillate(math.Cos(t*-0.0003-0.8+math.Pi), mapSize),
	}
}

func oscillate(c float64, mapSize int) int {
	return int(math.Floor((((c + 1) / 2) * float64(mapSize)) / 2))
}

// Max returns the largest of the four offsets.
func (o Offsets) Max() int {
	return max(o.DX1, o.DY1, o.DX2, o.DY2)
}
