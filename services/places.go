package services

// PlaceSampler produces the pool of points the planner draws activities from.
type PlaceSampler interface {
	Sample(origin Coordinates, rng Random) []Place
}

// DefaultPoolSize is how many places OffsetSampler returns.
const DefaultPoolSize = 4

type placeOffset struct {
	name string
	dLat float64
	dLon float64
}

var candidateOffsets = []placeOffset{
	{"Central Park", 0.01, 0.01},
	{"History Museum", -0.01, 0.01},
	{"Art Gallery", 0.01, -0.01},
	{"River Walk", -0.01, -0.01},
	{"City Zoo", 0.02, 0.02},
	{"Botanical Garden", -0.02, -0.02},
}

// OffsetSampler stands in for a real points-of-interest lookup: it places six
// fixed candidates around the origin and keeps a random subset.
type OffsetSampler struct {
	PoolSize int
}

// NewOffsetSampler returns a sampler keeping DefaultPoolSize places.
func NewOffsetSampler() *OffsetSampler {
	return &OffsetSampler{PoolSize: DefaultPoolSize}
}

// Candidates returns all six candidates in table order.
func (s *OffsetSampler) Candidates(origin Coordinates) []Place {
	places := make([]Place, 0, len(candidateOffsets))
	for _, o := range candidateOffsets {
		places = append(places, Place{
			Name: o.name,
			Lat:  origin.Lat + o.dLat,
			Lon:  origin.Lon + o.dLon,
		})
	}
	return places
}

// Sample draws min(PoolSize, 6) candidates without replacement.
func (s *OffsetSampler) Sample(origin Coordinates, rng Random) []Place {
	size := s.PoolSize
	if size <= 0 {
		size = DefaultPoolSize
	}
	return samplePlaces(s.Candidates(origin), size, rng)
}

// samplePlaces returns up to k distinct elements of pool in random order.
func samplePlaces(pool []Place, k int, rng Random) []Place {
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]Place, 0, k)
	for _, idx := range rng.Perm(len(pool))[:k] {
		out = append(out, pool[idx])
	}
	return out
}
