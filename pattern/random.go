// seehuhn.de/go/badge - a procedural progress badge renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pattern

import (
	"math/rand/v2"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source supplies uniformly distributed samples in [0, 1).
// *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	Float64() float64
}

// NewSource returns a reproducible Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DefaultSource returns a Source backed by the unseeded global generator.
// Every mesh built from it gets a different random texture.
func DefaultSource() Source {
	return globalSource{}
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// Sequence is a Source which replays a fixed list of samples, cycling
// when the list is exhausted.  It is mainly useful in tests.
type Sequence struct {
	Values []float64
	pos    int
}

// Float64 implements the [Source] interface.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// NoiseSource is a Source which samples smooth OpenSimplex noise along a
// line.  Consecutive samples are correlated, so neighbouring cells of a
// mesh tend to share their visibility and the texture forms clusters
// instead of uniform speckle.
//
// Raw noise values bunch up around 0.5.  Every sample is mapped through
// the empirical distribution function of the noise, so that the samples
// are still uniformly distributed on [0, 1).
type NoiseSource struct {
	noise opensimplex.Noise
	t     float64
	step  float64

	quantiles []float64 // sorted reference samples of the noise
}

// Layout of the reference samples used to estimate the distribution of the
// noise values.  The grid lies well away from the sampling line y = 0.
const (
	noiseGrid    = 64
	noiseSpacing = 0.77
	noiseOffset  = 1000
)

// NewNoiseSource returns a NoiseSource for the given seed.  The step
// controls how far apart consecutive samples are taken; smaller steps
// give larger clusters.
func NewNoiseSource(seed int64, step float64) *NoiseSource {
	noise := opensimplex.NewNormalized(seed)
	q := make([]float64, 0, noiseGrid*noiseGrid)
	for i := range noiseGrid {
		for j := range noiseGrid {
			x := float64(i) * noiseSpacing
			y := noiseOffset + float64(j)*noiseSpacing
			q = append(q, noise.Eval2(x, y))
		}
	}
	slices.Sort(q)

	return &NoiseSource{
		noise:     noise,
		step:      step,
		quantiles: q,
	}
}

// Float64 implements the [Source] interface.
func (s *NoiseSource) Float64() float64 {
	v := s.noise.Eval2(s.t, 0)
	s.t += s.step
	rank, _ := slices.BinarySearch(s.quantiles, v)
	return float64(rank) / float64(len(s.quantiles)+1)
}
