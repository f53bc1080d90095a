package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestGaussianMeanStd(t *testing.T) {
	g := NewGaussian(0.996, 1.1)
	assert.Equal(t, 0.996, g.Mean())
	assert.Equal(t, 1.1, g.Std())
}

func TestGaussianCDF(t *testing.T) {
	g := NewGaussian(0.996, 1.1)
	assert.InDelta(t, 0.57356373, g.CDF(1.2), 1e-5)

	std := NewStandardGaussian()
	assert.InDelta(t, 0.5, std.CDF(0), 1e-12)
	assert.InDelta(t, 0.84134474, std.CDF(1), 1e-8)
}

func TestGaussianSampleMoments(t *testing.T) {
	const n = 1_000_000

	mu, sigma := 0.3, 0.7
	g := NewGaussianSeed(mu, sigma, 42)
	samples := g.Sample(n)

	// 5 sigma/sqrt(n) band on the sample mean, a similar band on the
	// sample standard deviation
	band := 5 * sigma / math.Sqrt(n)
	assert.InDelta(t, mu, stat.Mean(samples, nil), band)
	assert.InDelta(t, sigma, stat.StdDev(samples, nil), band)
}

func TestGaussianSampleReproducible(t *testing.T) {
	a := NewGaussianSeed(0, 1, 7).Sample(16)
	b := NewGaussianSeed(0, 1, 7).Sample(16)
	assert.Equal(t, a, b)
}
