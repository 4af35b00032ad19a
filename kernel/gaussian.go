package kernel

import (
	"fmt"
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/cache"
)

// DefaultCacheLimit bounds the process-wide Gaussian cache.
const DefaultCacheLimit = 64

// GaussianCache memoizes Gaussian kernels by radius.
//
// Once published a kernel is immutable, and the same instance is returned
// for every request of its radius while it stays cached. GaussianCache is
// safe for concurrent use.
type GaussianCache struct {
	c *cache.Cache[int, *Kernel]
}

// NewGaussianCache creates a cache holding at most limit kernels.
// A limit of 0 means unbounded.
func NewGaussianCache(limit int) *GaussianCache {
	return &GaussianCache{c: cache.New[int, *Kernel](limit)}
}

var defaultGaussianCache = NewGaussianCache(DefaultCacheLimit)

// DefaultGaussianCache returns the process-wide cache used by Gaussian.
func DefaultGaussianCache() *GaussianCache {
	return defaultGaussianCache
}

// Gaussian returns the cached Gaussian kernel for radius from the default cache.
func Gaussian(radius int) (*Kernel, error) {
	return defaultGaussianCache.Kernel(radius)
}

// Kernel returns the Gaussian kernel for radius, building it on first use.
func (g *GaussianCache) Kernel(radius int) (*Kernel, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrRadius, radius)
	}
	return g.c.GetOrCreate(radius, func() (*Kernel, error) {
		ggfx.Logger().Debug("kernel: building gaussian", "radius", radius)
		return makeGaussian(radius), nil
	})
}

// Cached returns the kernel for radius if it is resident, without building
// it.
func (g *GaussianCache) Cached(radius int) (*Kernel, bool) {
	return g.c.Get(radius)
}

// Evict drops the kernel for radius and reports whether it was cached.
// Filters already holding it keep using it.
func (g *GaussianCache) Evict(radius int) bool {
	return g.c.Delete(radius)
}

// Len returns the number of cached kernels.
func (g *GaussianCache) Len() int {
	return g.c.Len()
}

// Reset drops every cached kernel. Kernels already handed out stay valid.
func (g *GaussianCache) Reset() {
	g.c.Clear()
}

// CacheStats holds the counters reported by GaussianCache.Stats.
type CacheStats = cache.Stats

// Stats returns hit and miss counters of the cache.
func (g *GaussianCache) Stats() CacheStats {
	return g.c.Stats()
}

// makeGaussian builds a (2r)x(2r) kernel sampled at u, v in [-r, r) with
// sigma = r/3, normalized to sum to 1.
func makeGaussian(radius int) *Kernel {
	size := 2 * radius
	sigma := float64(radius) / 3
	twoSigmaSq := 2 * sigma * sigma
	norm := math.Sqrt(math.Pi * twoSigmaSq)

	m := make([]float64, size*size)
	var sum float64
	for j := 0; j < size; j++ {
		v := float64(j - radius)
		for i := 0; i < size; i++ {
			u := float64(i - radius)
			w := math.Exp(-(u*u+v*v)/twoSigmaSq) / norm
			m[j*size+i] = w
			sum += w
		}
	}

	if sum <= 0 {
		sum = 1
	}
	for i := range m {
		m[i] /= sum
	}
	return &Kernel{
		width:   size,
		height:  size,
		matrix:  m,
		divisor: 1,
	}
}
