// Package cache provides a generic memo table with LRU eviction.
//
// It backs the Gaussian kernel cache: kernels are expensive to build and
// immutable once built, so every filter asking for the same radius shares
// one instance.
//
//	c := cache.New[int, *kernel.Kernel](64)
//	k, err := c.GetOrCreate(3, func() (*kernel.Kernel, error) {
//		return build(3)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
