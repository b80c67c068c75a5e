package pool

import "sync"

// Slice pools for efficient reuse of typed scratch slices during column
// codec decode. MMTF columns are int32/float32/int8/string, not the
// int64/float64 pairs a time-series library would pool.
var (
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	float32SlicePool = sync.Pool{
		New: func() any { return &[]float32{} },
	}
	int8SlicePool = sync.Pool{
		New: func() any { return &[]int8{} },
	}
	stringSlicePool = sync.Pool{
		New: func() any { return &[]string{} },
	}
)

// GetInt32Slice retrieves and resizes an int32 slice from the pool.
//
// The returned slice has length equal to size. The caller must call the
// returned cleanup function (typically via defer) to return the slice.
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}

// GetFloat32Slice retrieves and resizes a float32 slice from the pool.
func GetFloat32Slice(size int) ([]float32, func()) {
	ptr, _ := float32SlicePool.Get().(*[]float32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float32SlicePool.Put(ptr) }
}

// GetInt8Slice retrieves and resizes an int8 slice from the pool.
func GetInt8Slice(size int) ([]int8, func()) {
	ptr, _ := int8SlicePool.Get().(*[]int8)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int8, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int8SlicePool.Put(ptr) }
}

// GetStringSlice retrieves and resizes a string slice from the pool.
func GetStringSlice(size int) ([]string, func()) {
	ptr, _ := stringSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]string, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { stringSlicePool.Put(ptr) }
}
