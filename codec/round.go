package codec

import "math"

// roundToInt32 rounds a quantized float to the nearest int32, matching the
// encoder-side "multiply-and-round" contract.
func roundToInt32(f float32) int32 {
	return int32(math.Round(float64(f)))
}

// roundToInt16 rounds a quantized float to the nearest int16.
func roundToInt16(f float32) int16 {
	return int16(math.Round(float64(f)))
}
