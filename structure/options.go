package structure

import "github.com/arloliu/mmtf/internal/diag"

// EncodeOptions configures Encode's codec parameters and diagnostics.
// Encode starts from defaultEncodeOptions and applies each EncodeOption in
// turn, the functional-options style used throughout the package's
// ambient stack.
type EncodeOptions struct {
	coordDivisor     int32
	occupancyDivisor int32
	bFactorDivisor   int32
	chainNameWidth   int
	logger           *diag.Logger
}

// EncodeOption mutates an EncodeOptions.
type EncodeOption func(*EncodeOptions)

func defaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		coordDivisor:     DefaultCoordDivisor,
		occupancyDivisor: DefaultOccupancyDivisor,
		bFactorDivisor:   DefaultBFactorDivisor,
		chainNameWidth:   DefaultChainNameWidth,
		logger:           diag.Noop(),
	}
}

// WithCoordDivisor overrides the quantization divisor used for x/y/z
// coordinates. Callers may downshift to a coarser divisor for lossier,
// smaller output.
func WithCoordDivisor(d int32) EncodeOption {
	return func(o *EncodeOptions) { o.coordDivisor = d }
}

// WithOccupancyBFactorDivisor overrides the quantization divisor shared by
// occupancyList and bFactorList.
func WithOccupancyBFactorDivisor(d int32) EncodeOption {
	return func(o *EncodeOptions) {
		o.occupancyDivisor = d
		o.bFactorDivisor = d
	}
}

// WithChainNameMaxLength overrides the fixed cell width used for
// chainIdList and chainNameList. The wire format default is 4.
func WithChainNameMaxLength(n int) EncodeOption {
	return func(o *EncodeOptions) { o.chainNameWidth = n }
}

// WithLogger sets the logger attached to Encode's map view. Encode itself
// emits none of the decode-side diagnostics (unknown keys, coerced types);
// Decode takes its logger as a parameter instead.
func WithLogger(logger *diag.Logger) EncodeOption {
	return func(o *EncodeOptions) { o.logger = logger }
}

// ChainNameMaxLength reports the chainIdList/chainNameList width that opts
// would resolve to if passed to Encode, without running Encode itself.
// validate.Check takes the result via validate.WithChainNameMaxLength so
// a caller's WithChainNameMaxLength choice is honored by both the
// pre-encode hard gate and Encode itself.
func ChainNameMaxLength(opts ...EncodeOption) int {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o.chainNameWidth
}
