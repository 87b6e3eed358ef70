package jsonx

import "github.com/viant/tagly/format/text"

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

func WithMode(mode Mode) Option {
	return optionFn(func(o *Options) { o.Mode = mode })
}

func WithMalformedPolicy(policy MalformedPolicy) Option {
	return optionFn(func(o *Options) {
		o.MalformedPolicy = policy
		o.setMalformedPolicy = true
	})
}

func WithDuplicateKeyPolicy(policy DuplicateKeyPolicy) Option {
	return optionFn(func(o *Options) {
		o.DuplicateKeyPolicy = policy
		o.setDuplicateKeyPolicy = true
	})
}

func WithEscapePolicy(policy EscapePolicy) Option {
	return optionFn(func(o *Options) {
		o.EscapePolicy = policy
		o.setEscapePolicy = true
	})
}

func WithTrailingDataPolicy(policy TrailingDataPolicy) Option {
	return optionFn(func(o *Options) {
		o.TrailingDataPolicy = policy
		o.setTrailingDataPolicy = true
	})
}

// WithMaxDepth limits nesting; zero or negative disables the limit.
func WithMaxDepth(depth int) Option {
	return optionFn(func(o *Options) { o.MaxDepth = depth })
}

// WithDebugPathSink receives the path at which parsing failed.
func WithDebugPathSink(sink func(PathRef)) Option {
	return optionFn(func(o *Options) { o.DebugPathSink = sink })
}

func WithKeyOrder(order KeyOrder) Option {
	return optionFn(func(o *Options) { o.KeyOrder = order })
}

func WithNumberFormat(format NumberFormat) Option {
	return optionFn(func(o *Options) { o.NumberFormat = format })
}

// WithKeyCaseFormat rewrites object keys into caseFormat on output.
func WithKeyCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) { o.KeyCaseFormat = caseFormat })
}

// WithCompact drops the spaces after ',' and ':'.
func WithCompact() Option {
	return optionFn(func(o *Options) { o.Compact = true })
}

// WithIndent emits one member per line, each line starting with prefix followed by indent per nesting level.
func WithIndent(prefix, indent string) Option {
	return optionFn(func(o *Options) {
		o.Prefix = prefix
		o.Indent = indent
	})
}

func defaultOptions() Options {
	return Options{
		Mode:               ModeCompat,
		MalformedPolicy:    Tolerant,
		DuplicateKeyPolicy: LastWins,
		EscapePolicy:       LenientEscapes,
		TrailingDataPolicy: IgnoreTrailing,
		MaxDepth:           DefaultMaxDepth,
		KeyOrder:           SortedKeys,
		NumberFormat:       NumberFormatShortest,
		KeyCaseFormat:      text.CaseFormatUndefined,
		keyTransformer:     identityKeys{},
	}
}

var defaultResolved = resolveOptions(nil)

func optionsFor(opts []Option) *Options {
	if len(opts) == 0 {
		return defaultResolved
	}
	return resolveOptions(opts)
}

func resolveOptions(opts []Option) *Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.Mode == ModeStrict {
		if !result.setMalformedPolicy {
			result.MalformedPolicy = FailFast
		}
		if !result.setDuplicateKeyPolicy {
			result.DuplicateKeyPolicy = ErrorOnDuplicate
		}
		if !result.setEscapePolicy {
			result.EscapePolicy = StrictEscapes
		}
		if !result.setTrailingDataPolicy {
			result.TrailingDataPolicy = ErrorOnTrailing
		}
	}
	if result.KeyCaseFormat.IsDefined() {
		result.keyTransformer = caseFormatTransformer{caseFormat: result.KeyCaseFormat}
	}
	return &result
}
