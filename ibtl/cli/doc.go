package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ibtl.cli'
func tracer() tracing.Trace {
	return tracing.Select("ibtl.cli")
}
