package ftface

import "github.com/npillmayer/schuko/gtrace"
import "github.com/npillmayer/schuko/tracing"

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
