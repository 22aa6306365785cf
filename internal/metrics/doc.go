// Package metrics exposes Prometheus instrumentation for multiplications and
// verification runs. Each Metrics value owns its own registry so tests and
// concurrent applications never collide on global collectors.
package metrics
