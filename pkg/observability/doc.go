/*
Package observability turns build lifecycle events into metrics and logs.

Both Metrics.Hooks and LogHooks return domain.LifecycleHooks; combine them with
domain.ChainHooks and pass the result to the builder.
*/
package observability
