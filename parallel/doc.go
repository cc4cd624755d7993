/*
Package parallel layers concurrent evaluation on top of package seqs.

The sequence core is strictly single-threaded pull; anything that spawns
goroutines lives here instead. [Prefetch] runs a producer ahead of the
consumer behind a bounded buffer, [TryMap] fans element transformation out to
a worker pool, and [ForEach] drains a sequence through a bounded group of
handlers.

Input sequences are still pulled by exactly one goroutine; only the work on
the pulled elements is distributed.
*/
package parallel
