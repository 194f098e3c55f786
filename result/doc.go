// Package result provides a generic success/failure wrapper used by every
// fallible operation in the module. It offers:
//
//   - Result[T]: a two-variant outcome carrying either a payload or an error
//   - Safe: a boundary converting returned errors and panics into failures
//   - Chain: a seed-then-transform pipeline with first-failure short-circuit
//   - Collect: fail-fast aggregation of homogeneous results
//   - Then / Map: typed single-step composition
//
// Result values are terminal once constructed; combinators build new values
// rather than mutating existing ones, so results can be shared freely.
package result
