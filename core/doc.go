// Package core provides the immutable domain types for conversational
// sessions. It defines the core abstractions for:
//
//   - Messages, tool calls and events (immutable value records)
//   - Threads (ordered aggregates with copy-on-write update methods)
//   - The canonical map codec and the chat-completion wire projection
//   - ValidateIntegrity (accumulated cross-field checks with separate
//     error and warning channels)
//   - Pluggable stores for canonical threads, event journals and archived
//     snapshots
//
// The package intentionally keeps implementation concerns (volatile stores,
// provider adapters, host orchestration) out of scope, exposing small
// interfaces to enable custom backends and extensions. All types are pure
// values: no method mutates its receiver, so values can be shared across
// goroutines without locks.
package core
