// Package store provides storage and fan-out functionality for project records.
//
// This package is internal to projectboard and manages the in-memory,
// process-lifetime storage of project records. It implements an observer
// pattern: every mutation that actually changes state produces a snapshot
// of the full record sequence that is delivered synchronously to every
// registered listener, in registration order.
//
// The main components are:
//
//   - [MemoryStore]: ordered in-memory record storage with listener fan-out
//   - [Record]: storage representation of a project
//   - [Subscription]: cancellable handle returned from Subscribe
//
// The store is designed for concurrent access with proper synchronization.
// Listeners receive independent snapshot copies; a panicking listener is
// isolated (recovered and logged) and never prevents delivery to the
// remaining listeners.
//
// Users of the projectboard library should not need to interact with this
// package directly. Storage is managed internally by Board.
package store
