// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): model inference, text extraction, speech,
// and storage. Implementations live in internal/adapters/driven and
// internal/extractors.
package driven
