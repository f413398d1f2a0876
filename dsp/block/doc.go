// Package block provides a reusable float32 sample block and pool for
// allocation-friendly streaming. The tape processor accepts raw []float32
// slices; Block is an optional convenience for callers that stream audio
// in fixed-size chunks and want to reuse backing storage.
package block
