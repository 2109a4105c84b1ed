// Package segment exposes read-only views of a UTF-8 buffer driven by
// Unicode extended grapheme cluster segmentation.
//
// Every view is a lazy, finite iter.Seq2 yielding (byte offset, text).
// Ranging over the same view twice restarts it from the same offset.
// Views never retain the buffer beyond the range loop and never split a
// cluster. An out-of-range offset yields an empty sequence.
package segment
