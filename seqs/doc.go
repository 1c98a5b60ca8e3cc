/*
Package seqs provides lazy sliding-window adapters for Go 1.23+ iterators (iter.Seq).

The core of the package is [Windows], which turns any sequence into a sequence of
overlapping fixed-size snapshots, advancing one source element per step. Around it:

  - **Windowing**: [Windows] and its error-aware twin [TryWindows].
  - **Rolling Aggregates**: [RollingSum], [RollingMean], [RollingMin], [RollingMax]
    compute per-window statistics in O(1) per step without materializing windows.
  - **Composition**: [Map], [Filter], [Peek], [Take], [Skip] for building pipelines
    around a window stream.
  - **Sources & Sinks**: [Range], [Repeat], [RandomInts] to produce sequences;
    [First], [Last], [Count], [Any], [All] to consume them.

# Laziness

Everything is pull-based: windows are built only as the consumer asks for them, so

	seqs.First(seqs.Windows(source, 3))

pulls exactly three elements from source, no matter how long it is. Abandoning a
window sequence early stops the underlying source.

# Snapshots

Every window yielded by [Windows] is a fresh slice, independent of the internal
buffer and of every other window. Elements are copied by value into successive
windows, so the adapter is best suited to cheaply copyable element types.

# Error Handling

[TryWindows] accepts an (element, error) sequence. An errored element is forwarded
to the consumer and never enters a window; the consumer decides whether the stream
continues.
*/
package seqs
