/*
Package seqs provides lazy, pull-based sequence operations on Go 1.23+ iterators (iter.Seq).

Every operation is evaluated on demand: the producer computes one element per
pull and suspends between pulls, keeping only the state required to resume.
Operations that need the whole input before they can emit anything ([Sort],
[Classify], [Pick], [Permutations], [Reverse]) materialize it once and say so
in their doc comment; everything else streams.

It includes:

  - **Transformations**: [Map], [MapN], [Filter], [FlatMap], [Flatten], [Concat], [Scan].
  - **Matching**: [Grep], [First], [Last] driven by a [Matcher] (value, type, pattern or predicate).
  - **Deduplication**: [Unique], [Squish], [Repeated] and their By/With variants.
  - **Windowing**: [Rotor] with a cyclic size/gap specification, plus [Chunk] and [Sliding].
  - **Combination**: [Zip], [ZipAll], [RoundRobin], [Enumerate].
  - **Enumeration**: [Combinations], [Permutations] in lexicographic index order.
  - **Reduction**: [Fold], [Reduce], [ReduceOp] with identity-bearing operators, [ReduceCtl] with loop-style control signals.
  - **Sampling**: [Pick] (without replacement), [Roll] (with replacement), [RollInf].

# Error Handling

Not-found conditions are reported as (zero, false), never as errors. Structural
misuse (reducing an empty sequence with no identity-bearing operator, or
draining a provably endless sequence) fails hard with [ErrEmptyReduce] or
[ErrInfinite]. Many functions come in "Try" variants (e.g., [TryMap],
[TryFilter]) that carry a user callback's error through the stream to the
consumer unchanged.

# Concurrency

Sequences hold at most one active cursor and are not safe for concurrent
pulling without external synchronization. A consumer that stops pulling simply
abandons the sequence; cursors obtained through iter.Pull are always released
via their stop functions. Parallel evaluation is layered on top by package
parallel, never inside this package.
*/
package seqs
