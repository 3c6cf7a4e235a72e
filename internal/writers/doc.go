// Package writers turns search reports into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, charts, codon lines, JSON/JSONL).
//   • core/match and core/bench stay domain-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
