// Package summary produces bounded-length Spanish summaries. The AI backend
// is tried first when available; otherwise an extractive TextRank summarizer
// selects the most central sentences. The word cap is enforced on the result
// no matter which strategy produced it.
package summary
