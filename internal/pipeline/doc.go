// Package pipeline drives team names through fetch, translate and summarize
// stages, collecting one record per successfully processed team. Failures
// are local to their team: the pipeline skips and moves on, it never aborts
// the batch.
package pipeline
