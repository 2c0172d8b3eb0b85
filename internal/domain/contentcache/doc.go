// Package contentcache models persisted AI-generated content keyed by
// (content type, subject, locale) and the policy that decides whether a
// stored entry is still usable.
//
// Writes are last-writer-wins. The store does not serialise concurrent
// get-then-put sequences for the same key: two callers that both observe a
// stale entry may both regenerate, and the later put overwrites the earlier
// one. Callers that need at most one regeneration per key take a
// regeneration lease first (see the application Regenerator).
package contentcache
