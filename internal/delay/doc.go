// Package delay manages outstanding timed continuations: traversal steps a
// delay node has deferred. Each task is an independent timer held in an
// explicit registry keyed by task id, so pending work is observable and a
// cancellation handle exists even though graph edits never cancel tasks
// today: a task always fires and resumes against whatever graph exists at
// fire time. Tasks are in-memory only and are lost on process restart.
package delay
