package entities

import (
	"errors"
	"sync"
)

// Stage names the part of the crawl that emitted a ProgressEvent.
type Stage string

const (
	StageRepositoryPage Stage = "repository-page"
	StageDirectory      Stage = "directory"
	StageContent        Stage = "content"
)

// ProgressEvent reports a single step of the crawl. Err is set when the step failed.
type ProgressEvent struct {
	Stage      Stage
	Repository string
	Path       string
	Count      int
	Err        error
}

// Failed reports whether the event carries an error.
func (e ProgressEvent) Failed() bool { return e.Err != nil }

// ProgressFunc receives progress events. Implementations must be safe for concurrent use
// when repositories are crawled in parallel.
type ProgressFunc func(event ProgressEvent)

// ChainProgress returns a ProgressFunc that forwards each event to every non-nil fn.
func ChainProgress(fns ...ProgressFunc) ProgressFunc {
	return func(event ProgressEvent) {
		for _, fn := range fns {
			if fn != nil {
				fn(event)
			}
		}
	}
}

// Diagnostics counts crawl outcomes. The zero value is ready to use.
type Diagnostics struct {
	mu sync.Mutex

	ListErrors      int
	DirectoryErrors int
	ContentErrors   int
	DecodeErrors    int
	FilesFetched    int
}

// Record updates the counters from a progress event.
func (d *Diagnostics) Record(event ProgressEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch event.Stage {
	case StageRepositoryPage:
		if event.Failed() {
			d.ListErrors++
		}
	case StageDirectory:
		if event.Failed() {
			d.DirectoryErrors++
		}
	case StageContent:
		switch {
		case errors.Is(event.Err, ErrContentDecode):
			d.DecodeErrors++
		case event.Failed():
			d.ContentErrors++
		default:
			d.FilesFetched++
		}
	}
}

// Failures returns the total number of failed steps.
func (d *Diagnostics) Failures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ListErrors + d.DirectoryErrors + d.ContentErrors + d.DecodeErrors
}
