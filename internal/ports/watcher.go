package ports

// Watcher monitors the transcript directory for changes and triggers
// re-analysis. The adapter (fsnotify) filters to transcript files before
// invoking onChange. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring dir recursively. onChange is called with the
	// absolute path of each changed transcript file. The callback may be
	// invoked from any goroutine.
	Watch(dir string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
