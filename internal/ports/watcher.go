package ports

// Watcher monitors a single corpus file for changes and triggers re-analysis.
// The adapter (fsnotify) must debounce rapid events — editors often trigger
// multiple writes per save. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called with the absolute
	// path after each (debounced) modification. The callback may be invoked
	// from any goroutine. Returns an error if the file doesn't exist or
	// permissions are insufficient.
	Watch(filePath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
