package crypto

// SetWipeObserverForTesting installs fn to be called with every buffer right
// after Wipe zeroed it. This is intended for testing only. Returns a function
// to restore the previous observer.
// Since this package is internal, this function cannot be accessed by external code.
func SetWipeObserverForTesting(fn func([]byte)) func() {
	original := wipeObserver
	wipeObserver = fn
	return func() { wipeObserver = original }
}
