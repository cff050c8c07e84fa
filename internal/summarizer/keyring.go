package summarizer

import "sync"

// keyRing hands out API keys and moves to the next one when a key gets rate limited
type keyRing struct {
	mu      sync.Mutex
	size    int
	current int
}

func newKeyRing(size int) *keyRing {
	return &keyRing{size: size}
}

func (k *keyRing) get() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current
}

// rotate advances past idx. Concurrent callers that saw the same key rotate only once.
func (k *keyRing) rotate(idx int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.current == idx {
		k.current = (k.current + 1) % k.size
	}
}
