package firmware

import "sync"

// DefaultKeyBufferSize is the number of keystrokes a console buffers before
// dropping new ones.
const DefaultKeyBufferSize = 32

// KeyBuffer is the keystroke FIFO behind a TextInput implementation.
type KeyBuffer struct {
	mu     sync.Mutex
	keys   []Key
	size   int
	closed bool
	ready  chan struct{}
}

// NewKeyBuffer returns a buffer holding at most size keys.
func NewKeyBuffer(size int) *KeyBuffer {
	if size <= 0 {
		size = DefaultKeyBufferSize
	}
	return &KeyBuffer{size: size, ready: make(chan struct{}, 1)}
}

// Push appends a key. It returns false when the buffer is full or closed.
func (b *KeyBuffer) Push(k Key) bool {
	b.mu.Lock()
	if b.closed || len(b.keys) >= b.size {
		b.mu.Unlock()
		return false
	}
	b.keys = append(b.keys, k)
	b.mu.Unlock()
	b.signal()
	return true
}

// Wait blocks until a key is pending. Once the buffer is closed and drained
// it returns StatusAborted.
func (b *KeyBuffer) Wait() error {
	for {
		b.mu.Lock()
		pending := len(b.keys) > 0
		closed := b.closed
		b.mu.Unlock()

		if pending {
			return nil
		}
		if closed {
			return StatusAborted
		}
		<-b.ready
	}
}

// Pop removes and returns the oldest key.
func (b *KeyBuffer) Pop() (Key, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.keys) == 0 {
		return Key{}, false
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, true
}

// Len returns the number of pending keys.
func (b *KeyBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

// Close stops accepting keys and wakes a blocked Wait.
func (b *KeyBuffer) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.signal()
}

func (b *KeyBuffer) signal() {
	select {
	case b.ready <- struct{}{}:
	default:
	}
}
