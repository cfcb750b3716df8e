package memfw

import (
	"pkt.systems/efitui/internal/firmware"
)

// WaitForKey blocks until a scripted key is pending. After CloseInput it
// returns StatusAborted once the script is drained.
func (c *Console) WaitForKey() error {
	c.mu.Lock()
	st := c.injected(OpWaitForKey)
	c.mu.Unlock()
	if st != firmware.StatusSuccess {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.record(Call{Op: OpWaitForKey}, st)
	}

	err := c.keys.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		return c.record(Call{Op: OpWaitForKey}, firmware.StatusAborted)
	}
	return c.record(Call{Op: OpWaitForKey}, firmware.StatusSuccess)
}

// ReadKeyStroke takes the next scripted key. An empty buffer yields the
// not-ready outcome.
func (c *Console) ReadKeyStroke() (firmware.Key, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st := c.injected(OpReadKeyStroke); st != firmware.StatusSuccess {
		return firmware.Key{}, false, c.record(Call{Op: OpReadKeyStroke}, st)
	}
	k, ok := c.keys.Pop()
	if !ok {
		return firmware.Key{}, false, c.record(Call{Op: OpReadKeyStroke}, firmware.StatusSuccess)
	}
	return k, true, c.record(Call{Op: OpReadKeyStroke, Key: k}, firmware.StatusSuccess)
}

// PushKeys queues keys and returns how many were accepted.
func (c *Console) PushKeys(keys ...firmware.Key) int {
	n := 0
	for _, k := range keys {
		if !c.keys.Push(k) {
			c.logger.Warn("key buffer full, dropping key", "key", k.String())
			break
		}
		n++
	}
	return n
}

// Script queues keys given by name, see firmware.ParseKey.
func (c *Console) Script(names ...string) error {
	keys, err := firmware.ParseKeys(names)
	if err != nil {
		return err
	}
	c.PushKeys(keys...)
	return nil
}

// CloseInput ends the key script.
func (c *Console) CloseInput() {
	c.keys.Close()
}

// PendingKeys returns the number of queued keys.
func (c *Console) PendingKeys() int {
	return c.keys.Len()
}

// Close ends input. The emulated screen stays readable.
func (c *Console) Close() error {
	c.CloseInput()
	return nil
}
