package firmware

import "sync"

// HandleTable is an in-process handle database implementing BootServices.
// Firmware implementations install their protocols into it. The zero value
// is ready to use.
type HandleTable struct {
	mu      sync.Mutex
	next    Handle
	entries []*handleEntry
}

type handleEntry struct {
	handle Handle
	guid   GUID
	iface  any
	open   bool
}

var _ BootServices = (*HandleTable)(nil)

// Install adds iface under guid on a new handle and returns the handle.
func (t *HandleTable) Install(guid GUID, iface any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	t.entries = append(t.entries, &handleEntry{handle: t.next, guid: guid, iface: iface})
	return t.next
}

// HandleForProtocol returns the first handle supporting guid.
func (t *HandleTable) HandleForProtocol(guid GUID) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		if e.guid == guid {
			return e.handle, nil
		}
	}
	return 0, StatusNotFound
}

// OpenProtocolExclusive opens guid on handle for a single holder.
func (t *HandleTable) OpenProtocolExclusive(handle Handle, guid GUID) (any, func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(handle, guid)
	if e == nil {
		return nil, nil, StatusNotFound
	}
	if e.open {
		return nil, nil, StatusAccessDenied
	}
	e.open = true
	release := func() {
		t.mu.Lock()
		e.open = false
		t.mu.Unlock()
	}
	return e.iface, release, nil
}

// IsOpen reports whether guid on handle is currently held.
func (t *HandleTable) IsOpen(handle Handle, guid GUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(handle, guid)
	return e != nil && e.open
}

func (t *HandleTable) lookup(handle Handle, guid GUID) *handleEntry {
	for _, e := range t.entries {
		if e.handle == handle && e.guid == guid {
			return e
		}
	}
	return nil
}
