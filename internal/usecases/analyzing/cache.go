package analyzing

import "sync"

// viewCache memoriza visões derivadas do dataset atual, chaveadas pela operação e
// pela tupla de parâmetros. É descartado por inteiro a cada nova carga.
type viewCache struct {
	mu      sync.RWMutex
	version string
	entries map[string]any
}

func newViewCache() *viewCache {
	return &viewCache{entries: make(map[string]any)}
}

func (c *viewCache) get(version, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.version != version {
		return nil, false
	}
	value, ok := c.entries[key]
	return value, ok
}

func (c *viewCache) put(version, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		c.version = version
		c.entries = make(map[string]any)
	}
	c.entries[key] = value
}

func (c *viewCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.version = ""
	c.entries = make(map[string]any)
}

func (c *viewCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
