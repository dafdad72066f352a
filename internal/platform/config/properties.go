package config

import (
	"fmt"
	"io"

	"github.com/magiconair/properties"
)

// ParseProperties reads a Java properties file. ${key} references are
// expanded and later duplicates win.
func ParseProperties(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	p, err := properties.Load(buf, properties.UTF8)
	if err != nil {
		return nil, err
	}
	props := make(map[string]string, p.Len())
	for _, key := range p.Keys() {
		props[key] = p.GetString(key, "")
	}
	return props, nil
}
