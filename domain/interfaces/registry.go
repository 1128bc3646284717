package interfaces

// ElementRegistry maps an element name and key to a raw descriptor string
type ElementRegistry interface {
	// Lookup returns the descriptor configured at elements.<element>.<key>
	Lookup(element, key string) (string, error)
}
