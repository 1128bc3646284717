package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"gopkg.in/yaml.v3"
)

// Registry is the read-only element registry loaded from an elements file:
//
//	elements:
//	  login:
//	    button: Id_login-button
//	    username: Placeholder_User name
type Registry struct {
	elements map[string]map[string]string
}

type registryFile struct {
	Elements map[string]map[string]string `yaml:"elements"`
}

// LoadRegistry reads and decodes the elements file at path
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open elements file: %w", err)
	}
	defer f.Close()

	r, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// DecodeRegistry decodes an elements document from r
func DecodeRegistry(r io.Reader) (*Registry, error) {
	var doc registryFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse elements file: %w", err)
	}
	if doc.Elements == nil {
		doc.Elements = map[string]map[string]string{}
	}
	return &Registry{elements: doc.Elements}, nil
}

// NewRegistry builds a registry from an in-memory map; the map is copied
func NewRegistry(elements map[string]map[string]string) *Registry {
	copied := make(map[string]map[string]string, len(elements))
	for name, keys := range elements {
		inner := make(map[string]string, len(keys))
		for k, v := range keys {
			inner[k] = v
		}
		copied[name] = inner
	}
	return &Registry{elements: copied}
}

// Lookup returns the descriptor string at elements.<element>.<key>
func (r *Registry) Lookup(element, key string) (string, error) {
	keys, ok := r.elements[element]
	if !ok {
		return "", &entities.LookupError{Path: Path(element, key)}
	}
	raw, ok := keys[key]
	if !ok {
		return "", &entities.LookupError{Path: Path(element, key)}
	}
	return raw, nil
}

// LookupPath resolves a dotted path of the form elements.<element>.<key>
func (r *Registry) LookupPath(path string) (string, error) {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) != 3 || parts[0] != "elements" {
		return "", &entities.LookupError{Path: path}
	}
	return r.Lookup(parts[1], parts[2])
}

// Path renders the dotted configuration path of element+key
func Path(element, key string) string {
	return "elements." + element + "." + key
}

// Problem is one invalid registry entry
type Problem struct {
	Path string
	Raw  string
	Err  error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s = %q: %v", p.Path, p.Raw, p.Err)
}

// Entry is one configured descriptor string and its dotted path
type Entry struct {
	Path string
	Raw  string
}

// Entries returns every configured entry sorted by path
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.Len())
	for name, keys := range r.elements {
		for key, raw := range keys {
			entries = append(entries, Entry{Path: Path(name, key), Raw: raw})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// Validate reports entries with an empty value and entries rejected by
// check, sorted by path
func (r *Registry) Validate(check func(entities.LocatorDescriptor) error) []Problem {
	var problems []Problem

	for _, e := range r.Entries() {
		d, err := entities.ParseDescriptorStrict(e.Raw)
		if err == nil {
			err = check(d)
		}
		if err != nil {
			problems = append(problems, Problem{Path: e.Path, Raw: e.Raw, Err: err})
		}
	}
	return problems
}

// Len returns the number of configured element keys
func (r *Registry) Len() int {
	n := 0
	for _, keys := range r.elements {
		n += len(keys)
	}
	return n
}

var _ interfaces.ElementRegistry = (*Registry)(nil)
