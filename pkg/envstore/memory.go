package envstore

// Memory is a map-backed Store for tests. SetCalls counts writes so tests
// can assert that no-op operations skip the write-back entirely.
type Memory struct {
	Values   map[string]string
	SetCalls int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{Values: make(map[string]string)}
}

func (m *Memory) Get(name string) (string, error) {
	return m.Values[name], nil
}

func (m *Memory) Set(name, value string) error {
	m.Values[name] = value
	m.SetCalls++
	return nil
}
