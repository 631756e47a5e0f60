package sampler

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// TypeKey is the mandatory key of each configuration entry naming the
// sampler variant that produces the parameter.
const TypeKey = "sampler-type"

// Config maps an environment parameter name to the raw configuration
// of the sampler producing it. Beyond TypeKey, each entry carries the
// variant's own distribution parameters.
type Config map[string]map[string]interface{}

// Manager holds one sampler per named environment parameter and
// produces a full randomized parameter set on demand, typically once
// per episode reset.
type Manager struct {
	names    []string
	samplers map[string]Sampler
}

// NewManager builds one sampler per entry of the given configuration.
// A nil configuration is valid and yields a manager with no samplers,
// the "no randomization" case. Construction fails fast on the first
// entry lacking TypeKey, naming an unregistered tag, or carrying an
// invalid distribution spec. The caller's configuration mapping is
// never mutated.
//
// Go maps are unordered, so samplers are built and later drawn from
// in sorted parameter-name order to keep construction deterministic
// for a given seed.
func NewManager(config Config, seed uint64) (*Manager, error) {
	m := &Manager{samplers: make(map[string]Sampler)}
	if config == nil {
		return m, nil
	}

	names := make([]string, 0, len(config))
	for name := range config {
		names = append(names, name)
	}
	sort.Strings(names)

	src := rand.NewSource(seed)
	for _, name := range names {
		entry := config[name]
		tagValue, ok := entry[TypeKey]
		if !ok {
			return nil, fmt.Errorf("newManager: no %q argument supplied "+
				"for the %v parameter: %w", TypeKey, name, ErrConfiguration)
		}
		tag, ok := tagValue.(string)
		if !ok {
			return nil, fmt.Errorf("newManager: %q of the %v parameter "+
				"must be a string, got %T: %w", TypeKey, name, tagValue,
				ErrConfiguration)
		}

		// The constructor receives the entry minus the type tag, so
		// any remaining keys are its named distribution parameters.
		params := make(map[string]interface{}, len(entry)-1)
		for key, value := range entry {
			if key != TypeKey {
				params[key] = value
			}
		}

		s, err := Create(tag, params, src.Uint64())
		if err != nil {
			return nil, fmt.Errorf("newManager: parameter %v: %w", name, err)
		}
		m.names = append(m.names, name)
		m.samplers[name] = s
	}

	return m, nil
}

// Empty reports whether the manager holds no samplers
func (m *Manager) Empty() bool {
	return len(m.names) == 0
}

// SampleAll draws one fresh value per registered parameter. Each call
// is independent; a manager with no samplers returns an empty mapping.
func (m *Manager) SampleAll() map[string]float64 {
	res := make(map[string]float64, len(m.names))
	for _, name := range m.names {
		res[name] = m.samplers[name].Sample()
	}
	return res
}
