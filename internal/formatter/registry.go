package formatter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/tabula/internal/field"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
)

// Func transforms a raw cell value into its display string. value is nil when
// the row has no entry for the field. Implementations must be pure.
type Func func(value any, args []string) (string, error)

// Registry maps formatter names to functions.
type Registry struct {
	mu     sync.RWMutex
	funcs  map[string]Func
	logger *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		funcs:  make(map[string]Func),
		logger: log,
	}
}

// Register adds a formatter. It refuses to overwrite an existing name; use Replace for that.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("formatter name is empty")
	}
	if fn == nil {
		return fmt.Errorf("formatter '%s' is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return &tabulaerrors.FormatterExistsError{Name: name}
	}
	r.funcs[name] = fn
	return nil
}

// Replace installs fn under name whether or not it is already taken and reports
// whether a previous formatter was overwritten.
func (r *Registry) Replace(name string, fn Func) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("formatter name is empty")
	}
	if fn == nil {
		return false, fmt.Errorf("formatter '%s' is nil", name)
	}

	r.mu.Lock()
	_, existed := r.funcs[name]
	r.funcs[name] = fn
	r.mu.Unlock()

	if existed {
		r.logger.WithFields(map[string]any{"formatter": name}).Info("formatter replaced")
	}
	return existed, nil
}

// Resolve looks up a formatter by name.
func (r *Registry) Resolve(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered formatter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the formatter named by spec against raw. The returned string is
// always usable: when the formatter is unknown, fails or panics, it is the raw
// value stringified and the error says why.
func (r *Registry) Apply(spec *field.CallbackSpec, raw any) (string, error) {
	if spec == nil {
		return Stringify(raw), nil
	}

	fn, ok := r.Resolve(spec.Name)
	if !ok {
		return Stringify(raw), &tabulaerrors.UnknownFormatterError{Name: spec.Name}
	}

	out, err := invoke(fn, raw, spec.Args)
	if err != nil {
		return Stringify(raw), tabulaerrors.NewFormatterRuntimeError(spec.Name, err)
	}
	return out, nil
}

func invoke(fn Func, raw any, args []string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	// Formatters get their own copy so they cannot alter the descriptor.
	argsCopy := append([]string(nil), args...)
	return fn(raw, argsCopy)
}
