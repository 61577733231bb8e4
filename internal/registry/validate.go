package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/autoperm/internal/backend"
	"github.com/specialistvlad/autoperm/internal/ctxlog"
)

// ValidateRegistry checks that every registered backend can be built and
// renders the empty program. Executable backends must render it without
// touching any cell.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	if len(r.backends) == 0 {
		return errors.New("registry validation failed: no backends registered")
	}

	for _, name := range r.Names() {
		rb := r.backends[name]
		if rb.New == nil {
			errs = append(errs, fmt.Sprintf("backend '%s': no factory", name))
			continue
		}
		b := rb.New(backend.Options{})
		if b == nil {
			errs = append(errs, fmt.Sprintf("backend '%s': factory returned nil", name))
			continue
		}
		program, err := renderEmpty(b)
		if err != nil {
			errs = append(errs, fmt.Sprintf("backend '%s': %v", name, err))
			continue
		}
		if rb.Executable && strings.ContainsAny(program, "+-[]") {
			errs = append(errs, fmt.Sprintf("backend '%s': empty program touches cells: %q", name, program))
			continue
		}
		logger.Debug("Backend validated.", "backend", name, "executable", rb.Executable, "empty_program_len", len(program))
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// renderEmpty renders the program of the empty diagram, which carries only
// the cursor bookkeeping.
func renderEmpty(b backend.Backend[string]) (program string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering an empty program panicked: %v", r)
		}
	}()
	b.Start(-1)
	b.Top(-1)
	return b.Finish(), nil
}
