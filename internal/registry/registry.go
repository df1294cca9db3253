// Package registry binds byte-transform commands under a qualified namespace,
// mirroring the host-interpreter registration the tool descends from: commands
// are installed once, advertised with a package name and version, and invoked
// by name with positional byte-sequence arguments.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xorkit/xorkit/internal/xor"
)

// Handler runs a command against its positional byte arguments. Arity has
// already been checked when a handler is called.
type Handler func(args [][]byte) ([]byte, error)

// Command describes one registerable command.
type Command struct {
	// Name is the bare command name; it is qualified with the registry
	// namespace on registration (e.g. "xorkit::xor").
	Name string
	// Arity is the exact number of positional arguments the command takes.
	Arity int
	// Usage is the fixed message surfaced when the argument count is wrong.
	Usage string
	// Run is invoked only after the arity check passes.
	Run Handler
}

// UsageError is returned when a command is invoked with the wrong number of
// arguments. The message is fixed per command and shown verbatim.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string { return e.Usage }

// Registry holds the commands of one package. The zero value is not usable;
// create instances with New. A Registry is an ordinary value with no global
// side effects, so setup stays testable and repeatable.
type Registry struct {
	pkg     string
	version string

	mu   sync.RWMutex
	cmds map[string]Command
}

// Registration is the handle returned by Register. It records the qualified
// name a command was bound under.
type Registration struct {
	QualifiedName string
}

// New creates an empty registry advertising the given package name and
// version. The package name doubles as the command namespace.
func New(pkg, version string) *Registry {
	return &Registry{pkg: pkg, version: version, cmds: make(map[string]Command)}
}

// Package returns the advertised package name.
func (r *Registry) Package() string { return r.pkg }

// Version returns the advertised package version.
func (r *Registry) Version() string { return r.version }

// Register installs a command and returns its registration handle. Binding
// the same name twice is an error.
func (r *Registry) Register(cmd Command) (*Registration, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("registry: empty command name")
	}
	if cmd.Run == nil {
		return nil, fmt.Errorf("registry: command %q has no handler", cmd.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.cmds[cmd.Name]; dup {
		return nil, fmt.Errorf("registry: command %q already registered", cmd.Name)
	}
	r.cmds[cmd.Name] = cmd
	return &Registration{QualifiedName: r.pkg + "::" + cmd.Name}, nil
}

// Lookup returns the command bound under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names returns the qualified names of all registered commands, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, r.pkg+"::"+name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches name against args. Arity is checked before the handler
// runs, so a wrong argument count performs no computation and no allocation
// for the result.
func (r *Registry) Invoke(name string, args ...[]byte) ([]byte, error) {
	cmd, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown command %q", name)
	}
	if len(args) != cmd.Arity {
		return nil, &UsageError{Command: name, Usage: cmd.Usage}
	}
	return cmd.Run(args)
}

// xorUsage matches the original binding's message byte for byte.
const xorUsage = "Invalid command count, use: xor <string> <salt>"

// RegisterXOR binds the repeating-key XOR transform as the "xor" command.
func RegisterXOR(r *Registry) (*Registration, error) {
	return r.Register(Command{
		Name:  "xor",
		Arity: 2,
		Usage: xorUsage,
		Run: func(args [][]byte) ([]byte, error) {
			return xor.Transform(args[0], args[1])
		},
	})
}
