package git

import "strings"

// Binary is the name of the external git executable.
const Binary = "git"

// CommandSpec is a single git invocation as an argument vector.
// Each argument is a discrete element; nothing is ever joined into a
// shell string, so shell metacharacters in user input are inert.
type CommandSpec struct {
	Name string
	Args []string
}

// Build constructs a CommandSpec for the git binary.
// It is a pure function: it never fails and never touches the filesystem.
// Callers are responsible for semantic argument order; Build only
// guarantees that no element is shell-interpreted.
func Build(args ...string) CommandSpec {
	return CommandSpec{Name: Binary, Args: args}
}

// String renders the spec for diagnostics. Arguments containing
// whitespace are quoted for readability only; the rendered form is
// never executed.
func (s CommandSpec) String() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, s.Name)
	for _, arg := range s.Args {
		if strings.ContainsAny(arg, " \t\n") {
			parts = append(parts, "'"+arg+"'")
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
