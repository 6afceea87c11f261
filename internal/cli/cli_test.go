package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"validate", "porttype"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestPortTypeCommandFlags(t *testing.T) {
	cmd := newPortTypeCommand()
	flags := []string{"catalog", "name", "request-suffix", "response-suffix", "fault-suffix"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("catalog"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad input"),
			want: 2,
		},
		{
			name: "already exists",
			err:  errbuilder.New().WithCode(errbuilder.CodeAlreadyExists).WithMsg("duplicate"),
			want: 2,
		},
		{
			name: "failed precondition",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("'portTypeName' is required"),
			want: 4,
		},
		{
			name: "not found",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("catalog file not found"),
			want: 5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeForError(tc.err))
		})
	}
}
