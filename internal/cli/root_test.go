package cli

import (
	"bytes"
	"strings"
	"testing"
)

// executeCommand runs the root command with the given args and returns
// captured output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, err := executeCommand()
	if err != nil {
		t.Fatalf("Expected root command to succeed, got: %v", err)
	}

	for _, sub := range []string{"gen", "run", "compare"} {
		if !strings.Contains(out, sub) {
			t.Errorf("Expected help output to list %q subcommand", sub)
		}
	}
}

func TestRootVersion(t *testing.T) {
	out, err := executeCommand("--version")
	if err != nil {
		t.Fatalf("Expected version flag to succeed, got: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("Expected version output to contain %q, got: %s", version, out)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := executeCommand("frobnicate")
	if err == nil {
		t.Error("Expected error for unknown subcommand")
	}
}
