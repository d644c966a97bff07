package main

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the full command tree with the given arguments and
// returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "devtools" {
			t.Errorf("expected use 'devtools', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has history flags", func(t *testing.T) {
		t.Parallel()
		if cmd.PersistentFlags().Lookup("no-history") == nil {
			t.Error("expected no-history flag")
		}
		flag := cmd.PersistentFlags().Lookup("data-dir")
		if flag == nil {
			t.Fatal("expected data-dir flag")
		}
		if flag.DefValue == "" {
			t.Error("expected non-empty data-dir default")
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{
			"hash [text]": false,
			"jwt":         false,
			"uuid":        false,
			"qr <content>": false,
			"encode":      false,
			"decode":      false,
			"url":         false,
			"history":     false,
			"init":        false,
			"version":     false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for use, found := range want {
			if !found {
				t.Errorf("expected %q subcommand", use)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestRootCmd_UnknownCommand tests that unknown subcommands fail.
func TestRootCmd_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "no-such-command")
	if err == nil {
		t.Error("expected error for unknown subcommand")
	}
}
