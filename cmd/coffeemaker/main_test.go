package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run(context.Background(), []string{name, "version"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), name+" "+version) {
		t.Errorf("unexpected version output %q", out.String())
	}
}

func TestMenuFailsOnMissingRecipes(t *testing.T) {
	chdir(t, t.TempDir())
	app := newApp()

	err := app.Run(context.Background(), []string{name, "menu", "--recipes", "missing.yaml"})
	if err == nil {
		t.Fatal("expected an error for a missing recipes file")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
