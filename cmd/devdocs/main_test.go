package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/devdocs/internal/routing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("devdocs %v: %v", args, err)
	}
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	out := run(t, "routes")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	want := len(routing.Site.Routes()) + 1
	if len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, out)
	}
	if !strings.Contains(lines[1], "/") || !strings.Contains(lines[1], "home") {
		t.Errorf("first route line = %q", lines[1])
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "*") || !strings.Contains(last, "notfound") {
		t.Errorf("last route line = %q", last)
	}
	if !strings.Contains(out, "/git-commit-types") {
		t.Error("normalized git-commit-types route missing")
	}
}

func TestRoutesCommandYAML(t *testing.T) {
	out := run(t, "routes", "--yaml")

	var got []routing.Route
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	routes := routing.Site.Routes()
	if len(got) != len(routes) {
		t.Fatalf("got %d routes, want %d", len(got), len(routes))
	}
	for i := range routes {
		if got[i].Pattern != routes[i].Pattern || got[i].Page != routes[i].Page {
			t.Errorf("route %d = %+v, want %s -> %s", i, got[i], routes[i].Pattern, routes[i].Page)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	out := run(t, "check")
	if !strings.Contains(out, "24 articles") {
		t.Errorf("check output = %q", out)
	}
}
