package repl

import (
	"reflect"
	"testing"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter("set", "get", "list", "path")

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"get", "list", "path", "set"}},
		{"g", []string{"get"}},
		{"li", []string{"list"}},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := c.Complete(tt.prefix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCompleter_Known(t *testing.T) {
	c := NewCompleter("set", "get")

	if !c.Known("get") {
		t.Error("Known(get) = false")
	}
	if c.Known("ge") {
		t.Error("Known(ge) = true for a prefix")
	}
	if c.Known("zzz") {
		t.Error("Known(zzz) = true")
	}
}

func TestNewCompleter_DoesNotAlias(t *testing.T) {
	cmds := []string{"b", "a"}
	NewCompleter(cmds...)
	if cmds[0] != "b" {
		t.Error("NewCompleter reordered the caller's slice")
	}
}
