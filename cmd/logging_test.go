package cmd

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

func TestParseModuleLevel(t *testing.T) {
	tests := []struct {
		arg    string
		module string
		level  log.Level
		valid  bool
	}{
		{"renderer=debug", "renderer", log.Debug, true},
		{"whitted=WARNING", "whitted", log.Warning, true},
		{"renderer", "", log.Notice, false},
		{"=debug", "", log.Notice, false},
		{"renderer=chatty", "", log.Notice, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			module, level, err := parseModuleLevel(tt.arg)
			if (err == nil) != tt.valid {
				t.Fatalf("parseModuleLevel(%q) error = %v, valid %v", tt.arg, err, tt.valid)
			}
			if module != tt.module || level != tt.level {
				t.Errorf("parseModuleLevel(%q) = %q, %v, want %q, %v", tt.arg, module, level, tt.module, tt.level)
			}
		})
	}
}
