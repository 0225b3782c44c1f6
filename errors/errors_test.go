package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseExtract,
				Kind:     KindUnresolvedType,
				Artifact: "build/proto.o",
				Path:     []string{"msg_header_t", "flags"},
				Detail:   "reference cycle",
			},
			contains: []string{"[extract]", "unresolved_type", "build/proto.o", "msg_header_t.flags", "reference cycle"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseScan,
				Kind:  KindNoInput,
			},
			contains: []string{"[scan]", "no_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:    PhaseOpen,
				Kind:     KindInvalidContainer,
				Artifact: "a.out",
				Cause:    errors.New("bad magic"),
			},
			contains: []string{"[open]", "invalid_container", "a.out", "caused by", "bad magic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("underlying")
	err := New(PhaseOpen, KindNoDebugInfo).
		Artifact("firmware.elf").
		Detail("missing %s section", ".debug_info").
		Cause(cause).
		Build()

	if err.Phase != PhaseOpen {
		t.Errorf("Phase = %q, want %q", err.Phase, PhaseOpen)
	}
	if err.Kind != KindNoDebugInfo {
		t.Errorf("Kind = %q, want %q", err.Kind, KindNoDebugInfo)
	}
	if err.Artifact != "firmware.elf" {
		t.Errorf("Artifact = %q", err.Artifact)
	}
	if err.Detail != "missing .debug_info section" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := NotFound("a.o", nil)
	b := NotFound("b.o", nil)
	c := InvalidContainer("a.o", nil)

	if !errors.Is(a, b) {
		t.Error("same phase+kind should match regardless of artifact")
	}
	if errors.Is(a, c) {
		t.Error("different kind should not match")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("eof")
	err := NoDebugInfo("x.o", cause)
	if !errors.Is(err, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
}
