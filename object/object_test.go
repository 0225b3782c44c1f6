package object_test

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	linterrors "github.com/chrismerck/struct-lint/errors"
	"github.com/chrismerck/struct-lint/object"
)

func TestAlignForClass(t *testing.T) {
	tests := []struct {
		class elf.Class
		want  uint64
	}{
		{elf.ELFCLASS64, 8},
		{elf.ELFCLASS32, 4},
		{elf.ELFCLASSNONE, 4},
	}
	for _, tt := range tests {
		if got := object.AlignForClass(tt.class); got != tt.want {
			t.Errorf("AlignForClass(%v) = %d, want %d", tt.class, got, tt.want)
		}
	}
}

// minimalELF returns a header-only relocatable ELF with no sections.
func minimalELF(class elf.Class) []byte {
	le := binary.LittleEndian
	ident := make([]byte, 16)
	copy(ident, elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(class)
	ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	if class == elf.ELFCLASS64 {
		buf := make([]byte, 64)
		copy(buf, ident)
		le.PutUint16(buf[16:], uint16(elf.ET_REL))
		le.PutUint16(buf[18:], uint16(elf.EM_X86_64))
		le.PutUint32(buf[20:], 1)
		le.PutUint16(buf[52:], 64) // e_ehsize
		return buf
	}
	buf := make([]byte, 52)
	copy(buf, ident)
	le.PutUint16(buf[16:], uint16(elf.ET_REL))
	le.PutUint16(buf[18:], uint16(elf.EM_ARM))
	le.PutUint32(buf[20:], 1)
	le.PutUint16(buf[40:], 52) // e_ehsize
	return buf
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_ArchProfile(t *testing.T) {
	tests := []struct {
		name  string
		class elf.Class
		align uint64
	}{
		{"64-bit", elf.ELFCLASS64, 8},
		{"32-bit", elf.ELFCLASS32, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "min.o", minimalELF(tt.class))
			f, err := object.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer f.Close()
			if f.MaxAlign != tt.align {
				t.Errorf("MaxAlign = %d, want %d", f.MaxAlign, tt.align)
			}
			if f.Class != tt.class {
				t.Errorf("Class = %v, want %v", f.Class, tt.class)
			}
		})
	}
}

func TestOpen_NotELF(t *testing.T) {
	path := writeFile(t, "junk.o", []byte("definitely not an ELF file"))
	_, err := object.Open(path)
	if err == nil {
		t.Fatal("expected error for non-ELF input")
	}
	if !errors.Is(err, linterrors.InvalidContainer("", nil)) {
		t.Errorf("expected invalid_container, got %v", err)
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := object.Open(filepath.Join(t.TempDir(), "nope.o"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, linterrors.NotFound("", nil)) {
		t.Errorf("expected not_found, got %v", err)
	}
}
