package object

import (
	"debug/dwarf"
	"debug/elf"
	"os"

	"go.uber.org/zap"

	"github.com/chrismerck/struct-lint/errors"
)

// File is an opened artifact with its architecture profile.
type File struct {
	Path     string
	Class    elf.Class
	MaxAlign uint64
	elf      *elf.File
}

// AlignForClass returns the maximum natural alignment for an ELF class:
// 8 bytes for 64-bit artifacts, 4 bytes otherwise.
func AlignForClass(c elf.Class) uint64 {
	if c == elf.ELFCLASS64 {
		return 8
	}
	return 4
}

// Open opens an artifact and derives its architecture profile.
func Open(path string) (*File, error) {
	f, err := elf.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(path, err)
		}
		return nil, errors.InvalidContainer(path, err)
	}

	file := &File{
		Path:     path,
		Class:    f.Class,
		MaxAlign: AlignForClass(f.Class),
		elf:      f,
	}
	Logger().Debug("opened artifact",
		zap.String("path", path),
		zap.String("class", f.Class.String()),
		zap.Uint64("max_align", file.MaxAlign))
	return file, nil
}

// DWARF loads the artifact's debug information.
func (f *File) DWARF() (*dwarf.Data, error) {
	d, err := f.elf.DWARF()
	if err != nil {
		return nil, errors.NoDebugInfo(f.Path, err)
	}
	return d, nil
}

// Close releases the underlying container. Values extracted from the
// artifact remain valid; they are owned copies, not views into its buffer.
func (f *File) Close() error {
	return f.elf.Close()
}
