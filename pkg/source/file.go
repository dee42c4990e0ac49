package source

import "os"

// Line provides information about a single line within an original source
// file, used to render "here" context around a diagnostic span.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (l Line) String() string {
	return string(l.text[l.span.start:l.span.end])
}

// Number returns the 1-indexed line number.
func (l Line) Number() int { return l.number }

// File represents a single EXPRESS schema source file.
type File struct {
	filename string
	contents []rune
}

// NewFile constructs a source file from raw bytes.
func NewFile(filename string, contents []byte) *File {
	return &File{filename, []rune(string(contents))}
}

// ReadFiles reads a set of EXPRESS schema files from disk.
func ReadFiles(filenames ...string) ([]*File, error) {
	files := make([]*File, len(filenames))

	for i, name := range filenames {
		bytes, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		files[i] = NewFile(name, bytes)
	}

	return files, nil
}

// Filename returns the name this file was loaded under.
func (f *File) Filename() string { return f.filename }

// Contents returns the full rune contents of this file.
func (f *File) Contents() []rune { return f.contents }

// FindFirstEnclosingLine determines the first physical line which encloses
// the start of a given span. If the span lies beyond the end of the file,
// the last physical line is returned.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	num := 1
	start := 0

	for i := 0; i < len(f.contents); i++ {
		if i == index {
			return Line{f.contents, Span{start, findEndOfLine(index, f.contents)}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{f.contents, Span{start, len(f.contents)}, num}
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}
