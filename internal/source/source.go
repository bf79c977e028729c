package source

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// Location names a line in a Source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("line %v", loc.Line)
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Source is a named program text.
type Source struct {
	Name string
	Text string
}

func (src Source) String() string { return fmt.Sprintf("%v (%v bytes)", src.Name, len(src.Text)) }

// Stdin names the pseudo file that Open reads from os.Stdin.
const Stdin = "-"

// Open loads the named file; the Stdin name reads os.Stdin instead.
func Open(name string) (Source, error) {
	if name == Stdin || name == "" {
		return Read(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read loads all of r, naming the Source after r if it implements
// Name() string.
func Read(r io.Reader) (Source, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %v: %w", nameOf(r), err)
	}
	return Source{Name: nameOf(r), Text: string(b)}, nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
