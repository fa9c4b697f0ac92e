package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gears/kernel"
)

func testModel() []kernel.Triangle {
	// Unit tetrahedron surface.
	a := r3.Vec{}
	b := r3.Vec{X: 1}
	c := r3.Vec{Y: 1}
	d := r3.Vec{Z: 1}
	return []kernel.Triangle{
		{a, c, b},
		{a, b, d},
		{a, d, c},
		{b, c, d},
	}
}

func TestWriteReadSTL(t *testing.T) {
	model := testModel()
	var buf bytes.Buffer
	if err := WriteSTL(&buf, model); err != nil {
		t.Fatal(err)
	}
	if want := 84 + 50*len(model); buf.Len() != want {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), want)
	}
	got, err := ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, want %d", len(got), len(model))
	}
	for i, tri := range got {
		for j := range tri {
			if d := r3.Norm(r3.Sub(tri[j], model[i][j])); d > 1e-6 {
				t.Errorf("triangle %d vertex %d moved by %v", i, j, d)
			}
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, nil); err == nil {
		t.Error("empty model must fail")
	}
}

func TestReadSTLTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, testModel()); err != nil {
		t.Fatal(err)
	}
	short := buf.Bytes()[:buf.Len()-25]
	if _, err := ReadSTL(bytes.NewReader(short)); err == nil {
		t.Error("truncated stream must fail")
	}
}

func TestCreateSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	if err := CreateSTL(path, testModel()); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ReadSTL(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("read %d triangles, want 4", len(got))
	}
}
