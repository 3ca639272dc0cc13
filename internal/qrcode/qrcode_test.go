package qrcode

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestGenerate(t *testing.T) {
	data, err := Generate("http://localhost:8080/?table=abc")
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("not a png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Errorf("size = %v", b)
	}
}

func TestGenerateEmpty(t *testing.T) {
	if _, err := Generate(""); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("got %v, want ErrEmptyURL", err)
	}
}
