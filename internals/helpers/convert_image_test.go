package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMakeThumbnailFitsBox(t *testing.T) {
	out, err := MakeThumbnail(pngBytes(t, 200, 100), 50)
	if err != nil {
		t.Fatalf("MakeThumbnail: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("format = %s, want jpeg", format)
	}
	if cfg.Width != 50 || cfg.Height != 25 {
		t.Fatalf("size = %dx%d, want 50x25", cfg.Width, cfg.Height)
	}
}

func TestMakeThumbnailRejectsGarbage(t *testing.T) {
	if _, err := MakeThumbnail([]byte("not an image"), 50); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"foto obra.jpg":        "foto_obra.jpg",
		"../../etc/passwd":     "passwd",
		`C:\Users\ana\pic.png`: "pic.png",
		"":                     "",
	}
	for in, want := range tests {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
