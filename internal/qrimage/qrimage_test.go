package qrimage

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

const prefix = "data:image/png;base64,"

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDataURLIsEmbeddablePNG(t *testing.T) {
	url, err := DataURL("https://zascript.com/edit/0b9fdd3c-6a64-4b0a-9c93-123456789abc")
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("data URL prefix missing: %.40q", url)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(raw, pngMagic) {
		t.Fatalf("payload is not a PNG")
	}
}

func TestDataURLDeterministic(t *testing.T) {
	content := "https://zascript.com/edit/abc"
	first, err := DataURL(content)
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	second, err := DataURL(content)
	if err != nil {
		t.Fatalf("DataURL: %v", err)
	}
	if first != second {
		t.Error("same content rendered two different images")
	}
}
