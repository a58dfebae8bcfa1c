package links

import "testing"

const token = "0b9fdd3c-6a64-4b0a-9c93-123456789abc"

func TestWebURLs(t *testing.T) {
	b := NewBuilder("https://zascript.com", "")

	if got, want := b.EditURL(token), "https://zascript.com/edit/"+token; got != want {
		t.Errorf("EditURL = %q, want %q", got, want)
	}
	if got, want := b.ScanURL(token), "https://zascript.com/scan/"+token; got != want {
		t.Errorf("ScanURL = %q, want %q", got, want)
	}
}

func TestMobileURLsUnconfigured(t *testing.T) {
	b := NewBuilder("https://zascript.com", "")

	if got := b.MobileEditURL(token); got != "" {
		t.Errorf("MobileEditURL = %q, want empty", got)
	}
	if got := b.MobileScanURL(token); got != "" {
		t.Errorf("MobileScanURL = %q, want empty", got)
	}
}

func TestMobileURLsConfigured(t *testing.T) {
	b := NewBuilder("https://zascript.com", "https://m.zascript.com")

	if got, want := b.MobileEditURL(token), "https://m.zascript.com/edit/"+token; got != want {
		t.Errorf("MobileEditURL = %q, want %q", got, want)
	}
	if got, want := b.MobileScanURL(token), "https://m.zascript.com/scan/"+token; got != want {
		t.Errorf("MobileScanURL = %q, want %q", got, want)
	}
}
