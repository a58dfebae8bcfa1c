package links

import "fmt"

// Builder derives the canonical edit/scan URLs for a profile token. The
// mobile variants return "" when no mobile base URL is configured.
type Builder struct {
	BaseURL       string
	MobileBaseURL string
}

func NewBuilder(baseURL, mobileBaseURL string) *Builder {
	return &Builder{BaseURL: baseURL, MobileBaseURL: mobileBaseURL}
}

func (b *Builder) EditURL(token string) string {
	return fmt.Sprintf("%s/edit/%s", b.BaseURL, token)
}

func (b *Builder) ScanURL(token string) string {
	return fmt.Sprintf("%s/scan/%s", b.BaseURL, token)
}

func (b *Builder) MobileEditURL(token string) string {
	if b.MobileBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/edit/%s", b.MobileBaseURL, token)
}

func (b *Builder) MobileScanURL(token string) string {
	if b.MobileBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/scan/%s", b.MobileBaseURL, token)
}
