package device

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      bool
	}{
		{
			name:      "iphone safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			want:      true,
		},
		{
			name:      "android chrome",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			want:      true,
		},
		{
			name:      "ipad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15",
			want:      true,
		},
		{
			name:      "chrome on ios",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) CriOS/119.0.6045.109",
			want:      true,
		},
		{
			name:      "opera mini",
			userAgent: "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80) Presto/2.12 Version/12.16",
			want:      true,
		},
		{
			name:      "blackberry",
			userAgent: "BlackBerry9700/5.0.0.862 Profile/MIDP-2.1 Configuration/CLDC-1.1",
			want:      true,
		},
		{
			name:      "uppercase token still matches",
			userAgent: "SOMETHING ANDROID SOMETHING",
			want:      true,
		},
		{
			name:      "desktop chrome on windows",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			want:      false,
		},
		{
			name:      "desktop firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			want:      false,
		},
		{
			name:      "curl",
			userAgent: "curl/8.4.0",
			want:      false,
		},
		{
			name:      "empty user agent",
			userAgent: "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMobile(tt.userAgent); got != tt.want {
				t.Errorf("IsMobile(%q) = %v, want %v", tt.userAgent, got, tt.want)
			}
		})
	}
}
