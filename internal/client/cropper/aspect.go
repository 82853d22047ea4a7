package cropper

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAspectRatio accepts "", "free", "NaN" (free-form, returned as 0),
// a "w:h" pair such as "16:9", or a positive decimal.
func ParseAspectRatio(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "free", "nan":
		return 0, nil
	}

	if w, h, ok := strings.Cut(s, ":"); ok {
		wf, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
		hf, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err1 != nil || err2 != nil || wf <= 0 || hf <= 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q", s)
		}
		return wf / hf, nil
	}

	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r <= 0 {
		return 0, fmt.Errorf("invalid aspect ratio %q", s)
	}
	return r, nil
}

// FormatAspectRatio renders r for display; 0 is free-form.
func FormatAspectRatio(r float64) string {
	if r <= 0 {
		return "free"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
