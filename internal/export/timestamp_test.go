package export

import "testing"

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{59.999, "00:00:59,999"},
		{59.9996, "00:01:00,000"},
		{61.25, "00:01:01,250"},
		{3725.4, "01:02:05,400"},
		{-1.0, "00:00:00,000"},
	}
	for _, tc := range cases {
		if got := formatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
