package transcript

import "fmt"

// Timestamp is a VTT timestamp in canonical "HH:MM:SS.mmm" form.
// Values are only ever constructed from cue-timing lines the parser has
// already validated, so conversions assume the canonical shape.
type Timestamp string

// Seconds converts the timestamp to seconds since the start of the
// recording, with millisecond precision.
func (t Timestamp) Seconds() float64 {
	h, m, s, ms := t.Fields()
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}

// Fields returns the hour, minute, second and millisecond components.
func (t Timestamp) Fields() (h, m, s, ms int) {
	return atoi(string(t)[0:2]), atoi(string(t)[3:5]), atoi(string(t)[6:8]), atoi(string(t)[9:12])
}

// FormatSeconds renders a seconds value back into canonical form,
// rounding to the nearest millisecond.
func FormatSeconds(sec float64) Timestamp {
	total := int(sec*1000 + 0.5)
	ms := total % 1000
	total /= 1000
	s := total % 60
	total /= 60
	m := total % 60
	h := total / 60
	return Timestamp(fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms))
}

// atoi converts a digit string to int without error handling; the
// cue-timing regex pre-validates the format.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
