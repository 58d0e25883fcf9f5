package syjon

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDecodeDayOfWeek(t *testing.T) {
	tests := []struct {
		style string
		want  time.Weekday
	}{
		{"left: 0%; top: 0%; height: 10%;", time.Monday},
		{"left: 14.28%; top: 38.46%; height: 76.92%;", time.Monday},
		{"left: 14.29%; top: 0%; height: 10%;", time.Tuesday},
		{"left: 28.58%; top: 0%; height: 10%;", time.Wednesday},
		{"left: 57.15%; top: 0%; height: 10%;", time.Friday},
		{"left: 85.71%; top: 0%; height: 10%;", time.Saturday},
		{"left: -7%; top: 0%; height: 10%;", time.Sunday},
		{"left:  42.86 %; top: 0%;", time.Thursday},
	}

	for _, tt := range tests {
		got, err := DecodeDayOfWeek(tt.style)
		if err != nil {
			t.Errorf("DecodeDayOfWeek(%q) returned error: %v", tt.style, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeDayOfWeek(%q) = %s, want %s", tt.style, got, tt.want)
		}
	}
}

func TestDecodeDayOfWeek_Invalid(t *testing.T) {
	styles := []string{
		"",
		"left: 12%",
		"top: 5%;",
		"left: abc%; top: 0%;",
		"left: 1,5%; top: 0%;",
		"left: NaN%; top: 0%;",
		"left: 85.72%; top: 0%;",
		"left: -20%; top: 0%;",
	}

	for _, style := range styles {
		if _, err := DecodeDayOfWeek(style); !errors.Is(err, ErrParse) {
			t.Errorf("DecodeDayOfWeek(%q) error = %v, want ErrParse", style, err)
		}
	}
}

func TestDecodeStartTime(t *testing.T) {
	tests := []struct {
		style string
		want  TimeOfDay
	}{
		{"left: 0%; top: 0%; height: 10%;", TimeOfDay{8, 0}},
		{"left: 14.28%; top: 38.46%; height: 76.92%;", TimeOfDay{13, 0}},
		{"left: 0%; top: 13.4615%; height: 10%;", TimeOfDay{9, 45}},
		{"left: 0%; top: 26.9231%; height: 10%;", TimeOfDay{11, 30}},
		{"left: 0%; top: 3.2051%; height: 10%;", TimeOfDay{8, 25}},
		// 08:07 snaps down to 08:05
		{"left: 0%; top: 0.897436%; height: 10%;", TimeOfDay{8, 5}},
		{"left: 0%; top: 100%; height: 0%;", TimeOfDay{21, 0}},
	}

	for _, tt := range tests {
		got, err := DecodeStartTime(tt.style)
		if err != nil {
			t.Errorf("DecodeStartTime(%q) returned error: %v", tt.style, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeStartTime(%q) = %s, want %s", tt.style, got, tt.want)
		}
	}
}

func TestDecodeStartTime_Invalid(t *testing.T) {
	styles := []string{
		"left: 0%; height: 10%;",
		"left: 0%; top: 5%",
		"left: 0%; top: five%; height: 10%;",
		"left: 0%; top: -5%; height: 10%;",
		"left: 0%; top: 130%; height: 10%;",
		"left: 0%; top: 100.01%; height: 10%;",
		"left: 0%; top: 1e300%; height: 10%;",
	}

	for _, style := range styles {
		if _, err := DecodeStartTime(style); !errors.Is(err, ErrParse) {
			t.Errorf("DecodeStartTime(%q) error = %v, want ErrParse", style, err)
		}
	}
}

func TestDecodeStartTime_MinutesAreFiveMinuteSteps(t *testing.T) {
	for offset := 0.0; offset <= 100; offset += 0.37 {
		style := fmt.Sprintf("left: 0%%; top: %.4f%%; height: 10%%;", offset)
		got, err := DecodeStartTime(style)
		if err != nil {
			t.Fatalf("DecodeStartTime(%q) returned error: %v", style, err)
		}
		if got.Minute%5 != 0 || got.Minute < 0 || got.Minute >= 60 {
			t.Fatalf("DecodeStartTime(%q) = %s, minutes not a five minute step", style, got)
		}
		if got.Hour < GridStartHour {
			t.Fatalf("DecodeStartTime(%q) = %s, before the start of the grid", style, got)
		}
	}
}

func TestDecodeLength(t *testing.T) {
	tests := []struct {
		style string
		want  time.Duration
	}{
		{"left: 14.28%; top: 38.46%; height: 76.92%;", 10 * time.Hour},
		{"left: 0%; top: 0%; height: 11.5385%;", 90 * time.Minute},
		{"left: 0%; top: 0%; height: 15.3846%;", 2 * time.Hour},
		{"left: 0%; top: 0%; height: 0%;", 0},
		{"left: 0%; top: 0%; height: 100%;", 13 * time.Hour},
	}

	for _, tt := range tests {
		got, err := DecodeLength(tt.style)
		if err != nil {
			t.Errorf("DecodeLength(%q) returned error: %v", tt.style, err)
			continue
		}
		if diff := got - tt.want; diff < -time.Minute || diff > time.Minute {
			t.Errorf("DecodeLength(%q) = %s, want about %s", tt.style, got, tt.want)
		}
	}
}

func TestDecodeLength_Invalid(t *testing.T) {
	styles := []string{
		"left: 0%; top: 0%;",
		"left: 0%; top: 0%; height: 10",
		"left: 0%; top: 0%; height: -1%;",
		"left: 0%; top: 0%; height: x%;",
		"left: 0%; top: 0%; height: 120%;",
		"left: 0%; top: 0%; height: 1e300%;",
	}

	for _, style := range styles {
		if _, err := DecodeLength(style); !errors.Is(err, ErrParse) {
			t.Errorf("DecodeLength(%q) error = %v, want ErrParse", style, err)
		}
	}
}

func TestRoundToFiveMinutes(t *testing.T) {
	tests := []struct {
		hours float64
		want  TimeOfDay
	}{
		{8, TimeOfDay{8, 0}},
		{9.76, TimeOfDay{9, 45}},
		{12.999, TimeOfDay{13, 0}},
		{14.04, TimeOfDay{14, 0}},
		{14.05, TimeOfDay{14, 5}},
	}

	for _, tt := range tests {
		if got := roundToFiveMinutes(tt.hours); got != tt.want {
			t.Errorf("roundToFiveMinutes(%v) = %s, want %s", tt.hours, got, tt.want)
		}
	}
}
