package datetime

import (
	"testing"
	"time"
)

func TestNow(t *testing.T) {
	fixed := time.Date(2024, 7, 4, 16, 20, 45, 0, time.UTC)
	clock := WithClock(func() time.Time { return fixed })

	testCases := []struct {
		zone string
		want string
	}{
		{"", "2024-07-04 16:20 utc"},
		{"utc", "2024-07-04 16:20 utc"},
		{"America/New_York", "2024-07-04 12:20 America/New_York"},
		{"UTC+2", "2024-07-04 18:20 UTC+2"},
	}
	for _, tc := range testCases {
		d, err := Now(tc.zone, clock)
		if err != nil {
			t.Fatalf("Now(%q) unexpected error: %v", tc.zone, err)
		}
		if d.String() != tc.want {
			t.Errorf("Now(%q) = %q, want %q", tc.zone, d.String(), tc.want)
		}
	}

	if _, err := Now("local", clock); !IsInvalidZone(err) {
		t.Errorf("Now(local): expected invalid zone, got %v", err)
	}
	if _, err := Now("utc"); err != nil {
		t.Errorf("Now with the system clock failed: %v", err)
	}
}

func TestCreateFromEpoch(t *testing.T) {
	fromSeconds, err := CreateFromTimestamp(1704103200, "utc")
	if err != nil {
		t.Fatalf("CreateFromTimestamp unexpected error: %v", err)
	}
	if fromSeconds.DateTimeString() != "2024-01-01 10:00" {
		t.Errorf("CreateFromTimestamp = %q", fromSeconds.DateTimeString())
	}

	fromMillis, err := CreateFromMilliSecondsSinceEpoch(1704103200999, "Asia/Kolkata")
	if err != nil {
		t.Fatalf("CreateFromMilliSecondsSinceEpoch unexpected error: %v", err)
	}
	if fromMillis.DateTimeString() != "2024-01-01 15:30" {
		t.Errorf("CreateFromMilliSecondsSinceEpoch = %q", fromMillis.DateTimeString())
	}
	if !fromMillis.IsSame(fromSeconds) {
		t.Error("sub-minute precision should be dropped")
	}

	// year 10000
	if _, err := CreateFromTimestamp(253402300800, "utc"); !IsMalformed(err) {
		t.Errorf("out of range epoch: expected malformed, got %v", err)
	}
	if _, err := CreateFromTimestamp(0, "local"); !IsInvalidZone(err) {
		t.Errorf("local zone: expected invalid zone, got %v", err)
	}
}

func TestCreateFromCodesAndValues(t *testing.T) {
	byCodes, err := CreateFromCodes("20240229", "2359", "utc")
	if err != nil {
		t.Fatalf("CreateFromCodes unexpected error: %v", err)
	}
	byValues, err := CreateFromValues("2024-02-29", "23:59", "utc")
	if err != nil {
		t.Fatalf("CreateFromValues unexpected error: %v", err)
	}
	if !byCodes.Equals(byValues) {
		t.Errorf("%s != %s", byCodes, byValues)
	}

	// codes and values round trip
	again, err := CreateFromCodes(byValues.DateCode(), byValues.TimeCode(), byValues.Zone())
	if err != nil || !again.Equals(byValues) {
		t.Errorf("code round trip = %v, %v", again, err)
	}
	again, err = CreateFromValues(byCodes.DateValue(), byCodes.TimeValue(), byCodes.Zone())
	if err != nil || !again.Equals(byCodes) {
		t.Errorf("value round trip = %v, %v", again, err)
	}

	testCases := []struct {
		name  string
		build func() (*DateTime, error)
		check func(error) bool
		field string
	}{
		{"short date code", func() (*DateTime, error) { return CreateFromCodes("2024022", "1000", "utc") }, IsMalformed, "dateCode"},
		{"time code with colon", func() (*DateTime, error) { return CreateFromCodes("20240229", "10:0", "utc") }, IsMalformed, "timeCode"},
		{"impossible code", func() (*DateTime, error) { return CreateFromCodes("20230229", "1000", "utc") }, IsInvalidDate, "value"},
		{"date value slashes", func() (*DateTime, error) { return CreateFromValues("2024/02/29", "10:00", "utc") }, IsMalformed, "dateValue"},
		{"time value seconds", func() (*DateTime, error) { return CreateFromValues("2024-02-29", "10:00:00", "utc") }, IsMalformed, "timeValue"},
		{"impossible value", func() (*DateTime, error) { return CreateFromValues("2024-04-31", "10:00", "utc") }, IsInvalidDate, "value"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			if !tc.check(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			if got := Field(err); got != tc.field {
				t.Errorf("Field(err) = %q, want %q", got, tc.field)
			}
		})
	}
}

func TestValidateFunctionsReportBooleans(t *testing.T) {
	testCases := []struct {
		name string
		got  bool
		want bool
	}{
		{"datetime ok", ValidateDateTimeFormat("2024-02-29 12:00"), true},
		{"datetime bad day", ValidateDateTimeFormat("2024-02-30 12:00"), false},
		{"datetime bad shape", ValidateDateTimeFormat("2024-02-28"), false},
		{"date ok", ValidateDateFormat("2024-02-29"), true},
		{"date non-leap", ValidateDateFormat("2023-02-29"), false},
		{"date shape", ValidateDateFormat("20240229"), false},
		{"time ok", ValidateTimeFormat("23:59"), true},
		{"time 24:00", ValidateTimeFormat("24:00"), false},
		{"time shape", ValidateTimeFormat("9:00"), false},
		{"zone IANA", ValidateTimeZone("Europe/Berlin"), true},
		{"zone utc", ValidateTimeZone("UTC"), true},
		{"zone max east", ValidateTimeZone("UTC+14:00"), true},
		{"zone past east", ValidateTimeZone("UTC+14:01"), false},
		{"zone local", ValidateTimeZone("local"), false},
		{"zone empty", ValidateTimeZone(""), false},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}
