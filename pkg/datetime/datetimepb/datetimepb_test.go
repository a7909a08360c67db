package datetimepb

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/msto63/chronos/pkg/datetime"
)

func TestRoundTrip(t *testing.T) {
	d, err := datetime.New("2024-03-10 03:15", "America/Los_Angeles")
	if err != nil {
		t.Fatalf("New unexpected error: %v", err)
	}

	ts := ToProto(d)
	if ts.GetSeconds() != d.Timestamp() {
		t.Errorf("seconds = %d, want %d", ts.GetSeconds(), d.Timestamp())
	}

	wire, err := proto.Marshal(ts)
	if err != nil {
		t.Fatalf("proto.Marshal unexpected error: %v", err)
	}
	var decoded timestamppb.Timestamp
	if err := proto.Unmarshal(wire, &decoded); err != nil {
		t.Fatalf("proto.Unmarshal unexpected error: %v", err)
	}

	back, err := FromProto(&decoded, "America/Los_Angeles")
	if err != nil {
		t.Fatalf("FromProto unexpected error: %v", err)
	}
	if !back.Equals(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	berlin, err := FromProto(&decoded, "Europe/Berlin")
	if err != nil {
		t.Fatalf("FromProto unexpected error: %v", err)
	}
	if !berlin.IsSame(d) || berlin.Equals(d) {
		t.Errorf("Berlin rendering %s should be the same instant but not equal", berlin)
	}
}

func TestFromProtoRejects(t *testing.T) {
	if _, err := FromProto(nil, "utc"); !datetime.IsRequired(err) {
		t.Errorf("nil timestamp: got %v", err)
	}
	if _, err := FromProto(&timestamppb.Timestamp{Seconds: 0, Nanos: -1}, "utc"); !datetime.IsInvalidArgument(err) {
		t.Errorf("invalid timestamp: got %v", err)
	}
	if _, err := FromProto(timestamppb.Now(), "local"); !datetime.IsInvalidZone(err) {
		t.Errorf("local zone: got %v", err)
	}
	if ToProto(nil) != nil {
		t.Error("ToProto(nil) should be nil")
	}
}
