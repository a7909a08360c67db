// File: datetimepb.go
// Title: Protobuf Timestamp Bridge
// Description: Converts DateTime values to and from
//              google.protobuf.Timestamp for use in protobuf messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

// Package datetimepb converts between DateTime and protobuf timestamps.
// Timestamps carry no zone, so the zone is supplied when converting back.
package datetimepb

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/pkg/datetime"
)

// ToProto returns the instant of d as a protobuf timestamp
func ToProto(d *datetime.DateTime) *timestamppb.Timestamp {
	if d == nil {
		return nil
	}
	return timestamppb.New(d.Time())
}

// FromProto renders ts in zone. Sub-minute precision is dropped.
func FromProto(ts *timestamppb.Timestamp, zone string, opts ...datetime.Option) (*datetime.DateTime, error) {
	if ts == nil {
		return nil, mdwerrors.Required(mdwerrors.ModuleDatetime, "FromProto", "timestamp")
	}
	if err := ts.CheckValid(); err != nil {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleDatetime, "FromProto", "timestamp", ts.String(), err.Error())
	}
	return datetime.CreateFromTimestamp(ts.GetSeconds(), zone, opts...)
}
