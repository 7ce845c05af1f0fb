package section

import (
	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/desc"
)

// WriteTime writes the Time section (§4.6): Int64 epoch, Int64
// ticks-per-day, Int32 time-field count, then that many Int32 offsets
// (the first offset is the event-time field, §4.7). Per Open Question (ii)
// this is written even when timeFieldOffsets is empty, so headers with
// zero time fields stay byte-identical to the reference.
func WriteTime(fc *codec.FormattedCodec, scale desc.TimeScale, timeFieldOffsets []int) error {
	return WriteSection(fc, IDTime, func(fc *codec.FormattedCodec) error {
		if err := fc.WriteInt64(scale.EpochDays); err != nil {
			return err
		}
		if err := fc.WriteInt64(scale.TicksPerDay); err != nil {
			return err
		}
		if err := fc.WriteInt32(int32(len(timeFieldOffsets))); err != nil { //nolint:gosec
			return err
		}
		for _, off := range timeFieldOffsets {
			if err := fc.WriteInt32(int32(off)); err != nil { //nolint:gosec
				return err
			}
		}

		return nil
	})
}

// TimeSection holds the parsed contents of a Time section: the scale and
// the byte offsets of every time field, first offset being the event-time
// field.
type TimeSection struct {
	Scale            desc.TimeScale
	TimeFieldOffsets []int
}

// ReadTime parses a Time section payload of exactly h.PayloadSize bytes.
func ReadTime(fc *codec.FormattedCodec, h Header) (TimeSection, error) {
	before, err := fc.Pos()
	if err != nil {
		return TimeSection{}, err
	}

	epoch, err := fc.ReadInt64()
	if err != nil {
		return TimeSection{}, err
	}
	ticksPerDay, err := fc.ReadInt64()
	if err != nil {
		return TimeSection{}, err
	}
	count, err := fc.ReadInt32()
	if err != nil {
		return TimeSection{}, err
	}

	offsets := make([]int, count)
	for i := range offsets {
		off, err := fc.ReadInt32()
		if err != nil {
			return TimeSection{}, err
		}
		offsets[i] = int(off)
	}

	after, err := fc.Pos()
	if err != nil {
		return TimeSection{}, err
	}
	if err := checkOverrun(before, after, h.PayloadSize); err != nil {
		return TimeSection{}, err
	}

	return TimeSection{
		Scale:            desc.TimeScale{EpochDays: epoch, TicksPerDay: ticksPerDay},
		TimeFieldOffsets: offsets,
	}, nil
}
