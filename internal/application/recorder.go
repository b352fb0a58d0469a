package application

import "context"

// Recorder receives business outcomes for metrics. Implementations must be
// safe for concurrent use.
type Recorder interface {
	RecordRoomSearch(ctx context.Context, found bool)
	RecordRoomBooking(ctx context.Context, status string)
	RecordPartyBooking(ctx context.Context, participants int)
	RecordCommonSlotQuery(ctx context.Context, cacheHit bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordRoomSearch(context.Context, bool)      {}
func (noopRecorder) RecordRoomBooking(context.Context, string)   {}
func (noopRecorder) RecordPartyBooking(context.Context, int)     {}
func (noopRecorder) RecordCommonSlotQuery(context.Context, bool) {}

func defaultRecorder(recorder Recorder) Recorder {
	if recorder != nil {
		return recorder
	}
	return noopRecorder{}
}
