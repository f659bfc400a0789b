package availability

import (
	"slices"
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	"spa/shared/timezone"
)

// FreeWindows returns the parts of open during which the resource is neither booked nor
// blocked, in ascending order.
func FreeWindows(
	open timezone.Interval,
	resource ResourceType,
	id string,
	bookings []bookingModel.Booking,
	blocks []blockModel.BlockedTime,
) []timezone.Interval {
	open = open.UTC()
	if !open.Valid() {
		return nil
	}

	busy := make([]timezone.Interval, 0, len(bookings)+len(blocks))

	for _, booking := range ForResource(bookings, resource, id) {
		busy = append(busy, booking.Interval())
	}

	for _, block := range blocks {
		if !BlockApplies(block, resource, id) {
			continue
		}

		if block.IsFullDay() {
			start := timezone.StartOfDayUTC(block.BlockDate)
			busy = append(busy, timezone.Interval{Start: start, End: start.AddDate(0, 0, 1)})

			continue
		}

		busy = append(busy, block.Interval())
	}

	return subtract(open, merge(open, busy))
}

// merge clips busy to open and joins overlapping or touching intervals.
func merge(open timezone.Interval, busy []timezone.Interval) []timezone.Interval {
	slices.SortFunc(busy, func(a, b timezone.Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := make([]timezone.Interval, 0, len(busy))

	for _, interval := range busy {
		if !interval.End.After(open.Start) || !interval.Start.Before(open.End) {
			continue
		}

		if interval.Start.Before(open.Start) {
			interval.Start = open.Start
		}

		if interval.End.After(open.End) {
			interval.End = open.End
		}

		if len(merged) == 0 {
			merged = append(merged, interval)

			continue
		}

		last := &merged[len(merged)-1]
		if !interval.Start.After(last.End) {
			if interval.End.After(last.End) {
				last.End = interval.End
			}

			continue
		}

		merged = append(merged, interval)
	}

	return merged
}

func subtract(open timezone.Interval, merged []timezone.Interval) []timezone.Interval {
	free := make([]timezone.Interval, 0, len(merged)+1)
	cursor := open.Start

	for _, interval := range merged {
		if interval.Start.After(cursor) {
			free = append(free, timezone.Interval{Start: cursor, End: interval.Start})
		}

		if interval.End.After(cursor) {
			cursor = interval.End
		}
	}

	if open.End.After(cursor) {
		free = append(free, timezone.Interval{Start: cursor, End: open.End})
	}

	return free
}
