package fourier

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoTerms is returned when scheduling an empty term list.
	ErrNoTerms = errors.New("no terms to schedule")
	// ErrInvalidSchedule is returned for invalid schedule options.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// ScheduleOptions configure [GroupTerms].
type ScheduleOptions struct {
	// How long to show a group before adding the next one.
	PauseTime time.Duration
	// How long adding a group takes.
	AddTime time.Duration
	// Upper bound on the number of groups.
	MaxGroupsToDisplay int
	// Terms as returned by [Analyze]: sorted by decreasing amplitude.
	Terms []Term
}

// ScriptEntry is one keyframe of a reveal animation.
//
// Amplitudes are percentages of the total amplitude of all terms. Circles are
// revealed in term order, so "using" refers to terms[:UsingCircles], "adding"
// to the following AddingCircles terms, and "available" to the terms after
// those.
type ScriptEntry struct {
	// StartTime as a fraction of the total duration.
	Offset    float64
	StartTime time.Duration
	EndTime   time.Duration

	UsingCircles       int
	UsingAmplitude     float64
	AddingCircles      int
	AddingAmplitude    float64
	AvailableCircles   int
	AvailableAmplitude float64
}

// GroupTerms schedules the incremental reveal of terms in at most
// MaxGroupsToDisplay groups.
//
// Groups are formed greedily: terms are added to the current group until its
// amplitude exceeds the average amplitude that is left for each of the
// remaining groups. Large terms thus get groups of their own, while the long
// tail of small terms is grouped more and more coarsely. The last allowed
// group takes all remaining terms.
//
// Each group produces two entries, one adding its circles (lasting AddTime)
// and one pausing with them in place (lasting PauseTime). The first entry
// starts at offset 0 with no circles in use; a final copy of the last entry at
// offset 1 marks the end of the animation.
func GroupTerms(opts ScheduleOptions) ([]ScriptEntry, error) {
	if opts.MaxGroupsToDisplay < 1 {
		return nil, fmt.Errorf("%w: need at least one group, got %d", ErrInvalidSchedule, opts.MaxGroupsToDisplay)
	}
	if opts.PauseTime <= 0 || opts.AddTime <= 0 {
		return nil, fmt.Errorf("%w: pause time %v and add time %v must be positive",
			ErrInvalidSchedule, opts.PauseTime, opts.AddTime)
	}
	terms := opts.Terms
	n := len(terms)
	if n == 0 {
		return nil, ErrNoTerms
	}

	var total float64
	for _, t := range terms {
		total += t.Amplitude
	}
	here := make([]float64, n)
	// before[i] is the share of terms[:i], after[i] that of terms[i:].
	before := make([]float64, n+1)
	after := make([]float64, n+1)
	for i, t := range terms {
		if total > 0 {
			here[i] = 100 * t.Amplitude / total
		}
		before[i+1] = before[i] + here[i]
	}
	for i := n - 1; i >= 0; i-- {
		after[i] = after[i+1] + here[i]
	}

	var script []ScriptEntry
	durations := make([]time.Duration, 0, 2*opts.MaxGroupsToDisplay)
	remaining := opts.MaxGroupsToDisplay - 1
	cursor := 0
	for cursor < n {
		groupStart := cursor
		var adding float64
		for {
			adding += here[cursor]
			cursor++
			if cursor >= n {
				break
			}
			if remaining > 0 && adding > after[cursor]/float64(remaining) {
				break
			}
		}

		script = append(script,
			ScriptEntry{
				UsingCircles:       groupStart,
				UsingAmplitude:     before[groupStart],
				AddingCircles:      cursor - groupStart,
				AddingAmplitude:    adding,
				AvailableCircles:   n - cursor,
				AvailableAmplitude: after[cursor],
			},
			ScriptEntry{
				UsingCircles:       cursor,
				UsingAmplitude:     before[cursor],
				AvailableCircles:   n - cursor,
				AvailableAmplitude: after[cursor],
			},
		)
		durations = append(durations, opts.AddTime, opts.PauseTime)
		if remaining > 0 {
			remaining--
		}
	}

	var elapsed time.Duration
	for i := range script {
		script[i].StartTime = elapsed
		elapsed += durations[i]
		script[i].EndTime = elapsed
	}
	for i := range script {
		script[i].Offset = float64(script[i].StartTime) / float64(elapsed)
	}
	last := script[len(script)-1]
	last.Offset = 1
	last.StartTime = elapsed
	last.EndTime = elapsed
	script = append(script, last)
	return script, nil
}
