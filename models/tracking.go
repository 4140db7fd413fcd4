package models

// TrackingStep is one stage of a shipment timeline.
type TrackingStep struct {
	Status    string `json:"status"`
	Location  string `json:"location,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current,omitempty"`
}

// TrackingResponse is the envelope of the upstream tracking endpoint.
type TrackingResponse struct {
	Tracking      []TrackingStep `json:"tracking"`
	CurrentStatus string         `json:"current_status,omitempty"`
}

// DisplayTimestamp returns the step timestamp, or "Pending" for steps that
// have not happened yet.
func (s TrackingStep) DisplayTimestamp() string {
	if s.Timestamp == "" {
		return "Pending"
	}
	return s.Timestamp
}

// Canonical shipment stages and the locations the upstream API attaches to
// them when it synthesizes a timeline.
var (
	TimelineStages    = []string{"Order Placed", "Packaging", "Shipped", "Out for Delivery", "Delivered"}
	TimelineLocations = []string{"Origin Facility", "Sorting Center", "Regional Hub", "Delivery Station", "Customer"}
)

// NormalizeTimeline marks the first incomplete step as the current one and
// clears any other current flags, keeping the sequence invariant: completed
// steps, then at most one current step, then pending steps.
func NormalizeTimeline(steps []TrackingStep) []TrackingStep {
	marked := false
	for i := range steps {
		steps[i].Current = false
		if !marked && !steps[i].Completed {
			steps[i].Current = true
			marked = true
		}
	}
	return steps
}

// stageIndex maps an order status to the last completed timeline stage.
// Cancelled and unknown statuses map to -1: nothing completed.
func stageIndex(status string) int {
	switch status {
	case StatusOrdered:
		return 0
	case StatusPackaging:
		return 1
	case StatusShipped:
		return 2
	case StatusDelivered:
		return 4
	}
	return -1
}

// SynthesizeTimeline builds the five-stage timeline for an order status,
// used when a detail response carries no timeline of its own. Completed
// steps precede the single current step, which precedes pending steps.
func SynthesizeTimeline(status string) []TrackingStep {
	idx := stageIndex(status)
	steps := make([]TrackingStep, 0, len(TimelineStages))
	for i, stage := range TimelineStages {
		steps = append(steps, TrackingStep{
			Status:    stage,
			Location:  TimelineLocations[i],
			Completed: i <= idx,
			Current:   i == idx+1 && idx < len(TimelineStages)-1,
		})
	}
	return steps
}
