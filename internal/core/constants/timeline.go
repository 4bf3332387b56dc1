package constants

const (
	// Overlap grouping and group expansion
	GroupingGapPx          = 48.0
	SubTimelineMarginRatio = 0.3
	MinSubTimelineSpan     = MillisPerDay
	SliderResolution       = 5000
	SubTimelineMinWidthPx  = 320.0
	SubTimelineBufferPx    = 10.0

	// Life timeline window
	LookbackYears     = 20
	FutureWindowYears = 40
	TickStepYears     = 10

	// Terminal cells are mapped to pixels with this width when measuring the axis
	PxPerCell = 8.0
)

const (
	// Scale explainer
	MaxDots             = 360
	DotStepTarget       = 160
	DefaultStepTarget   = 260
	MaxEquivalents      = 5
	MinEquivalentCount  = 0.1
	MinInterestingValue = 0.001
	MaxInterestingValue = 1000.0
)
