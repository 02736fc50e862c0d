package adc

// ADC format constants.
const (
	MaxLiteralRun = 128   // Maximum plain-run length (control byte encodes 1..128).
	MaxCopyLength = 67    // Maximum copy length (long copy encodes 4..67).
	MaxDistance   = 65536 // Maximum back-reference distance (long copy, 16-bit value + 1).

	// windowRetain is how much decoded history the streaming Reader keeps
	// after compaction: every still-reachable back-reference plus one
	// maximum-length copy in flight.
	windowRetain = MaxDistance + MaxCopyLength
)
