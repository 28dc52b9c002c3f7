package checkout

// Phase is the checkout session state. Transitions:
//
//	idle -> form_open -> submitting -> completed
//	                  \             \-> failed -> form_open (retry)
//	                   \-> cancelled
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseFormOpen   Phase = "form_open"
	PhaseSubmitting Phase = "submitting"
	PhaseCompleted  Phase = "completed"
	PhaseFailed     Phase = "failed"
	PhaseCancelled  Phase = "cancelled"
)
