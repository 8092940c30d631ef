package models

type BookingStatus string

const (
	StatusPending              BookingStatus = "pending"
	StatusAwaitingVerification BookingStatus = "awaiting_verification"
	StatusPaid                 BookingStatus = "paid"
	StatusCompleted            BookingStatus = "completed"
	StatusCancelled            BookingStatus = "cancelled"
)

var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusAwaitingVerification,
	StatusPaid,
	StatusCompleted,
	StatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, v := range AllBookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label is the Indonesian display text for the status.
func (s BookingStatus) Label() string {
	switch s {
	case StatusPaid:
		return "Lunas"
	case StatusAwaitingVerification:
		return "Menunggu Verifikasi Pembayaran"
	case StatusCompleted:
		return "Selesai"
	case StatusCancelled:
		return "Dibatalkan"
	default:
		return "Pending"
	}
}

// BookingEvent names an automated step of the booking workflow.
type BookingEvent string

const (
	EventProofUploaded    BookingEvent = "proof_uploaded"
	EventPaymentConfirmed BookingEvent = "payment_confirmed"
)

// automatedTransitions lists, per event, the allowed source states and the
// resulting state. Admin overrides do not consult this table.
var automatedTransitions = map[BookingEvent]map[BookingStatus]BookingStatus{
	EventProofUploaded: {
		StatusPending:              StatusAwaitingVerification,
		StatusAwaitingVerification: StatusAwaitingVerification,
		StatusPaid:                 StatusAwaitingVerification,
		StatusCompleted:            StatusAwaitingVerification,
		StatusCancelled:            StatusAwaitingVerification,
	},
	EventPaymentConfirmed: {
		StatusAwaitingVerification: StatusPaid,
	},
}

// NextStatus applies an automated event. ok is false when the event is not
// allowed from the current state.
func NextStatus(from BookingStatus, ev BookingEvent) (BookingStatus, bool) {
	to, ok := automatedTransitions[ev][from]
	return to, ok
}

// InitialStatus is the status of a booking at creation time.
func InitialStatus(hasProof bool) BookingStatus {
	if hasProof {
		return StatusAwaitingVerification
	}
	return StatusPending
}
