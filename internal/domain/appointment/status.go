package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// IsActive: conta para conflito de horário. Scheduled e confirmed
// são dois rótulos da mesma classe; cancelados e no-show liberam o slot.
func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

func (s Status) Valid() bool {
	return s.IsActive() || s.IsTerminal()
}

// ActiveStatuses na forma usada pelas queries.
func ActiveStatuses() []string {
	return []string{string(StatusScheduled), string(StatusConfirmed)}
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Guardas de transição
// ===============================

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return ErrInvalidTransition(current, "confirm")
	}
	return nil
}

func CanReschedule(current Status) error {
	if !current.IsActive() {
		return ErrInvalidTransition(current, "reschedule")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.IsActive() {
		return ErrInvalidTransition(current, "cancel")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.IsActive() {
		return ErrInvalidTransition(current, "complete")
	}
	return nil
}

func CanNoShow(current Status) error {
	if !current.IsActive() {
		return ErrInvalidTransition(current, "no_show")
	}
	return nil
}

// CanPatch: atualização só de campos (sem mudar intervalo) vale para
// qualquer status não terminal.
func CanPatch(current Status) error {
	if current.IsTerminal() {
		return ErrInvalidTransition(current, "update")
	}
	return nil
}
