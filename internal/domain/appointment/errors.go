package appointment

import "fmt"

// ===============================
// Erros tipados do motor de agenda
// ===============================

// ValidationError: entrada malformada, detectada antes de tocar o banco.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func ErrValidation(msg string) error {
	return &ValidationError{msg: msg}
}

// SlotUnavailableError: o intervalo pedido conflita com outro agendamento
// ativo ou cai fora da janela / dentro da pausa do artista. Recuperável:
// o chamador consulta os slots de novo e tenta outro horário.
type SlotUnavailableError struct {
	msg string
}

func (e *SlotUnavailableError) Error() string { return e.msg }

func ErrSlotUnavailable(msg string) error {
	if msg == "" {
		msg = "o horário solicitado não está disponível"
	}
	return &SlotUnavailableError{msg: msg}
}

// InvalidTransitionError: operação de ciclo de vida a partir de um
// status terminal ou não permitido.
type InvalidTransitionError struct {
	From   Status
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transição %q não permitida a partir do status %q", e.Action, e.From)
}

func ErrInvalidTransition(from Status, action string) error {
	return &InvalidTransitionError{From: from, Action: action}
}

// NotFoundError: artista ou agendamento inexistente.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado", e.Entity)
}

func ErrNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}
