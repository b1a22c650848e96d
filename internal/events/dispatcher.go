package events

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	pub   Publisher
	queue chan Event
}

func NewDispatcher(pub Publisher) *Dispatcher {
	d := &Dispatcher{
		pub:   pub,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.pub.Publish(ctx, ev); err != nil {
			log.Println("events error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	// dispatcher nil = eventos desligados
	if d == nil {
		return
	}

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos o evento (nunca quebrar API)
		log.Println("events queue full, dropping event")
	}
}
