package flapwii

// Event is an audio intent raised by an update.
type Event uint8

const (
	EventFlap Event = 1 << iota
	EventScore
	EventHit
	EventFall
	EventTransition
)

var eventNames = map[Event]string{
	EventFlap:       "flap",
	EventScore:      "score",
	EventHit:        "hit",
	EventFall:       "fall",
	EventTransition: "transition",
}

// AllEvents lists every event in emit order.
var AllEvents = []Event{EventFlap, EventScore, EventHit, EventFall, EventTransition}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Events is the set of intents raised in one frame.
type Events uint8

// Has reports whether ev was raised.
func (e Events) Has(ev Event) bool {
	return e&Events(ev) != 0
}

func (e *Events) add(ev Event) {
	*e |= Events(ev)
}

// List returns the raised events in emit order.
func (e Events) List() []Event {
	var out []Event
	for _, ev := range AllEvents {
		if e.Has(ev) {
			out = append(out, ev)
		}
	}
	return out
}
