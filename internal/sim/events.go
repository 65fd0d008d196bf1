package sim

type EventType int

const (
	EventPickupCollected EventType = iota
	EventGateOpened
	EventPortalTriggered
	EventObstacleHit // car pushed out of an obstacle
	EventModifierExpired
	EventWorldReset
)

func (t EventType) String() string {
	switch t {
	case EventPickupCollected:
		return "pickup_collected"
	case EventGateOpened:
		return "gate_opened"
	case EventPortalTriggered:
		return "portal_triggered"
	case EventObstacleHit:
		return "obstacle_hit"
	case EventModifierExpired:
		return "modifier_expired"
	case EventWorldReset:
		return "world_reset"
	}
	return "unknown"
}

// Event is a notification from the world. Fields that do not apply to the
// event type are left zero.
type Event struct {
	Type   EventType
	X, Z   float64 // where it happened
	Handle Handle
	Pickup PickupID
	Kind   PickupKind
	Name   string  // gate name
	Speed  float64 // speed lost to an obstacle hit
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, on the
// goroutine that advances the world.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventPickupCollected; t <= EventWorldReset; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
