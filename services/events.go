package services

// Event is what the kitchen/waiter realtime feed carries. Services publish,
// the websocket hub fans out; tests plug in NopEvents.
type Event struct {
	Kind     string `json:"kind"` // order_created | order_status | item_status | order_settled
	OrderID  uint   `json:"orderId,omitempty"`
	DetailID uint   `json:"detailId,omitempty"`
	TableID  *uint  `json:"tableId,omitempty"`
	Status   string `json:"status,omitempty"`
}

type Events interface {
	Publish(Event)
}

type NopEvents struct{}

func (NopEvents) Publish(Event) {}
