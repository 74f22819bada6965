// Package events phát các sự kiện thay đổi dữ liệu tới subscriber SSE và MQTT.
package events

import (
	"slices"
	"sync"
	"time"
)

// Các loại sự kiện
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
	TaskCreated = "task.created"
	TaskUpdated = "task.updated"
	TaskDeleted = "task.deleted"
)

type Event struct {
	Type string    `json:"type"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

// Publisher nhận sự kiện; Publish không được chặn request đang xử lý
type Publisher interface {
	Publish(ev Event)
}

// Multi gửi sự kiện tới nhiều publisher
type Multi []Publisher

func (m Multi) Publish(ev Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ev)
		}
	}
}

// Subscriber nhận sự kiện qua kênh C
type Subscriber struct {
	ID string
	C  chan Event
}

// Hub phân phối sự kiện tới các subscriber đang kết nối
type Hub struct {
	mu     sync.Mutex
	subs   []*Subscriber
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{buffer: buffer}
}

func (h *Hub) Subscribe(id string) *Subscriber {
	s := &Subscriber{ID: id, C: make(chan Event, h.buffer)}
	h.mu.Lock()
	h.subs = append(h.subs, s)
	h.mu.Unlock()
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx := slices.Index(h.subs, s)
	if idx == -1 {
		return
	}
	h.subs[idx] = nil
	h.subs = slices.Delete(h.subs, idx, idx+1)
	close(s.C)
}

// Publish gửi không chặn; subscriber đầy bộ đệm sẽ bị bỏ qua sự kiện này
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		select {
		case s.C <- ev:
		default:
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close ngắt tất cả subscriber, dùng khi tắt ứng dụng
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		close(s.C)
	}
	h.subs = nil
}
