package events

import (
	"net/url"
	"testing"
	"time"
)

type recorder struct{ got []Event }

func (r *recorder) Publish(ev Event) { r.got = append(r.got, ev) }

func TestHubFanOut(t *testing.T) {
	h := NewHub(4)
	a := h.Subscribe("a")
	b := h.Subscribe("b")

	h.Publish(Event{Type: TaskCreated, Data: "x", At: time.Now()})

	for _, s := range []*Subscriber{a, b} {
		select {
		case ev := <-s.C:
			if ev.Type != TaskCreated {
				t.Errorf("%s got %q", s.ID, ev.Type)
			}
		default:
			t.Errorf("%s received nothing", s.ID)
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe("a")
	h.Unsubscribe(s)

	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
	if _, ok := <-s.C; ok {
		t.Fatal("channel should be closed")
	}
	// gọi lại không được panic
	h.Unsubscribe(s)
	h.Publish(Event{Type: UserCreated})
}

func TestHubDropsWhenFull(t *testing.T) {
	h := NewHub(1)
	s := h.Subscribe("slow")

	h.Publish(Event{Type: TaskCreated})
	h.Publish(Event{Type: TaskUpdated})

	if ev := <-s.C; ev.Type != TaskCreated {
		t.Errorf("first event = %q", ev.Type)
	}
	select {
	case ev := <-s.C:
		t.Errorf("unexpected event %q", ev.Type)
	default:
	}
}

func TestMulti(t *testing.T) {
	r1, r2 := &recorder{}, &recorder{}
	Multi{r1, nil, r2}.Publish(Event{Type: UserDeleted})
	if len(r1.got) != 1 || len(r2.got) != 1 {
		t.Fatalf("got %d and %d events", len(r1.got), len(r2.got))
	}
}

func TestTopicFromURL(t *testing.T) {
	tests := map[string]string{
		"tcp://broker:1883":          "tasks",
		"tcp://broker:1883/":         "tasks",
		"tcp://broker:1883/todo":     "todo",
		"tcp://u:p@broker:1883/a/b/": "a/b",
	}
	for raw, want := range tests {
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if got := TopicFromURL(u); got != want {
			t.Errorf("TopicFromURL(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestHubClose(t *testing.T) {
	h := NewHub(1)
	a := h.Subscribe("a")
	b := h.Subscribe("b")
	h.Close()

	for _, s := range []*Subscriber{a, b} {
		if _, ok := <-s.C; ok {
			t.Errorf("%s channel should be closed", s.ID)
		}
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d", h.Len())
	}
}
