package state

import (
	"sync"
	"testing"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

func TestDispatchSnapshotIsolation(t *testing.T) {
	st := New(Default())
	st.Dispatch(SetFeed{Items: []content.Item{item("a")}})

	snap := st.State()
	snap.Content.Feed[0].Title = "mutated"

	if st.State().Content.Feed[0].Title == "mutated" {
		t.Errorf("snapshot mutation leaked into live state")
	}
}

func TestObserverSeesPostTransitionState(t *testing.T) {
	st := New(Default())

	var gotType ActionType
	var gotFeedLen int
	st.Attach(ObserverFunc(func(a Action, s State) {
		gotType = a.Type()
		gotFeedLen = len(s.Content.Feed)
	}))

	st.Dispatch(SetFeed{Items: []content.Item{item("a"), item("b")}})

	if gotType != ContentSetFeed {
		t.Errorf("observed action = %q, want %q", gotType, ContentSetFeed)
	}
	if gotFeedLen != 2 {
		t.Errorf("observer saw feed of %d, want post-transition 2", gotFeedLen)
	}
}

func TestObserversNotifiedInAttachOrder(t *testing.T) {
	st := New(Default())

	var order []string
	st.Attach(ObserverFunc(func(Action, State) { order = append(order, "first") }))
	st.Attach(ObserverFunc(func(Action, State) { order = append(order, "second") }))

	st.Dispatch(IncrementPage{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("notification order = %v", order)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	st := New(Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(IncrementPage{})
		}()
	}
	wg.Wait()

	if got := st.State().Content.Page; got != 51 {
		t.Errorf("page = %d, want 51 after 50 increments from 1", got)
	}
}

func TestUnknownIdsReduceToSameState(t *testing.T) {
	st := New(Default())
	before := st.State()
	st.Dispatch(ToggleFavorite{ID: "ghost"})
	after := st.State()

	if len(after.Content.Favorites) != len(before.Content.Favorites) {
		t.Errorf("favorites changed for unknown id")
	}
}
