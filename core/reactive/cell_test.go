package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	mu  sync.Mutex
	got []T
}

func (r *recorder[T]) observe(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
}

func (r *recorder[T]) values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.got...)
}

func TestCell_Value(t *testing.T) {
	c := New(1)
	assert.Equal(t, 1, c.Value())
	c.Set(2)
	assert.Equal(t, 2, c.Value())
}

func TestCell_SubscribeReplaysLatest(t *testing.T) {
	c := New("initial")
	c.Set("latest")

	var rec recorder[string]
	c.Subscribe(rec.observe)
	assert.Equal(t, []string{"latest"}, rec.values())
}

func TestCell_SetNotifiesEverySubscriberOnce(t *testing.T) {
	c := New(0)
	var a, b recorder[int]
	c.Subscribe(a.observe)
	c.Subscribe(b.observe)

	c.Set(1)
	c.Set(2)
	assert.Equal(t, []int{0, 1, 2}, a.values())
	assert.Equal(t, []int{0, 1, 2}, b.values())
}

func TestCell_SubscriptionOrder(t *testing.T) {
	c := New(0)
	var order []string
	c.Subscribe(func(int) { order = append(order, "first") })
	c.Subscribe(func(int) { order = append(order, "second") })
	c.Subscribe(func(int) { order = append(order, "third") })
	order = nil

	c.Set(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestCell_NoBuffering(t *testing.T) {
	c := New(0)
	c.Set(1)
	c.Set(2)
	c.Set(3)

	var rec recorder[int]
	c.Subscribe(rec.observe)
	assert.Equal(t, []int{3}, rec.values(), "missed values are not replayed")
}

func TestSubscription_Unsubscribe(t *testing.T) {
	c := New(0)
	var rec recorder[int]
	sub := c.Subscribe(rec.observe)
	require.Equal(t, 1, c.Len())

	sub.Unsubscribe()
	sub.Unsubscribe() // idempotent
	c.Set(1)

	assert.Equal(t, []int{0}, rec.values())
	assert.Equal(t, 0, c.Len())

	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Unsubscribe)
}

func TestSubscription_UnsubscribeFromObserver(t *testing.T) {
	c := New(0)
	var rec recorder[int]
	var sub *Subscription
	sub = c.Subscribe(func(v int) {
		rec.observe(v)
		if v == 1 {
			sub.Unsubscribe()
		}
	})

	c.Set(1)
	c.Set(2)
	assert.Equal(t, []int{0, 1}, rec.values())
}

func TestSubscription_UnsubscribeOtherDuringDelivery(t *testing.T) {
	c := New(0)
	var second recorder[int]
	var secondSub *Subscription
	c.Subscribe(func(v int) {
		if v == 1 {
			secondSub.Unsubscribe()
		}
	})
	secondSub = c.Subscribe(second.observe)

	c.Set(1)
	assert.Equal(t, []int{0}, second.values(), "released observers are skipped for the rest of the delivery")
}

func TestCell_Update(t *testing.T) {
	c := New([]int{1, 2})
	var rec recorder[[]int]
	c.Subscribe(rec.observe)

	changed := c.Update(func(cur []int) ([]int, bool) { return append(append([]int(nil), cur...), 3), true })
	assert.True(t, changed)
	assert.Equal(t, []int{1, 2, 3}, c.Value())
	assert.Equal(t, [][]int{{1, 2}, {1, 2, 3}}, rec.values())

	changed = c.Update(func(cur []int) ([]int, bool) { return nil, false })
	assert.False(t, changed)
	assert.Equal(t, []int{1, 2, 3}, c.Value())
	assert.Len(t, rec.values(), 2, "unchanged updates are not published")
}

func TestCell_ConcurrentSet(t *testing.T) {
	c := New(0)
	var rec recorder[int]
	c.Subscribe(rec.observe)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			c.Set(v)
		}(i)
	}
	wg.Wait()

	got := rec.values()
	assert.Len(t, got, 51)
	assert.Equal(t, got[len(got)-1], c.Value(), "the last delivered value is the stored value")
}

func TestDerive(t *testing.T) {
	src := New(2)
	dst, sub := Derive(src, func(v int) int { return v * 10 })
	assert.Equal(t, 20, dst.Value())

	var rec recorder[int]
	dst.Subscribe(rec.observe)
	src.Set(3)
	assert.Equal(t, 30, dst.Value())
	assert.Equal(t, []int{20, 30}, rec.values())

	sub.Unsubscribe()
	src.Set(4)
	assert.Equal(t, 30, dst.Value(), "detached cells keep their last value")
}
