package watch_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylo/internal/engine/watch"
)

const window = 50 * time.Millisecond

func fired(d *watch.Debouncer) bool {
	select {
	case <-d.C():
		return true
	default:
		return false
	}
}

func TestDebouncer_CoalescesInFirstSeenOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watch.NewDebouncer(window)
		assert.Nil(t, d.C())

		d.Add("/src/_b.scss")
		d.Add("/src/_a.scss")
		d.Add("/src/_b.scss")
		assert.Equal(t, 2, d.Pending())

		time.Sleep(window / 2)
		assert.False(t, fired(d))

		time.Sleep(window)
		assert.True(t, fired(d))
		assert.Equal(t, []string{"/src/_b.scss", "/src/_a.scss"}, d.Drain())

		assert.Zero(t, d.Pending())
		assert.Nil(t, d.C())
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watch.NewDebouncer(window)

		d.Add("/src/a.scss")
		time.Sleep(window * 3 / 4)
		d.Add("/src/b.scss")
		time.Sleep(window * 3 / 4)
		assert.False(t, fired(d), "window should restart on every add")

		time.Sleep(window / 2)
		assert.True(t, fired(d))
		assert.Equal(t, []string{"/src/a.scss", "/src/b.scss"}, d.Drain())
	})
}

func TestDebouncer_ReusableAfterDrain(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watch.NewDebouncer(window)

		d.Add("/src/a.scss")
		assert.Equal(t, []string{"/src/a.scss"}, d.Drain())

		// A drained batch never fires.
		time.Sleep(2 * window)
		assert.Nil(t, d.C())

		d.Add("/src/a.scss")
		time.Sleep(2 * window)
		assert.True(t, fired(d))
		assert.Equal(t, []string{"/src/a.scss"}, d.Drain())
	})
}
