package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tutorcal_go/store"
)

// Broadcaster is the slice of the websocket hub the scheduler needs.
type Broadcaster interface {
	Broadcast(message interface{})
}

// RefreshScheduler owns the display-refresh timers: a ~30 second tick that
// recomputes the live time indicator and a ~60 second tick that tells clients
// to refresh ended-event styling. Both are fire-and-forget derived-display
// updates; neither touches event or teacher data. A midnight cron job rolls
// the static leave table forward to the new day.
type RefreshScheduler struct {
	hub        Broadcaster
	grid       *DayGridService
	leave      *LeaveService
	clockTick  time.Duration
	renderTick time.Duration
	cron       *cron.Cron
	stop       chan struct{}
}

func NewRefreshScheduler(hub Broadcaster, grid *DayGridService, leave *LeaveService, clockTick, renderTick time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		hub:        hub,
		grid:       grid,
		leave:      leave,
		clockTick:  clockTick,
		renderTick: renderTick,
		cron:       cron.New(),
		stop:       make(chan struct{}),
	}
}

// Start launches the tick loop and the midnight rollover job.
func (rs *RefreshScheduler) Start() {
	go rs.run()

	if _, err := rs.cron.AddFunc("0 0 * * *", rs.rollover); err != nil {
		log.Printf("Failed to schedule midnight rollover: %v", err)
	} else {
		rs.cron.Start()
	}

	log.Println("Refresh scheduler started")
}

// Stop cancels the timers. Safe to call once on teardown.
func (rs *RefreshScheduler) Stop() {
	close(rs.stop)
	rs.cron.Stop()
}

func (rs *RefreshScheduler) run() {
	clock := time.NewTicker(rs.clockTick)
	render := time.NewTicker(rs.renderTick)
	defer clock.Stop()
	defer render.Stop()

	for {
		select {
		case <-clock.C:
			now := time.Now()
			rs.hub.Broadcast(store.Change{
				Type: "time_indicator",
				Data: rs.grid.Indicator(now, now),
			})

		case <-render.C:
			rs.hub.Broadcast(store.Change{
				Type: "render_tick",
				Data: time.Now().Format(time.RFC3339),
			})

		case <-rs.stop:
			return
		}
	}
}

func (rs *RefreshScheduler) rollover() {
	rs.leave.ReseedToday()
	rs.hub.Broadcast(store.Change{
		Type: "day_changed",
		Data: time.Now().Format("2006-01-02"),
	})
}
