package app

import (
	"hash/maphash"
	"math/rand/v2"
	"sync/atomic"

	"github.com/vancomm/mines/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// RandSource returns a generator of independent random sources, one per
// session. A nonzero seed makes the sequence of sources reproducible.
func RandSource(seed uint64) func() *rand.Rand {
	if seed == 0 {
		return createRand
	}
	var n atomic.Uint64
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, n.Add(1)))
	}
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log,
		a.config.Game.Params(),
		RandSource(a.config.Seed),
		a.config.Upgrader(),
	)

	a.router.HandleFunc("GET /v1/status", handlers.Status(a.log))
	a.router.HandleFunc("GET /v1/presets", handlers.Presets(a.log))
	a.router.HandleFunc("GET /v1/game/connect", game.Connect)
}
