package params

import (
	"sync"

	"github.com/sammyne/etacore/eb"
	"github.com/sammyne/etacore/errs"
	"github.com/sammyne/etacore/fb"
	"github.com/sammyne/etacore/fb4"
	"github.com/sammyne/etacore/internal/xlog"
)

var log = xlog.Module("params")

// Ctx is the parameter context bundling the active field, curve, and (for
// the supersingular presets) quartic-tower contexts, per spec.md §3. One
// Ctx exists per call to Set; callers thread the returned value
// explicitly, or use Default/SetDefault for the convenience global
// described in spec.md §9.
type Ctx struct {
	ID    ID
	Field *fb.Ctx
	Curve *eb.Ctx
	Tower *fb4.Ctx // nil for the Ordinary/Koblitz presets; pairing only
}

// Set builds a fresh parameter context for id, running each layer's
// constructor (fb.NewCtx, the curve build, and — for the two
// supersingular presets — the quartic tower) in dependency order.
func Set(id ID) (*Ctx, error) {
	preset, ok := fieldPresets[id]
	if !ok {
		log.Error("params.Set: unknown identifier", errs.New(errs.InvalidParameter, "params.Set", nil), "id", int(id))
		return nil, errs.New(errs.InvalidParameter, "params.Set", nil)
	}
	field, err := fb.NewCtx(preset.m, preset.a, preset.b, preset.c)
	if err != nil {
		return nil, errs.New(errs.InvalidParameter, "params.Set", err)
	}
	curve, err := buildCurve(id, field)
	if err != nil {
		return nil, err
	}
	ctx := &Ctx{ID: id, Field: field, Curve: curve}

	if id == ETAS271 || id == ETAS1223 {
		deltaS := fb.New(field)
		deltaS.SetInt(1)
		deltaT := fb.New(field)
		deltaT.SetInt(1)
		ctx.Tower = fb4.NewCtx(field, deltaS, deltaT)
	}

	log.Info("params.Set", "id", id.String(), "m", preset.m)
	return ctx, nil
}

var (
	defaultMu  sync.Mutex
	defaultCtx *Ctx
)

// Default returns the process-wide convenience parameter context,
// building it with the given id on first use. Subsequent calls with a
// different id rebuild it. Guarded by a mutex per spec.md §9's
// recommendation for keeping a global alongside the explicit-Ctx path.
func Default(id ID) (*Ctx, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCtx != nil && defaultCtx.ID == id {
		return defaultCtx, nil
	}
	ctx, err := Set(id)
	if err != nil {
		return nil, err
	}
	defaultCtx = ctx
	return ctx, nil
}

// Clean releases the process-wide default context.
func Clean() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCtx != nil {
		log.Info("params.Clean", "id", defaultCtx.ID.String())
	}
	defaultCtx = nil
}
