package ninepatch

// IsReady reports whether all nine tiles have loaded.
func (np *Patch) IsReady() bool {
	return np.loaded == len(np.tiles)
}

// Loaded returns the number of tiles that have finished loading.
func (np *Patch) Loaded() int {
	return np.loaded
}

// Ready returns a channel that is closed once all nine tiles have loaded.
func (np *Patch) Ready() <-chan struct{} {
	return np.ready
}

// Visible reports whether the patch should be drawn at all. An incompletely
// assembled patch stays hidden.
func (np *Patch) Visible() bool {
	return np.IsReady()
}

// Opacity returns the opacity to draw with: Alpha once ready, zero before.
func (np *Patch) Opacity() float32 {
	if !np.Visible() {
		return 0
	}
	return np.Alpha
}

// OnReady registers fn to be called once all tiles have loaded. If the patch
// is already ready fn runs immediately and is not retained. Otherwise it
// replaces any previously registered callback.
func (np *Patch) OnReady(fn func()) *Patch {
	if np.IsReady() {
		fn()
		return np
	}
	np.onReady = fn
	return np
}

// OnUpdate subscribes fn to every subsequent layout pass, including the one
// performed when the patch becomes ready.
func (np *Patch) OnUpdate(fn func()) *Patch {
	np.onUpdate = append(np.onUpdate, fn)
	return np
}

// tileLoaded is subscribed to every source that was pending at
// construction.
func (np *Patch) tileLoaded() {
	if np.IsReady() {
		Logger().Debug("ninepatch: load notification after ready, ignoring")
		return
	}
	np.loaded++
	Logger().Debug("ninepatch: tile loaded", "loaded", np.loaded)
	if !np.IsReady() {
		return
	}
	np.becomeReady()
}

// becomeReady performs the transition to ready at most once, whichever of
// New or tileLoaded observes the ninth load first.
func (np *Patch) becomeReady() {
	select {
	case <-np.ready:
		return
	default:
	}
	close(np.ready)
	np.layout()
	if fn := np.onReady; fn != nil {
		np.onReady = nil
		fn()
	}
}
