package ninepatch

// Width returns the displayed width of the patch.
//
// In ModeDefault this is the scaled width of the tile bounds. In
// ModeNinePatch it is the scaled target width.
func (np *Patch) Width() float32 {
	if np.mode == ModeDefault {
		return np.Scale.X * np.LocalBounds().Dx()
	}
	return np.Scale.X * np.target.X
}

// Height returns the displayed height of the patch.
func (np *Patch) Height() float32 {
	if np.mode == ModeDefault {
		return np.Scale.Y * np.LocalBounds().Dy()
	}
	return np.Scale.Y * np.target.Y
}

// SetWidth dispatches to SetScaledWidth or SetSlicedWidth according to the
// scale mode.
func (np *Patch) SetWidth(width float32) {
	if np.mode == ModeDefault {
		np.SetScaledWidth(width)
		return
	}
	np.SetSlicedWidth(width)
}

// SetHeight dispatches to SetScaledHeight or SetSlicedHeight according to
// the scale mode.
func (np *Patch) SetHeight(height float32) {
	if np.mode == ModeDefault {
		np.SetScaledHeight(height)
		return
	}
	np.SetSlicedHeight(height)
}

// SetScaledWidth adjusts Scale.X so that the tile bounds span width. Empty
// bounds reset the scale to 1.
func (np *Patch) SetScaledWidth(width float32) {
	np.Scale.X = scaleFor(width, np.LocalBounds().Dx())
	np.requested.X = width
}

// SetScaledHeight adjusts Scale.Y so that the tile bounds span height. Empty
// bounds reset the scale to 1.
func (np *Patch) SetScaledHeight(height float32) {
	np.Scale.Y = scaleFor(height, np.LocalBounds().Dy())
	np.requested.Y = height
}

func scaleFor(want, have float32) float32 {
	if have == 0 {
		return 1
	}
	return want / have
}
