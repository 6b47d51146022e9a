package preprocessing

// StackDistance is how close two start positions have to be for the objects
// to count as stacked.
const StackDistance = 3.0

// ResolveStacking assigns stack heights to every object. Charts saved with
// format version 6 or later use the backward-walking resolver, older charts
// keep the legacy forward scan.
func ResolveStacking(objs []*Object, formatVersion int, stackThreshold float64) {
	if len(objs) < 2 {
		return
	}

	if formatVersion >= 6 {
		resolveStacks(objs, stackThreshold)
	} else {
		resolveStacksOld(objs, stackThreshold)
	}
}

func resolveStacks(objs []*Object, stackThreshold float64) {
	extendedStartIdx := 0
	extendedEndIdx := len(objs) - 1

	for i := extendedEndIdx; i >= 1; i-- {
		n := i
		objI := i

		// Only notes without a stack yet are worth starting from. With two
		// interwound stacks the inner objects get their height from the
		// base of the other stack before i reaches them.
		if objs[objI].StackHeight != 0 || objs[objI].IsSpinner() {
			continue
		}

		if objs[objI].IsCircle() {
			for n > 0 {
				n--

				if objs[n].IsSpinner() {
					continue
				}

				if objs[objI].StartTime-objs[n].EndTime > stackThreshold {
					break
				}

				if n < extendedStartIdx {
					objs[n].StackHeight = 0
					extendedStartIdx = n
				}

				// Circles sitting on the end of the last slider of a stacked
				// pattern are moved down-right instead, so their heights go
				// negative relative to the slider.
				if objs[n].IsSlider() && objs[n].EndPos.Dst(objs[objI].Pos) < StackDistance {
					offset := objs[objI].StackHeight - objs[n].StackHeight + 1

					for j := n + 1; j <= i; j++ {
						if objs[n].EndPos.Dst(objs[j].Pos) < StackDistance {
							objs[j].StackHeight -= offset
						}
					}

					// The slider itself still has height 0 and is picked up
					// by the outer loop as a new base.
					break
				}

				if objs[n].Pos.Dst(objs[objI].Pos) < StackDistance {
					objs[n].StackHeight = objs[objI].StackHeight + 1
					objI = n
				}
			}
		} else if objs[objI].IsSlider() {
			// From the first slider of a stack on, heights only grow.
			for n > 0 {
				n--

				if objs[n].IsSpinner() {
					continue
				}

				if objs[objI].StartTime-objs[n].StartTime > stackThreshold {
					break
				}

				if objs[n].EndPos.Dst(objs[objI].Pos) < StackDistance {
					objs[n].StackHeight = objs[objI].StackHeight + 1
					objI = n
				}
			}
		}
	}
}

func resolveStacksOld(objs []*Object, stackThreshold float64) {
	for i := 0; i < len(objs); i++ {
		if objs[i].StackHeight != 0 && !objs[i].IsSlider() {
			continue
		}

		startTime := objs[i].EndTime
		endPos := objs[i].EndPos

		sliderStack := 0.0

		for j := i + 1; j < len(objs); j++ {
			if objs[j].StartTime-stackThreshold > startTime {
				break
			}

			if objs[j].Pos.Dst(objs[i].Pos) < StackDistance {
				objs[i].StackHeight++
				startTime = objs[j].EndTime
			} else if objs[j].Pos.Dst(endPos) < StackDistance {
				sliderStack++
				objs[j].StackHeight -= sliderStack
				startTime = objs[j].EndTime
			}
		}
	}
}
