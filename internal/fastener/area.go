package fastener

import "math"

// pitchDiameterFactor relates pitch to the major/pitch diameter offset of a
// 60 degree thread form (Norton eq. 15.1).
const pitchDiameterFactor = 0.649519

// ThreadSpec carries either a pitch or a thread count per inch. A zero field is
// absent; exactly one field must be set.
type ThreadSpec struct {
	Pitch          float64 `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	ThreadsPerInch float64 `yaml:"threads_per_inch,omitempty" json:"threads_per_inch,omitempty"`
}

// Pitch is a metric thread of pitch p.
func Pitch(p float64) ThreadSpec { return ThreadSpec{Pitch: p} }

// ThreadsPerInch is a unified thread with n threads per inch.
func ThreadsPerInch(n float64) ThreadSpec { return ThreadSpec{ThreadsPerInch: n} }

// Validate reports ErrInvalidThreadSpec unless exactly one positive field is set.
func (t ThreadSpec) Validate() error {
	hasPitch := t.Pitch != 0
	hasTPI := t.ThreadsPerInch != 0
	if hasPitch == hasTPI {
		return ErrInvalidThreadSpec
	}
	if t.Pitch < 0 || t.ThreadsPerInch < 0 {
		return ErrInvalidThreadSpec
	}
	return nil
}

// pitchOffset is the major-to-pitch diameter offset for this thread.
func (t ThreadSpec) pitchOffset() float64 {
	if t.Pitch != 0 {
		return pitchDiameterFactor * t.Pitch
	}
	return pitchDiameterFactor / t.ThreadsPerInch
}

// TensileStressArea returns π/4·((dp+dr)/2)² where dp is the pitch diameter
// derived from the major diameter and the thread spec.
func TensileStressArea(dMajor, dMinor float64, thread ThreadSpec) (float64, error) {
	if err := thread.Validate(); err != nil {
		return 0, opError("tensile stress area", err)
	}
	return tensileStressArea(dMajor, dMinor, thread.pitchOffset()), nil
}

// TensileStressAreaSeries evaluates TensileStressArea elementwise.
func TensileStressAreaSeries(dMajor, dMinor Series, thread ThreadSpec) (Series, error) {
	if err := thread.Validate(); err != nil {
		return nil, opError("tensile stress area", err)
	}
	n, err := broadcastLen("tensile stress area", dMajor, dMinor)
	if err != nil {
		return nil, err
	}
	offset := thread.pitchOffset()
	out := make(Series, n)
	for i := range out {
		out[i] = tensileStressArea(dMajor.At(i), dMinor.At(i), offset)
	}
	return out, nil
}

func tensileStressArea(dMajor, dMinor, offset float64) float64 {
	dPitch := dMajor - offset
	return math.Pi / 4 * math.Pow((dPitch+dMinor)/2, 2)
}

// ShankArea is the full cross-section area of an unthreaded shank of diameter d.
func ShankArea(d float64) float64 {
	return math.Pi * math.Pow(d/2, 2)
}
