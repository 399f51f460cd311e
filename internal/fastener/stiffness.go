package fastener

// JointState is the stiffness picture of one joint.
type JointState struct {
	C  float64 `json:"c"`
	Kb float64 `json:"kb"`
	Km float64 `json:"km"`
}

// BoltStiffness returns the axial spring constant of a bolt whose grip is made
// of an unthreaded shank (area aCs) and a threaded section (area aTs) in series.
func BoltStiffness(aTs, aCs, lUnthreaded, lThreaded, eb float64) (float64, error) {
	den := aCs*lThreaded + aTs*lUnthreaded
	if den <= 0 {
		return 0, opError("bolt stiffness", ErrInvalidGeometry)
	}
	return aTs * aCs * eb / den, nil
}

// MemberStiffness recovers km from kb and the joint constant, c = kb/(kb+km).
func MemberStiffness(kb, c float64) (float64, error) {
	if c <= 0 || c >= 1 {
		return 0, opError("member stiffness", ErrInvalidJointConstant)
	}
	return kb/c - kb, nil
}

// NewJointState derives km from kb and c.
func NewJointState(c, kb float64) (JointState, error) {
	km, err := MemberStiffness(kb, c)
	if err != nil {
		return JointState{}, err
	}
	return JointState{C: c, Kb: kb, Km: km}, nil
}
