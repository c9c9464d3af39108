package space

import "fmt"

// LMSMatrix selects the XYZ to LMS cone response transform.
type LMSMatrix int

const (
	// SmithPokorny is the cone fundamental set used by Viénot, Brettel and
	// Mollon (1999) for dichromat simulation.
	SmithPokorny LMSMatrix = iota
	// Bradford is the chromatic adaptation transform.
	Bradford
	// VonKries is the Hunt-Pointer-Estévez transform.
	VonKries
)

var lmsMatrices = map[LMSMatrix][2]Matrix{
	SmithPokorny: {
		{
			{0.15514, 0.54312, -0.03286},
			{-0.15514, 0.45684, 0.03286},
			{0, 0, 0.01608},
		},
		{
			{2.944812906606763, -3.500977991936487, 13.17218214714747},
			{1.000040001600064, 1.000040001600064, 0},
			{0, 0, 62.18905472636816},
		},
	},
	Bradford: {
		{
			{0.8951000, 0.2664000, -0.1614000},
			{-0.7502000, 1.7135000, 0.0367000},
			{0.0389000, -0.0685000, 1.0296000},
		},
		{
			{0.9869929, -0.1470543, 0.1599627},
			{0.4323053, 0.5183603, 0.0492912},
			{-0.0085287, 0.0400428, 0.9684867},
		},
	},
	VonKries: {
		{
			{0.4002400, 0.7076000, -0.0808100},
			{-0.2263000, 1.1653200, 0.0457000},
			{0, 0, 0.9182200},
		},
		{
			{1.8599364, -1.1293816, 0.2198974},
			{0.3611914, 0.6388125, -0.0000064},
			{0, 0, 1.0890636},
		},
	},
}

// XYZToLMS converts XYZ to LMS cone responses.
func XYZToLMS(c Triple, m LMSMatrix) Triple {
	mm := lmsMatrices[m]
	return mm[0].Apply(c)
}

// LMSToXYZ converts LMS cone responses to XYZ.
func LMSToXYZ(c Triple, m LMSMatrix) Triple {
	mm := lmsMatrices[m]
	return mm[1].Apply(c)
}

// String returns the option name of the matrix.
func (m LMSMatrix) String() string {
	switch m {
	case SmithPokorny:
		return "smith-pokorny"
	case Bradford:
		return "bradford"
	case VonKries:
		return "von-kries"
	default:
		return fmt.Sprintf("LMSMatrix(%d)", int(m))
	}
}

// ParseLMSMatrix returns the matrix with the given option name.
func ParseLMSMatrix(s string) (LMSMatrix, error) {
	for _, m := range []LMSMatrix{SmithPokorny, Bradford, VonKries} {
		if m.String() == s {
			return m, nil
		}
	}
	return SmithPokorny, fmt.Errorf("unknown LMS matrix: %q (valid: smith-pokorny, bradford, von-kries)", s)
}
