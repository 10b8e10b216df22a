package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewPoints indicates not enough fit points for the estimation.
var ErrTooFewPoints = errors.New("geom: too few fit points")

// ParamMethod selects how fit points map onto the curve parameter.
type ParamMethod int

const (
	// Uniform spaces parameters equally regardless of point distances.
	Uniform ParamMethod = iota
	// Chord spaces parameters by segment length.
	Chord
	// Centripetal spaces parameters by the square root of segment length.
	Centripetal
)

// TVector returns the normalized parameter vector (first value 0, last 1)
// for the given fit points.
func TVector(points []Vec3, method ParamMethod) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("parametrize %d points: %w", len(points), ErrTooFewPoints)
	}
	switch method {
	case Uniform:
		return uniformT(len(points)), nil
	case Chord:
		return normalizedDistances(points, func(d float64) float64 { return d }), nil
	case Centripetal:
		return normalizedDistances(points, math.Sqrt), nil
	default:
		return nil, fmt.Errorf("unknown parametrization method %d", method)
	}
}

func uniformT(length int) []float64 {
	t := make([]float64, length)
	n := float64(length - 1)
	for i := range t {
		t[i] = float64(i) / n
	}
	return t
}

func normalizedDistances(points []Vec3, shape func(float64) float64) []float64 {
	distances := make([]float64, len(points)-1)
	total := 0.0
	for i := range distances {
		distances[i] = shape(points[i].Distance(points[i+1]))
		total += distances[i]
	}
	t := make([]float64, 0, len(points))
	t = append(t, 0)
	s := 0.0
	for _, d := range distances {
		s += d
		t = append(t, s/total)
	}
	return t
}

// TangentMethod selects the tangent estimation algorithm.
type TangentMethod int

const (
	// ThreePoints blends chord directions of adjacent segments.
	ThreePoints TangentMethod = iota
	// FivePoints weights segment directions by neighborhood curvature.
	FivePoints
	// FiniteDifference averages forward and backward differences.
	FiniteDifference
)

// EstimateTangents estimates unit tangents for a curve defined by fit
// points.
func EstimateTangents(points []Vec3, method TangentMethod) ([]Vec3, error) {
	switch method {
	case ThreePoints:
		return tangents3Point(points, Chord)
	case FivePoints:
		return tangents5Point(points)
	case FiniteDifference:
		return finiteDifference(points)
	default:
		return nil, fmt.Errorf("unknown tangent method %d", method)
	}
}

func tangents3Point(points []Vec3, method ParamMethod) ([]Vec3, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("3-point estimation needs 3 points, got %d: %w", len(points), ErrTooFewPoints)
	}
	t, err := TVector(points, method)
	if err != nil {
		return nil, err
	}

	n := len(points)
	d := make([]Vec3, n-1)
	deltaT := make([]float64, n-1)
	for k := 0; k < n-1; k++ {
		deltaT[k] = t[k+1] - t[k]
		d[k] = points[k+1].Sub(points[k]).Scale(1 / deltaT[k])
	}

	tangents := make([]Vec3, 0, n)
	tangents = append(tangents, Vec3{}) // start placeholder
	for k := 0; k < len(d)-1; k++ {
		alpha := deltaT[k] / (deltaT[k] + deltaT[k+1])
		tangents = append(tangents, d[k].Scale(1-alpha).Add(d[k+1].Scale(alpha)))
	}
	tangents[0] = d[0].Scale(2).Sub(tangents[1])
	tangents = append(tangents, d[len(d)-1].Scale(2).Sub(tangents[len(tangents)-1]))

	for i := range tangents {
		tangents[i] = tangents[i].Normalize()
	}
	return tangents, nil
}

func tangents5Point(points []Vec3) ([]Vec3, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("5-point estimation needs 3 points, got %d: %w", n, ErrTooFewPoints)
	}

	// chord vectors extended by linear extrapolation: q[-2] .. q[n],
	// stored with a +2 index offset
	q := make([]Vec3, n+3)
	for k := 0; k < n-1; k++ {
		q[k+2] = points[k+1].Sub(points[k])
	}
	q[1] = q[2].Scale(2).Sub(q[3])     // q[-1]
	q[n+1] = q[n].Scale(2).Sub(q[n-1]) // q[n-1]
	q[n+2] = q[n+1].Scale(2).Sub(q[n]) // q[n]
	q[0] = q[1].Scale(2).Sub(q[2])     // q[-2]

	tangents := make([]Vec3, n)
	for k := 0; k < n; k++ {
		v1 := q[k].Cross(q[k+1]).Magnitude()
		v2 := q[k+2].Cross(q[k+3]).Magnitude()
		alpha := 0.5 // collinear neighborhood blends evenly
		if v1+v2 != 0 {
			alpha = v1 / (v1 + v2)
		}
		vk := q[k+1].Scale(1 - alpha).Add(q[k+2].Scale(alpha))
		tangents[k] = vk.Normalize()
	}
	return tangents, nil
}

func finiteDifference(points []Vec3) ([]Vec3, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("finite difference needs 2 points, got %d: %w", n, ErrTooFewPoints)
	}

	tangents := make([]Vec3, 0, n)
	tangents = append(tangents, points[1].Sub(points[0]).Scale(0.5))
	for k := 1; k < n-1; k++ {
		backward := points[k].Sub(points[k-1]).Scale(0.5)
		forward := points[k+1].Sub(points[k]).Scale(0.5)
		tangents = append(tangents, backward.Add(forward))
	}
	tangents = append(tangents, points[n-1].Sub(points[n-2]).Scale(0.5))

	for i := range tangents {
		tangents[i] = tangents[i].Normalize()
	}
	return tangents, nil
}
