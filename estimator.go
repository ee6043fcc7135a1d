package sphgeom

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// EstimatorConfig configures an Estimator.
// Zero values produce sensible defaults; see field comments.
type EstimatorConfig struct {
	Method Method      `json:"method"` // zero → SphericalExcess
	Logger *zap.Logger `json:"-"`      // nil → zap.NewNop()
}

// Estimator computes per-pixel solid angles from pixel corner coordinates.
// It is stateless apart from its configuration and safe for concurrent use.
type Estimator struct {
	method Method
	logger *zap.Logger
}

// NewEstimator creates an Estimator from the given config.
// Zero-value fields are filled with defaults; an undefined Method returns
// ErrUnknownMethod.
func NewEstimator(cfg EstimatorConfig) (*Estimator, error) {
	m := cfg.Method
	if m == 0 {
		m = SphericalExcess
	}
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Estimator{method: m, logger: logger}, nil
}

// Method returns the configured algorithm.
func (e *Estimator) Method() Method {
	return e.method
}

// PixelSolidAngle computes the solid angle (steradians) subtended by each
// pixel described by the corner set. The result has length N and is
// index-aligned with the input arrays. The input is not mutated.
//
// Corners are assumed consistently wound and non-degenerate; zero-area or
// self-intersecting quadrilaterals produce unspecified values.
func (e *Estimator) PixelSolidAngle(cs CornerSet) ([]float64, error) {
	n, err := cs.Len()
	if err != nil {
		return nil, err
	}

	omega := make([]float64, n)
	var q [4]r3.Vector
	for px := 0; px < n; px++ {
		for i, c := range cs {
			q[i] = Vector(c.Lon[px], c.Lat[px])
		}
		omega[px] = quadExcessUnnormalized(q)
	}

	e.logger.Debug("computed pixel solid angles",
		zap.Int("pixels", n),
		zap.Stringer("method", e.method))

	return omega, nil
}

// PixelSolidAngle computes per-pixel solid angles with the default
// configuration (method SphericalExcess, no logging).
func PixelSolidAngle(cs CornerSet) ([]float64, error) {
	est, err := NewEstimator(EstimatorConfig{})
	if err != nil {
		return nil, err
	}
	return est.PixelSolidAngle(cs)
}

// estimatorJSON is the serialized form of an Estimator.
type estimatorJSON struct {
	Method Method `json:"method"`
}

// MarshalJSON implements json.Marshaler.
func (e *Estimator) MarshalJSON() ([]byte, error) {
	return json.Marshal(estimatorJSON{Method: e.method})
}

// UnmarshalJSON implements json.Unmarshaler.
// The logger is not serialized; the rebuilt Estimator logs nowhere.
func (e *Estimator) UnmarshalJSON(data []byte) error {
	var j estimatorJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rebuilt, err := NewEstimator(EstimatorConfig{Method: j.Method})
	if err != nil {
		return err
	}
	*e = *rebuilt
	return nil
}
