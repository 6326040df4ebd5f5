package pathlen

import "fmt"

// Options configures a Path at construction. It is passed by value, a Path
// keeps its own copy and never consults process-wide state afterwards.
type Options struct {
	// SampleCountQuadratic, SampleCountCubic, SampleCountArc and
	// SampleCountEllipse are the number of vertices generated per primitive.
	// Each must be at least 2.
	SampleCountQuadratic int
	SampleCountCubic     int
	SampleCountArc       int
	SampleCountEllipse   int

	// RecordVertices enables storing the generated vertices, it must be true.
	RecordVertices bool

	// ComputeTangentsAndNormals enables per-vertex unit tangents and normals,
	// it requires RecordVertices.
	ComputeTangentsAndNormals bool
}

// DefaultOptions are the options used when no explicit configuration is needed.
var DefaultOptions = Options{
	SampleCountQuadratic:      30,
	SampleCountCubic:          30,
	SampleCountArc:            30,
	SampleCountEllipse:        60,
	RecordVertices:            true,
	ComputeTangentsAndNormals: true,
}

// Validate returns ErrConfiguration when the options are inconsistent.
func (o Options) Validate() error {
	if o.ComputeTangentsAndNormals && !o.RecordVertices {
		return fmt.Errorf("%w: tangents and normals require vertex recording", ErrConfiguration)
	}
	if !o.RecordVertices {
		return fmt.Errorf("%w: vertex recording must be enabled", ErrConfiguration)
	}
	for _, tt := range []struct {
		name string
		n    int
	}{
		{"sampleCountQuadratic", o.SampleCountQuadratic},
		{"sampleCountCubic", o.SampleCountCubic},
		{"sampleCountArc", o.SampleCountArc},
		{"sampleCountEllipse", o.SampleCountEllipse},
	} {
		if tt.n < 2 {
			return fmt.Errorf("%w: %s must be at least 2", ErrConfiguration, tt.name)
		}
	}
	return nil
}

// ParseOptions converts dynamic key/value configuration into Options, starting
// from DefaultOptions. Unknown keys and values of the wrong type return
// ErrConfiguration.
func ParseOptions(kvs map[string]interface{}) (Options, error) {
	o := DefaultOptions
	for key, val := range kvs {
		switch key {
		case "sampleCountQuadratic", "sampleCountCubic", "sampleCountArc", "sampleCountEllipse":
			n, err := toInt(key, val)
			if err != nil {
				return Options{}, err
			}
			switch key {
			case "sampleCountQuadratic":
				o.SampleCountQuadratic = n
			case "sampleCountCubic":
				o.SampleCountCubic = n
			case "sampleCountArc":
				o.SampleCountArc = n
			case "sampleCountEllipse":
				o.SampleCountEllipse = n
			}
		case "recordVertices", "computeTangentsAndNormals":
			b, ok := val.(bool)
			if !ok {
				return Options{}, fmt.Errorf("%w: option %s must be a boolean", ErrConfiguration, key)
			}
			if key == "recordVertices" {
				o.RecordVertices = b
			} else {
				o.ComputeTangentsAndNormals = b
			}
		default:
			return Options{}, fmt.Errorf("%w: unknown option %s", ErrConfiguration, key)
		}
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

func toInt(key string, val interface{}) (int, error) {
	switch n := val.(type) {
	case int:
		return n, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: option %s must be an integer", ErrConfiguration, key)
}
