package pathlen

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestOptionsValidate(t *testing.T) {
	test.Error(t, DefaultOptions.Validate())

	opts := DefaultOptions
	opts.RecordVertices = false
	opts.ComputeTangentsAndNormals = false
	test.That(t, errors.Is(opts.Validate(), ErrConfiguration))

	opts = DefaultOptions
	opts.RecordVertices = false
	test.That(t, errors.Is(opts.Validate(), ErrConfiguration))

	opts = DefaultOptions
	opts.SampleCountCubic = 1
	test.That(t, errors.Is(opts.Validate(), ErrConfiguration))

	_, err := New(opts)
	test.That(t, errors.Is(err, ErrConfiguration))
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions(nil)
	test.Error(t, err)
	test.T(t, opts, DefaultOptions)

	opts, err = ParseOptions(map[string]interface{}{
		"sampleCountQuadratic":      10,
		"sampleCountEllipse":        40.0,
		"computeTangentsAndNormals": false,
	})
	test.Error(t, err)
	test.T(t, opts.SampleCountQuadratic, 10)
	test.T(t, opts.SampleCountEllipse, 40)
	test.T(t, opts.SampleCountCubic, DefaultOptions.SampleCountCubic)
	test.That(t, !opts.ComputeTangentsAndNormals)
}

func TestParseOptionsErrors(t *testing.T) {
	var tts = []struct {
		name string
		kvs  map[string]interface{}
	}{
		{"unknown key", map[string]interface{}{"sampleCountArcs": 10}},
		{"bad type", map[string]interface{}{"sampleCountArc": "10"}},
		{"fractional count", map[string]interface{}{"sampleCountArc": 10.5}},
		{"bad bool", map[string]interface{}{"recordVertices": 1}},
		{"recording disabled", map[string]interface{}{"recordVertices": false, "computeTangentsAndNormals": false}},
		{"tangents without recording", map[string]interface{}{"recordVertices": false}},
		{"count too small", map[string]interface{}{"sampleCountQuadratic": 1}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.kvs)
			test.That(t, errors.Is(err, ErrConfiguration))
		})
	}
}
