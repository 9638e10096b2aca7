// Package transform applies rotations, scaling and translation to the
// vertices of an OBJ document.
//
// Transforms always run in a fixed order regardless of how they were
// requested: rotate X, rotate Y, rotate Z, scale, translate. A stage whose
// parameter is zero or absent is skipped.
//
// # Usage
//
//	p := transform.NewPipeline(logger)
//	result, err := p.RunFile(ctx, "body.obj", "body_scaled.obj", transform.Options{
//	    TargetWidth: transform.Float(1.8),
//	    RotateX:     90,
//	})
package transform

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
)

// Operation names a single transform stage
type Operation int

const (
	OpRotate Operation = iota
	OpScale
	OpTranslate
)

// Step is one planned transform stage
type Step struct {
	Op     Operation
	Axis   geometry.Axis    // OpRotate
	Amount float64          // degrees for OpRotate, factor for OpScale
	Offset geometry.Vector3 // OpTranslate
}

func (s Step) String() string {
	switch s.Op {
	case OpRotate:
		return fmt.Sprintf("rotate %s %g°", s.Axis, s.Amount)
	case OpScale:
		return fmt.Sprintf("scale %.6f", s.Amount)
	default:
		return fmt.Sprintf("translate %s", analysis.FormatVector(s.Offset))
	}
}

// Apply runs the step over the vertex set and returns a new set
func (s Step) Apply(vertices []geometry.Vector3) []geometry.Vector3 {
	switch s.Op {
	case OpRotate:
		return geometry.Rotate(vertices, s.Axis, s.Amount)
	case OpScale:
		return geometry.Scale(vertices, s.Amount)
	default:
		return geometry.Translate(vertices, s.Offset)
	}
}

// Plan turns options and an already derived scale factor into the ordered
// list of stages to run. A factor of zero means no scaling.
func Plan(opts Options, factor float64) []Step {
	var steps []Step

	rotations := []struct {
		axis    geometry.Axis
		degrees float64
	}{
		{geometry.AxisX, opts.RotateX},
		{geometry.AxisY, opts.RotateY},
		{geometry.AxisZ, opts.RotateZ},
	}
	for _, r := range rotations {
		if r.degrees != 0 {
			steps = append(steps, Step{Op: OpRotate, Axis: r.axis, Amount: r.degrees})
		}
	}

	if factor != 0 {
		steps = append(steps, Step{Op: OpScale, Amount: factor})
	}

	offset := geometry.NewVector3(opts.TranslateX, opts.TranslateY, opts.TranslateZ)
	if offset != (geometry.Vector3{}) {
		steps = append(steps, Step{Op: OpTranslate, Offset: offset})
	}

	return steps
}

// Result reports what a pipeline run did
type Result struct {
	Before   analysis.Measurement
	After    analysis.Measurement
	Factor   float64 // 0 when no scaling was applied
	Steps    []Step
	Document *obj.Document
}

// Pipeline sequences measurement, scale derivation and transforms
type Pipeline struct {
	logger *log.Logger
}

// NewPipeline creates a pipeline that reports progress to logger.
// A nil logger discards all output.
func NewPipeline(logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pipeline{logger: logger}
}

// Run transforms the document according to opts. The input document is not
// modified; the result carries a new document sharing its line records.
func (p *Pipeline) Run(doc *obj.Document, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Before: analysis.Measure(doc.Vertices)}
	p.logger.Debug("measured input",
		"vertices", result.Before.VertexCount,
		"dimensions", analysis.FormatDimensions(result.Before),
		"radius", result.Before.Radius)

	factor, err := p.factor(doc.Vertices, opts)
	if err != nil {
		return nil, err
	}
	result.Factor = factor

	vertices := doc.Vertices
	result.Steps = Plan(opts, factor)
	for _, step := range result.Steps {
		p.logger.Debug("applying", "step", step.String())
		vertices = step.Apply(vertices)
	}

	result.After = analysis.Measure(vertices)
	result.Document = doc.WithVertices(vertices)
	p.logger.Debug("measured output",
		"dimensions", analysis.FormatDimensions(result.After),
		"radius", result.After.Radius)

	return result, nil
}

// factor resolves the uniform scale factor. Scaling is derived from the
// target when one is set; otherwise an explicit non-zero Scale is used.
func (p *Pipeline) factor(vertices []geometry.Vector3, opts Options) (float64, error) {
	target := opts.Target()
	if !target.IsZero() {
		factor, err := ScaleFactor(vertices, target)
		if err != nil {
			return 0, err
		}
		p.logger.Debug("derived scale factor", "factor", factor)
		return factor, nil
	}
	if opts.Scale != nil {
		return *opts.Scale, nil
	}
	return 0, nil
}

// RunFile parses input, runs the pipeline and writes output. On any error
// the output file is left untouched.
func (p *Pipeline) RunFile(ctx context.Context, input, output string, opts Options) (*Result, error) {
	doc, err := obj.ParseFile(input)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed", "file", input, "lines", doc.LineCount(), "vertices", doc.VertexCount())

	result, err := p.Run(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := obj.WriteFile(output, result.Document); err != nil {
		return nil, err
	}
	p.logger.Debug("wrote", "file", output)
	return result, nil
}
