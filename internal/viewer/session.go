// Package viewer runs one viewing session: it extracts metadata for a set of
// files and renders one file at a time into a window built from layout.yaml.
package viewer

import (
	"context"
	_ "embed"
	"fmt"

	"exifview/internal/exiftool"
	"exifview/internal/geo"
	"exifview/internal/logger"
	"exifview/internal/metadata"
	"exifview/internal/ui/builder"
)

// Names of the widgets layout.yaml declares and the session drives.
const (
	CategoriesName = "categories"
	LocationName   = "location"
	FileNameName   = "file-name"
	FileIconName   = "file-icon"
	PositionName   = "position"
)

// Handler names bound by layout.yaml.
const (
	HandlerNextFile     = "next-file"
	HandlerPreviousFile = "previous-file"
	HandlerPageSelected = "page-selected"
)

//go:embed layout.yaml
var layoutYAML []byte

// Layout returns the window spec.
func Layout() (builder.Spec, error) {
	return builder.LoadSpec(layoutYAML)
}

// Runner runs extraction commands; *exiftool.Runner satisfies it.
type Runner interface {
	Run(ctx context.Context, commands [][]string) ([]string, error)
}

type Options struct {
	Tool string
	Args []string
}

type Session struct {
	runner   Runner
	builder  *builder.Builder
	reporter exiftool.Reporter
	logger   logger.Logger
	opts     Options

	records     []metadata.Record
	index       int
	page        string
	initialized bool
}

func NewSession(runner Runner, b *builder.Builder, reporter exiftool.Reporter, log logger.Logger, opts Options) *Session {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if opts.Tool == "" {
		opts.Tool = "exiftool"
	}
	if opts.Args == nil {
		opts.Args = exiftool.DefaultArgs
	}

	s := &Session{
		runner:   runner,
		builder:  b,
		reporter: reporter,
		logger:   log,
		opts:     opts,
	}
	s.registerHandlers(b.Context())
	return s
}

func (s *Session) registerHandlers(ctx *builder.Context) {
	ctx.Handle(HandlerNextFile, func(builder.Widget, interface{}, *builder.Context) {
		s.fail(s.Next())
	})
	ctx.Handle(HandlerPreviousFile, func(builder.Widget, interface{}, *builder.Context) {
		s.fail(s.Prev())
	})
	ctx.Handle(HandlerPageSelected, func(_ builder.Widget, payload interface{}, _ *builder.Context) {
		if name, ok := payload.(string); ok {
			s.page = name
			s.logger.Debug("Session", "page selected", map[string]interface{}{"page": name})
		}
	})
}

// Load extracts and transforms the metadata of files, replacing any records
// loaded before. Spawn failures have already been reported by the runner;
// transform failures are reported here. Either way the error is returned.
func (s *Session) Load(ctx context.Context, files []string) error {
	commands := exiftool.Commands(s.opts.Tool, s.opts.Args, files)

	s.logger.Info("Session", "extracting metadata", map[string]interface{}{
		"files": len(files),
		"tool":  s.opts.Tool,
	})

	outputs, err := s.runner.Run(ctx, commands)
	if err != nil {
		return fmt.Errorf("run %s: %w", s.opts.Tool, err)
	}

	records, err := metadata.Transform(outputs)
	if err != nil {
		s.report(err)
		return fmt.Errorf("transform metadata: %w", err)
	}

	s.records = records
	s.index = 0
	s.logger.Info("Session", "metadata loaded", map[string]interface{}{"records": len(records)})
	return nil
}

// Start builds the window from the embedded layout and renders the first
// file. It must run on the UI goroutine.
func (s *Session) Start() (builder.Widget, error) {
	spec, err := Layout()
	if err != nil {
		return nil, err
	}
	root, err := s.builder.Construct(spec)
	if err != nil {
		return nil, err
	}
	if err := s.render(); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *Session) Records() []metadata.Record { return s.records }
func (s *Session) Index() int                 { return s.index }
func (s *Session) Page() string               { return s.page }

func (s *Session) Next() error { return s.Show(s.index + 1) }
func (s *Session) Prev() error { return s.Show(s.index - 1) }

// Show renders record i, clamped into range. Showing the current record
// again rebuilds it.
func (s *Session) Show(i int) error {
	if len(s.records) == 0 {
		return nil
	}
	s.index = max(0, min(i, len(s.records)-1))
	return s.render()
}

func (s *Session) render() error {
	if s.initialized {
		if err := s.builder.Teardown(CategoriesName, LocationName); err != nil {
			return fmt.Errorf("teardown: %w", err)
		}
	}
	s.initialized = true

	if len(s.records) == 0 {
		return s.builder.Update(PositionName, builder.Field{Name: "Text", Value: "0 / 0"})
	}

	record := s.records[s.index]
	if err := s.renderHeader(record); err != nil {
		return err
	}

	for _, category := range record.Categories {
		err := s.builder.Update(CategoriesName, builder.AddPage{
			Name:  category.Name,
			Child: CategoryPage(category),
		})
		if err != nil {
			return fmt.Errorf("render category %q: %w", category.Name, err)
		}
	}

	return s.renderLocation(record)
}

func (s *Session) renderHeader(record metadata.Record) error {
	position := fmt.Sprintf("%d / %d", s.index+1, len(s.records))
	if err := s.builder.Update(PositionName, builder.Field{Name: "Text", Value: position}); err != nil {
		return err
	}
	if err := s.builder.Update(FileNameName, builder.Field{Name: "Text", Value: record.Name()}); err != nil {
		return err
	}
	icon := builder.IconDescriptor{Name: IconForMIME(record.MIMEType()), Size: 32}
	return s.builder.Update(FileIconName, builder.SetIcon{Icon: icon})
}

func (s *Session) renderLocation(record metadata.Record) error {
	location, ok := s.builder.Context().Lookup(LocationName)
	if !ok {
		return fmt.Errorf("no widget named %q", LocationName)
	}

	pair, ok := record.Find(metadata.LabelGPSPosition)
	if !ok {
		location.Hide()
		return nil
	}

	raw := pair.Value.String()
	specs := RawLocationPage(raw)
	fix, err := geo.ToDecimalDegrees(raw)
	if err != nil {
		s.logger.Warning("Session", "unreadable GPS position", map[string]interface{}{
			"file":  record.SourceFile,
			"value": raw,
			"error": err.Error(),
		})
	} else {
		specs = LocationPage(fix)
	}

	for _, spec := range specs {
		if err := s.builder.Update(LocationName, builder.PackStart{Child: spec}); err != nil {
			return fmt.Errorf("render location: %w", err)
		}
	}
	location.Show()
	return nil
}

func (s *Session) report(err error) {
	if s.reporter != nil {
		s.reporter.Report(err)
	}
}

// fail reports errors raised inside event handlers, where nobody else can.
func (s *Session) fail(err error) {
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"index": s.index})
		s.report(err)
	}
}
