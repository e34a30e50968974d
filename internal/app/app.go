// Package app implements the application layer for string16.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/adapters/tui"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/string16/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	decoder      ports.Decoder
	evaluator    ports.Evaluator
	tracer       ports.Tracer
	teaOptions   []tea.ProgramOption

	mu     sync.RWMutex
	config *domain.Config
}

// New creates a new App instance using the default configuration until
// Configure is called.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	decoder ports.Decoder,
	evaluator ports.Evaluator,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		decoder:      decoder,
		evaluator:    evaluator,
		tracer:       tracer,
		config:       domain.DefaultConfig(),
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// ConfigureOptions carries command line settings that take precedence over
// the config file.
type ConfigureOptions struct {
	// Path is an explicit config file; empty means discover one.
	Path     string
	JSONLogs bool
	Trace    bool
}

// Configure loads the config file and applies logging and tracing settings.
func (a *App) Configure(opts ConfigureOptions) error {
	cfg, err := a.configLoader.Load(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg.JSONLogs = cfg.JSONLogs || opts.JSONLogs
	cfg.Trace = cfg.Trace || opts.Trace

	a.logger.SetJSON(cfg.JSONLogs)
	if cfg.Trace {
		a.tracer.Enable(a.logger)
	}

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()
	return nil
}

// Config returns the active configuration.
func (a *App) Config() domain.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return *a.config
}

// Shutdown flushes pending spans.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

// Input is one value to inspect. Exactly one of its sources is used, in the
// order Reader, Path, Text.
type Input struct {
	Label  string
	Text   string
	Path   string
	Reader io.Reader
}

// TextInput inspects s, decoded as UTF-8.
func TextInput(label, s string) Input {
	return Input{Label: label, Text: s}
}

// FileInput inspects the file at path, decoded with the configured encoding.
func FileInput(path string) Input {
	return Input{Label: path, Path: path}
}

// ReaderInput inspects everything read from r, decoded with the configured encoding.
func ReaderInput(label string, r io.Reader) Input {
	return Input{Label: label, Reader: r}
}

// Inspect converts every input concurrently, bounded by the configured
// concurrency, and returns the results in input order.
func (a *App) Inspect(ctx context.Context, inputs []Input) (results []domain.Inspection, err error) {
	ctx, span := a.tracer.Start(ctx, "string16.inspect")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("inputs", len(inputs))

	if len(inputs) == 0 {
		return nil, domain.ErrNoInput
	}

	cfg := a.Config()
	results = make([]domain.Inspection, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := a.read(in, cfg.Encoding)
			if err != nil {
				return err
			}
			results[i] = domain.NewInspection(in.Label, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) read(in Input, enc domain.Encoding) (string16.String, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case in.Reader != nil:
		data, err = io.ReadAll(in.Reader)
	case in.Path != "":
		// #nosec G304 -- the path is a command line argument
		data, err = os.ReadFile(in.Path)
	default:
		return string16.FromString(in.Text), nil
	}
	if err != nil {
		return string16.String{}, zerr.With(errors.Join(domain.ErrInputReadFailed, err), "input", in.Label)
	}

	text, err := a.decoder.Decode(data, enc)
	if err != nil {
		return string16.String{}, zerr.With(errors.Join(domain.ErrDecodeFailed, err), "input", in.Label)
	}
	return text, nil
}

// FormatInt parses text as a decimal int and formats it back with string16.FromInt.
func (a *App) FormatInt(ctx context.Context, text string) (string16.String, error) {
	_, span := a.tracer.Start(ctx, "string16.number.int")
	defer span.End()

	n, err := a.parseInt(text)
	if err != nil {
		span.RecordError(err)
		return string16.String{}, err
	}
	return string16.FromInt(n), nil
}

// FormatDouble parses text as a number and formats it the way JavaScript
// does. A negative precision selects the configured default; zero selects
// the shortest round-tripping form.
func (a *App) FormatDouble(ctx context.Context, text string, precision int) (string16.String, error) {
	_, span := a.tracer.Start(ctx, "string16.number.double")
	defer span.End()

	if precision < 0 {
		precision = a.Config().Precision
	}
	span.SetAttribute("precision", precision)
	if err := domain.ValidatePrecision(precision); err != nil {
		span.RecordError(err)
		return string16.String{}, err
	}

	v, ok := string16.FromString(text).ToDouble()
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidNumber, "parse double"), "input", text)
		span.RecordError(err)
		return string16.String{}, err
	}
	if precision == 0 {
		return string16.FromDouble(v), nil
	}
	return string16.FromDoublePrecision(v, precision), nil
}

// Parse converts text to an int with the strict ASCII decimal rules of
// string16.String.ParseInteger.
func (a *App) Parse(ctx context.Context, text string) (int, error) {
	_, span := a.tracer.Start(ctx, "string16.parse")
	defer span.End()
	span.SetAttribute("length", len(text))

	n, err := a.parseInt(text)
	if err != nil {
		span.RecordError(err)
	}
	return n, err
}

func (a *App) parseInt(text string) (int, error) {
	n, err := string16.FromString(text).ParseInteger()
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrInvalidNumber, err), "input", text)
	}
	return n, nil
}

// FindOptions controls where Find starts and in which direction it searches.
type FindOptions struct {
	// From is the start index; a negative value means the start (or the end
	// when Reverse is set).
	From    int
	Reverse bool
}

// Find returns the UTF-16 index of needle in haystack, or string16.NotFound.
func (a *App) Find(ctx context.Context, haystack, needle string, opts FindOptions) int {
	_, span := a.tracer.Start(ctx, "string16.find")
	defer span.End()

	hay, nd := string16.FromString(haystack), string16.FromString(needle)
	span.SetAttribute("length", hay.Len())
	span.SetAttribute("reverse", opts.Reverse)

	var idx int
	switch {
	case opts.Reverse && opts.From < 0:
		idx = hay.ReverseFind(nd)
	case opts.Reverse:
		idx = hay.ReverseFindFrom(nd, opts.From)
	default:
		idx = hay.FindFrom(nd, max(opts.From, 0))
	}
	span.SetAttribute("index", idx)
	return idx
}

// Strip removes leading and trailing ASCII whitespace.
func (a *App) Strip(ctx context.Context, text string) string16.String {
	_, span := a.tracer.Start(ctx, "string16.strip")
	defer span.End()

	s := string16.FromString(text)
	span.SetAttribute("length", s.Len())
	return s.StripWhiteSpace()
}

// Concat joins parts through a string16.Builder. Go strings are decoded as
// UTF-8; every other part must be a type Builder.AppendAll accepts.
func (a *App) Concat(ctx context.Context, parts ...any) string16.String {
	_, span := a.tracer.Start(ctx, "string16.concat")
	defer span.End()
	span.SetAttribute("parts", len(parts))

	b := string16.NewBuilder(0)
	for _, part := range parts {
		if s, ok := part.(string); ok {
			b.Append(string16.FromString(s))
			continue
		}
		b.AppendAll(part)
	}
	return b.ToString()
}

// Eval runs a JavaScript source and inspects the resulting string.
func (a *App) Eval(ctx context.Context, source string) (insp domain.Inspection, err error) {
	ctx, span := a.tracer.Start(ctx, "string16.eval")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("length", len(source))

	text, err := a.evaluator.Evaluate(ctx, source)
	if err != nil {
		return domain.Inspection{}, err
	}
	return domain.NewInspection("eval", text), nil
}

// Explore runs the interactive explorer and returns the final text.
func (a *App) Explore(ctx context.Context, initial string) (string16.String, error) {
	ctx, span := a.tracer.Start(ctx, "string16.explore")
	defer span.End()

	final, err := tui.Run(ctx, initial, a.teaOptions...)
	if err != nil {
		span.RecordError(err)
		return string16.String{}, err
	}
	return string16.FromString(final), nil
}
