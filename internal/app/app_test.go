package app_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/app"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/string16/internal/core/ports"
	"go.trai.ch/string16/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	decoder   *mocks.MockDecoder
	evaluator *mocks.MockEvaluator
	tracer    *mocks.MockTracer
	span      *mocks.MockSpan
	spans     *[]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		decoder:   mocks.NewMockDecoder(ctrl),
		evaluator: mocks.NewMockEvaluator(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		span:      mocks.NewMockSpan(ctrl),
		spans:     new([]string),
	}

	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string) (context.Context, ports.Span) {
			*f.spans = append(*f.spans, name)
			return ctx, f.span
		}).AnyTimes()
	f.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	f.span.EXPECT().End().AnyTimes()

	f.app = app.New(f.loader, f.logger, f.decoder, f.evaluator, f.tracer)
	return f
}

func (f *fixture) ignoreErrors() {
	f.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
}

func TestApp_Configure(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Precision = 4
	f.loader.EXPECT().Load("custom.toml").Return(cfg, nil)
	f.logger.EXPECT().SetJSON(true)
	f.tracer.EXPECT().Enable(f.logger)

	err := f.app.Configure(app.ConfigureOptions{Path: "custom.toml", JSONLogs: true, Trace: true})
	require.NoError(t, err)

	got := f.app.Config()
	assert.Equal(t, 4, got.Precision)
	assert.True(t, got.JSONLogs)
	assert.True(t, got.Trace)
}

func TestApp_ConfigureFromFileSettings(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultConfig()
	cfg.Trace = true
	f.loader.EXPECT().Load("").Return(cfg, nil)
	f.logger.EXPECT().SetJSON(false)
	f.tracer.EXPECT().Enable(f.logger)

	require.NoError(t, f.app.Configure(app.ConfigureOptions{}))
}

func TestApp_ConfigureError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigNotFound)

	err := f.app.Configure(app.ConfigureOptions{Path: "missing.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_DefaultConfig(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, *domain.DefaultConfig(), f.app.Config())
}

func TestApp_Shutdown(t *testing.T) {
	f := newFixture(t)
	f.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	assert.NoError(t, f.app.Shutdown(context.Background()))
}

func TestApp_InspectText(t *testing.T) {
	f := newFixture(t)
	f.span.EXPECT().RecordError(nil)

	inputs := make([]app.Input, 50)
	for i := range inputs {
		inputs[i] = app.TextInput(fmt.Sprintf("arg[%d]", i), strings.Repeat("é", i))
	}

	results, err := f.app.Inspect(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("arg[%d]", i), r.Source)
		assert.Equal(t, i, r.Len())
	}
	assert.Equal(t, []string{"string16.inspect"}, *f.spans)
}

func TestApp_InspectFileUsesConfiguredEncoding(t *testing.T) {
	f := newFixture(t)
	f.span.EXPECT().RecordError(nil)

	cfg := domain.DefaultConfig()
	cfg.Encoding = domain.EncodingUTF16LE
	cfg.Concurrency = 1
	f.loader.EXPECT().Load("").Return(cfg, nil)
	f.logger.EXPECT().SetJSON(false)
	require.NoError(t, f.app.Configure(app.ConfigureOptions{}))

	path := filepath.Join(t.TempDir(), "input.bin")
	data := []byte{0x41, 0x00}
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f.decoder.EXPECT().Decode(data, domain.EncodingUTF16LE).Return(string16.FromString("A"), nil)
	f.decoder.EXPECT().Decode([]byte("from stdin"), domain.EncodingUTF16LE).Return(string16.FromString("B"), nil)

	results, err := f.app.Inspect(context.Background(), []app.Input{
		app.FileInput(path),
		app.ReaderInput("stdin", strings.NewReader("from stdin")),
		app.TextInput("arg[0]", "C"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, path, results[0].Source)
	assert.Equal(t, "A", results[0].UTF8())
	assert.Equal(t, "stdin", results[1].Source)
	assert.Equal(t, "B", results[1].UTF8())
	assert.Equal(t, "C", results[2].UTF8())
}

func TestApp_InspectErrors(t *testing.T) {
	t.Run("no input", func(t *testing.T) {
		f := newFixture(t)
		f.span.EXPECT().RecordError(domain.ErrNoInput)

		_, err := f.app.Inspect(context.Background(), nil)
		assert.True(t, errors.Is(err, domain.ErrNoInput))
	})

	t.Run("missing file", func(t *testing.T) {
		f := newFixture(t)
		f.ignoreErrors()

		path := filepath.Join(t.TempDir(), "nope.txt")
		_, err := f.app.Inspect(context.Background(), []app.Input{app.FileInput(path)})
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorIs(t, err, domain.ErrInputReadFailed)
	})

	t.Run("decode failure", func(t *testing.T) {
		f := newFixture(t)
		f.ignoreErrors()
		f.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(string16.String{}, domain.ErrInvalidEncoding)

		_, err := f.app.Inspect(context.Background(), []app.Input{app.ReaderInput("stdin", strings.NewReader("x"))})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
		assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	})

	t.Run("canceled context", func(t *testing.T) {
		f := newFixture(t)
		f.ignoreErrors()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.app.Inspect(ctx, []app.Input{app.TextInput("a", "a")})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestApp_InspectRespectsConcurrency(t *testing.T) {
	f := newFixture(t)
	f.span.EXPECT().RecordError(nil)

	cfg := domain.DefaultConfig()
	cfg.Concurrency = 2
	f.loader.EXPECT().Load("").Return(cfg, nil)
	f.logger.EXPECT().SetJSON(false)
	require.NoError(t, f.app.Configure(app.ConfigureOptions{}))

	var active, peak atomic.Int32
	f.decoder.EXPECT().Decode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(data []byte, _ domain.Encoding) (string16.String, error) {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			return string16.FromUTF8(data), nil
		}).Times(8)

	inputs := make([]app.Input, 8)
	for i := range inputs {
		inputs[i] = app.ReaderInput(fmt.Sprint(i), strings.NewReader(fmt.Sprint(i)))
	}
	results, err := f.app.Inspect(context.Background(), inputs)
	require.NoError(t, err)
	assert.Len(t, results, 8)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestApp_FormatInt(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "42", want: "42"},
		{input: "-0", want: "0"},
		{input: "+7", want: "7"},
		{input: "4x", wantErr: string16.ErrInvalidInteger},
		{input: "99999999999999999999", wantErr: string16.ErrIntegerOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := newFixture(t)
			f.ignoreErrors()

			got, err := f.app.FormatInt(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.UTF8())
		})
	}
}

func TestApp_FormatDouble(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		precision     int
		configDefault int
		want          string
		wantErr       error
	}{
		{name: "shortest", input: "0.1", precision: 0, want: "0.1"},
		{name: "large exponent", input: "1e21", precision: 0, want: "1e+21"},
		{name: "explicit precision", input: "123.456", precision: 2, want: "1.2e+2"},
		{name: "configured precision", input: "2.5", precision: -1, configDefault: 1, want: "3"},
		{name: "configured shortest", input: "2.5", precision: -1, want: "2.5"},
		{name: "infinity", input: "-Infinity", precision: 0, want: "-Infinity"},
		{name: "invalid number", input: "abc", precision: 0, wantErr: domain.ErrInvalidNumber},
		{name: "invalid precision", input: "1", precision: 101, wantErr: domain.ErrInvalidPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.ignoreErrors()

			cfg := domain.DefaultConfig()
			cfg.Precision = tt.configDefault
			f.loader.EXPECT().Load("").Return(cfg, nil)
			f.logger.EXPECT().SetJSON(false)
			require.NoError(t, f.app.Configure(app.ConfigureOptions{}))

			got, err := f.app.FormatDouble(context.Background(), tt.input, tt.precision)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.UTF8())
		})
	}
}

func TestApp_Parse(t *testing.T) {
	f := newFixture(t)
	f.ignoreErrors()

	n, err := f.app.Parse(context.Background(), "-123")
	require.NoError(t, err)
	assert.Equal(t, -123, n)

	_, err = f.app.Parse(context.Background(), " 1")
	assert.ErrorIs(t, err, string16.ErrInvalidInteger)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)

	_, err = f.app.Parse(context.Background(), "")
	assert.True(t, errors.Is(err, string16.ErrInvalidInteger))
}

func TestApp_Find(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		opts     app.FindOptions
		want     int
	}{
		{name: "forward", haystack: "abcabc", needle: "bc", opts: app.FindOptions{From: -1}, want: 1},
		{name: "forward from", haystack: "abcabc", needle: "bc", opts: app.FindOptions{From: 2}, want: 4},
		{name: "reverse", haystack: "abcabc", needle: "bc", opts: app.FindOptions{From: -1, Reverse: true}, want: 4},
		{name: "reverse from", haystack: "abcabc", needle: "bc", opts: app.FindOptions{From: 3, Reverse: true}, want: 1},
		{name: "utf-16 index", haystack: "😀x", needle: "x", opts: app.FindOptions{From: -1}, want: 2},
		{name: "not found", haystack: "abc", needle: "z", opts: app.FindOptions{From: -1}, want: string16.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			assert.Equal(t, tt.want, f.app.Find(context.Background(), tt.haystack, tt.needle, tt.opts))
			assert.Equal(t, []string{"string16.find"}, *f.spans)
		})
	}
}

func TestApp_StripAndConcat(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "a b", f.app.Strip(context.Background(), " \t a b\n").UTF8())
	assert.Equal(t, "é42-1.5", f.app.Concat(context.Background(), "é", 42, -1.5).UTF8())
	assert.True(t, f.app.Concat(context.Background()).IsEmpty())
	assert.Equal(t, []string{"string16.strip", "string16.concat", "string16.concat"}, *f.spans)
}

func TestApp_Eval(t *testing.T) {
	f := newFixture(t)
	f.span.EXPECT().RecordError(nil)
	f.evaluator.EXPECT().Evaluate(gomock.Any(), `"a" + "b"`).Return(string16.FromString("ab"), nil)

	insp, err := f.app.Eval(context.Background(), `"a" + "b"`)
	require.NoError(t, err)
	assert.Equal(t, "eval", insp.Source)
	assert.Equal(t, "ab", insp.UTF8())
}

func TestApp_EvalError(t *testing.T) {
	f := newFixture(t)
	f.span.EXPECT().RecordError(domain.ErrScriptFailed)
	f.evaluator.EXPECT().Evaluate(gomock.Any(), "throw 1").Return(string16.String{}, domain.ErrScriptFailed)

	_, err := f.app.Eval(context.Background(), "throw 1")
	assert.True(t, errors.Is(err, domain.ErrScriptFailed))
}

func TestApp_Explore(t *testing.T) {
	f := newFixture(t)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("!\x03")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)

	got, err := f.app.Explore(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", got.UTF8())
}
